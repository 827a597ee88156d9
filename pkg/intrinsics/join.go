package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// joinAction handles Fn::Join: [sep, items]. Every item is stringified
// (per value.Value.String) and concatenated with sep; an empty list joins
// to the empty string.
type joinAction struct{}

func (joinAction) Name() string { return "Fn::Join" }
func (joinAction) Eager() bool  { return true }

func (joinAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 2 {
		return value.Value{}, badIntrinsic("Fn::Join", arg, "expected [separator, items]")
	}
	sep := arg.List[0]
	if sep.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Fn::Join", arg, "separator must be a string")
	}
	items := arg.List[1]
	if items.Kind != value.KindList {
		return value.Value{}, badIntrinsic("Fn::Join", arg, "second element must be a list")
	}

	out := ""
	for i, item := range items.List {
		if i > 0 {
			out += sep.Str
		}
		out += item.String()
	}
	return value.Str(out), nil
}
