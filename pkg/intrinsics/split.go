package intrinsics

import (
	"strings"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// splitAction handles Fn::Split: [delimiter, source]. Empty trailing (and
// interior) fragments are preserved, matching strings.Split semantics.
type splitAction struct{}

func (splitAction) Name() string { return "Fn::Split" }
func (splitAction) Eager() bool  { return true }

func (splitAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 2 {
		return value.Value{}, badIntrinsic("Fn::Split", arg, "expected [delimiter, source]")
	}
	delim := arg.List[0]
	source := arg.List[1]
	if delim.Kind != value.KindStr || source.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Fn::Split", arg, "delimiter and source must be strings")
	}

	parts := strings.Split(source.Str, delim.Str)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.Str(p)
	}
	return value.List(out), nil
}
