package intrinsics

import (
	"strconv"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// selectAction handles Fn::Select: [index, items]. The index may be given
// as a number or a numeric string; it is fatal, not sentinel-producing, if
// it is out of range or not coercible to an integer.
type selectAction struct{}

func (selectAction) Name() string { return "Fn::Select" }
func (selectAction) Eager() bool  { return true }

func (selectAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 2 {
		return value.Value{}, badIntrinsic("Fn::Select", arg, "expected [index, items]")
	}
	items := arg.List[1]
	if items.Kind != value.KindList {
		return value.Value{}, badIntrinsic("Fn::Select", arg, "second element must be a list")
	}

	idxVal := arg.List[0]
	var idx int
	switch idxVal.Kind {
	case value.KindNum:
		idx = int(idxVal.Num)
	case value.KindStr:
		n, err := strconv.Atoi(idxVal.Str)
		if err != nil {
			return value.Value{}, badIntrinsic("Fn::Select", arg, "index must be an integer")
		}
		idx = n
	default:
		return value.Value{}, badIntrinsic("Fn::Select", arg, "index must be a number or numeric string")
	}

	if idx < 0 || idx >= len(items.List) {
		return value.Value{}, badIntrinsic("Fn::Select", arg, "index out of range")
	}
	return items.List[idx], nil
}
