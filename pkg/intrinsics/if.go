package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// ifAction handles Fn::If: [condName, whenTrue, whenFalse]. It is the one
// lazy action: only the selected branch is resolved, so the branch not
// taken may safely contain a reference that would otherwise be undefined.
// An undefined condition name is treated as false, consistent with the
// totality principle applied to every other undefined name in this
// resolver.
type ifAction struct{}

func (ifAction) Name() string { return "Fn::If" }
func (ifAction) Eager() bool  { return false }

func (ifAction) Resolve(r Resolver, env Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 3 {
		return value.Value{}, badIntrinsic("Fn::If", arg, "expected [condition, whenTrue, whenFalse]")
	}
	condVal := arg.List[0]
	if condVal.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Fn::If", arg, "condition must be a string name")
	}

	cond := env.Conditions[condVal.Str]
	if cond {
		return r.Resolve(arg.List[1], env)
	}
	return r.Resolve(arg.List[2], env)
}
