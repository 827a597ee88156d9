package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// refAction handles Ref: name. Resolution is total — an unknown name
// never errors, it becomes the UNDEFINED_PARAM_ sentinel.
type refAction struct{}

func (refAction) Name() string { return "Ref" }
func (refAction) Eager() bool  { return true }

func (refAction) Resolve(_ Resolver, env Environment, arg value.Value) (value.Value, error) {
	return lookupParameter(env, arg, "Ref")
}

// importValueAction handles Fn::ImportValue: name. It shares the Ref
// parameter namespace in this design (spec §9 Design Notes) rather than
// keeping a separate cross-stack export table.
type importValueAction struct{}

func (importValueAction) Name() string { return "Fn::ImportValue" }
func (importValueAction) Eager() bool  { return true }

func (importValueAction) Resolve(_ Resolver, env Environment, arg value.Value) (value.Value, error) {
	return lookupParameter(env, arg, "Fn::ImportValue")
}

func lookupParameter(env Environment, arg value.Value, fn string) (value.Value, error) {
	if arg.Kind != value.KindStr {
		return value.Value{}, badIntrinsic(fn, arg, "expected a string name")
	}
	if v, ok := env.Parameters[arg.Str]; ok {
		return v, nil
	}
	return value.Str("UNDEFINED_PARAM_" + arg.Str), nil
}

// conditionAction handles Condition: name, used to reference a named
// condition from within resource properties.
type conditionAction struct{}

func (conditionAction) Name() string { return "Condition" }
func (conditionAction) Eager() bool  { return true }

func (conditionAction) Resolve(_ Resolver, env Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Condition", arg, "expected a string name")
	}
	if b, ok := env.Conditions[arg.Str]; ok {
		return value.Bool(b), nil
	}
	return value.Str("UNDEFINED_CONDITION_" + arg.Str), nil
}
