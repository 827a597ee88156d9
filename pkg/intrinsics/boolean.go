package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

func boolArg(fn string, arg value.Value, v value.Value) (bool, error) {
	if v.Kind != value.KindBool {
		return false, badIntrinsic(fn, arg, "condition operands must be boolean")
	}
	return v.Bool, nil
}

// andAction handles Fn::And: [cond, cond, ...] (2 to 10 operands), true
// only if every operand is true.
type andAction struct{}

func (andAction) Name() string { return "Fn::And" }
func (andAction) Eager() bool  { return true }

func (andAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) < 2 || len(arg.List) > 10 {
		return value.Value{}, badIntrinsic("Fn::And", arg, "expected 2 to 10 conditions")
	}
	for _, item := range arg.List {
		b, err := boolArg("Fn::And", arg, item)
		if err != nil {
			return value.Value{}, err
		}
		if !b {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

// orAction handles Fn::Or: [cond, cond, ...] (2 to 10 operands), true if
// any operand is true.
type orAction struct{}

func (orAction) Name() string { return "Fn::Or" }
func (orAction) Eager() bool  { return true }

func (orAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) < 2 || len(arg.List) > 10 {
		return value.Value{}, badIntrinsic("Fn::Or", arg, "expected 2 to 10 conditions")
	}
	for _, item := range arg.List {
		b, err := boolArg("Fn::Or", arg, item)
		if err != nil {
			return value.Value{}, err
		}
		if b {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

// notAction handles Fn::Not: [cond], negating its single operand.
type notAction struct{}

func (notAction) Name() string { return "Fn::Not" }
func (notAction) Eager() bool  { return true }

func (notAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 1 {
		return value.Value{}, badIntrinsic("Fn::Not", arg, "expected exactly one condition")
	}
	b, err := boolArg("Fn::Not", arg, arg.List[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Bool(!b), nil
}
