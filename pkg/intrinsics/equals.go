package intrinsics

import (
	"strconv"
	"time"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// equalsAction handles Fn::Equals: [a, b]. Comparison tries, in order:
// bool == bool, date/ISO-string equality, numeric-string/number equality,
// then falls back to string equality. It never special-cases the literal
// strings "true"/"false" — that coercion belongs to condition
// pre-evaluation, not to Fn::Equals itself.
type equalsAction struct{}

func (equalsAction) Name() string { return "Fn::Equals" }
func (equalsAction) Eager() bool  { return true }

func (equalsAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 2 {
		return value.Value{}, badIntrinsic("Fn::Equals", arg, "expected [value1, value2]")
	}
	a, b := arg.List[0], arg.List[1]

	if a.Kind == value.KindBool && b.Kind == value.KindBool {
		return value.Bool(a.Bool == b.Bool), nil
	}

	if aDate, bDate, ok := asDatePair(a, b); ok {
		return value.Bool(aDate.Equal(bDate)), nil
	}

	if aNum, bNum, ok := asNumPair(a, b); ok {
		return value.Bool(aNum == bNum), nil
	}

	return value.Bool(a.String() == b.String()), nil
}

// asDatePair coerces a and b to comparable dates if at least one side is a
// KindDate and the other is a KindDate or an ISO-formatted string.
func asDatePair(a, b value.Value) (time.Time, time.Time, bool) {
	if a.Kind != value.KindDate && b.Kind != value.KindDate {
		return time.Time{}, time.Time{}, false
	}
	aT, aOk := asDate(a)
	bT, bOk := asDate(b)
	if !aOk || !bOk {
		return time.Time{}, time.Time{}, false
	}
	return aT, bT, true
}

func asDate(v value.Value) (time.Time, bool) {
	switch v.Kind {
	case value.KindDate:
		return v.Date, true
	case value.KindStr:
		t, err := time.Parse(value.DateLayout, v.Str)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}

// asNumPair coerces a and b to comparable numbers if both sides are a
// KindNum or a numeric string.
func asNumPair(a, b value.Value) (float64, float64, bool) {
	aN, aOk := asNum(a)
	bN, bOk := asNum(b)
	if !aOk || !bOk {
		return 0, 0, false
	}
	return aN, bN, true
}

func asNum(v value.Value) (float64, bool) {
	switch v.Kind {
	case value.KindNum:
		return v.Num, true
	case value.KindStr:
		n, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
