package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// getAZsAction handles Fn::GetAZs: region. Availability zone enumeration
// depends on live account/region data this resolver has no access to
// (spec Non-goals), so it always resolves to the literal sentinel
// "GETAZS".
type getAZsAction struct{}

func (getAZsAction) Name() string { return "Fn::GetAZs" }
func (getAZsAction) Eager() bool  { return true }

func (getAZsAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Fn::GetAZs", arg, "expected a string region")
	}
	return value.Str("GETAZS"), nil
}
