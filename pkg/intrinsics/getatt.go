package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// getAttAction handles Fn::GetAtt: [logicalId, attribute] or the
// "logicalId.attribute" string form. Resource attribute values are not
// modeled by this resolver (spec Non-goals: no resource schema knowledge),
// so every call resolves to the literal sentinel "GETATT" regardless of
// its arguments, mirroring how Fn::GetAZs stands in for region data.
type getAttAction struct{}

func (getAttAction) Name() string { return "Fn::GetAtt" }
func (getAttAction) Eager() bool  { return true }

func (getAttAction) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	switch arg.Kind {
	case value.KindStr:
	case value.KindList:
		if len(arg.List) != 2 {
			return value.Value{}, badIntrinsic("Fn::GetAtt", arg, "expected [logicalId, attribute]")
		}
	default:
		return value.Value{}, badIntrinsic("Fn::GetAtt", arg, "expected a string or [logicalId, attribute]")
	}
	return value.Str("GETATT"), nil
}
