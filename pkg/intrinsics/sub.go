package intrinsics

import (
	"regexp"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// subPlaceholder matches every ${...} occurrence in a Fn::Sub template.
var subPlaceholder = regexp.MustCompile(`\$\{([^}]*)\}`)

// bareName matches a placeholder body that is a plain reference name, as
// opposed to a dotted GetAtt-style reference or a literal-dollar escape —
// neither of which this resolver implements (spec §9 Design Notes).
var bareName = regexp.MustCompile(`^[A-Za-z0-9_:]+$`)

// subAction handles Fn::Sub: template or Fn::Sub: [template, locals]. The
// template is scanned once; each ${NAME} is replaced by, in order,
// locals[NAME] (already resolved), then parameters[NAME], then the
// UNDEFINED_PARAM_ sentinel. There is no recursive re-substitution of the
// result.
type subAction struct{}

func (subAction) Name() string { return "Fn::Sub" }
func (subAction) Eager() bool  { return true }

func (subAction) Resolve(_ Resolver, env Environment, arg value.Value) (value.Value, error) {
	var template string
	var locals map[string]value.Value

	switch arg.Kind {
	case value.KindStr:
		template = arg.Str
	case value.KindList:
		if len(arg.List) != 2 {
			return value.Value{}, badIntrinsic("Fn::Sub", arg, "array form requires exactly 2 elements")
		}
		if arg.List[0].Kind != value.KindStr {
			return value.Value{}, badIntrinsic("Fn::Sub", arg, "first element must be a string template")
		}
		if arg.List[1].Kind != value.KindMap {
			return value.Value{}, badIntrinsic("Fn::Sub", arg, "second element must be a map of locals")
		}
		template = arg.List[0].Str
		locals = arg.List[1].Map
	default:
		return value.Value{}, badIntrinsic("Fn::Sub", arg, "expected a string or [string, map]")
	}

	var substErr error
	result := subPlaceholder.ReplaceAllStringFunc(template, func(match string) string {
		if substErr != nil {
			return match
		}
		name := match[2 : len(match)-1]
		if !bareName.MatchString(name) {
			substErr = badIntrinsic("Fn::Sub", value.Str(match), "unknown placeholder form")
			return match
		}
		if locals != nil {
			if v, ok := locals[name]; ok {
				return v.String()
			}
		}
		if v, ok := env.Parameters[name]; ok {
			return v.String()
		}
		return "UNDEFINED_PARAM_" + name
	})
	if substErr != nil {
		return value.Value{}, substErr
	}

	return value.Str(result), nil
}
