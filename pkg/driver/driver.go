// Package driver wires a parsed Template through the intrinsics resolver:
// it builds the Parameters/Mappings/Conditions environment, pre-evaluates
// every Condition, then walks Resources and Outputs.
package driver

import (
	cferrors "github.com/lex00/cfn-resolve-go/pkg/errors"
	"github.com/lex00/cfn-resolve-go/pkg/intrinsics"
	"github.com/lex00/cfn-resolve-go/pkg/region"
	"github.com/lex00/cfn-resolve-go/pkg/types"
	"github.com/lex00/cfn-resolve-go/pkg/utils"
	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// Resolve produces a ResolvedTemplate from tpl. extraParams is merged over
// the template's own Parameter defaults and the derived AWS pseudo
// parameters, right-biased: extraParams always wins, defaults win over
// pseudo parameters.
func Resolve(tpl *types.Template, extraParams map[string]interface{}) (*types.ResolvedTemplate, error) {
	params := buildParameters(tpl, extraParams)

	env := intrinsics.Environment{
		Parameters: params,
		Mappings:   tpl.Mappings,
	}

	conditions, err := evaluateConditions(tpl.Conditions, env)
	if err != nil {
		return nil, err
	}
	env.Conditions = conditions

	resources := make(map[string]value.Value, len(tpl.Resources))
	for name, res := range tpl.Resources {
		resolved, err := intrinsics.Resolve(value.From(resourceToRaw(res)), env)
		if err != nil {
			return nil, err
		}
		resources[name] = resolved
	}

	outputs := make(map[string]value.Value, len(tpl.Outputs))
	for name, out := range tpl.Outputs {
		resolved, err := intrinsics.Resolve(value.From(outputToRaw(out)), env)
		if err != nil {
			return nil, err
		}
		outputs[name] = resolved
	}

	return &types.ResolvedTemplate{
		AWSTemplateFormatVersion: tpl.AWSTemplateFormatVersion,
		Description:              tpl.Description,
		Conditions:               conditions,
		Resources:                resources,
		Outputs:                  outputs,
	}, nil
}

// buildParameters merges, right-biased, the derived AWS pseudo parameters,
// the template's own Parameter defaults, and extraParams.
func buildParameters(tpl *types.Template, extraParams map[string]interface{}) map[string]value.Value {
	regionStr := region.DefaultRegion
	if v, ok := extraParams["AWS::Region"]; ok {
		if s, ok := v.(string); ok {
			regionStr = s
		}
	}

	pseudo := make(map[string]interface{})
	for k, v := range region.PseudoParameters(regionStr) {
		pseudo[k] = v.Raw()
	}

	defaults := make(map[string]interface{})
	for name, p := range tpl.Parameters {
		if p.Default != nil {
			defaults[name] = p.Default
		}
	}

	merged := utils.DeepMerge(pseudo, defaults)
	merged = utils.DeepMerge(merged, extraParams)

	params := make(map[string]value.Value, len(merged))
	for k, v := range merged {
		params[k] = value.From(v)
	}
	return params
}

// evaluateConditions pre-evaluates every Condition entry to a bool. Forward
// references between conditions are resolved with repeated passes over the
// remaining set until no further progress is made; any condition that
// still fails to resolve at that point surfaces its real error.
//
// The literal strings "True"/"False" are accepted here too (spec §3):
// a condition may be declared as the bare string rather than a native
// boolean, and is normalised to bool before anything downstream (Fn::If,
// Condition) ever sees it.
func evaluateConditions(raw map[string]value.Value, env intrinsics.Environment) (map[string]bool, error) {
	result := make(map[string]bool, len(raw))
	remaining := make(map[string]value.Value, len(raw))
	for k, v := range raw {
		remaining[k] = normalizeConditionBoolString(v)
	}

	for len(remaining) > 0 {
		progressed := false
		env.Conditions = result
		for name, expr := range remaining {
			resolved, err := intrinsics.Resolve(expr, env)
			if err != nil || resolved.Kind != value.KindBool {
				continue
			}
			result[name] = resolved.Bool
			delete(remaining, name)
			progressed = true
		}
		if !progressed {
			for name, expr := range remaining {
				env.Conditions = result
				resolved, err := intrinsics.Resolve(expr, env)
				if err != nil {
					return nil, err
				}
				if resolved.Kind != value.KindBool {
					return nil, cferrors.NewBadIntrinsic("Condition", resolved.Raw(), "condition \""+name+"\" must evaluate to a boolean")
				}
			}
			break
		}
	}

	return result, nil
}

// normalizeConditionBoolString rewrites the bare strings "True"/"False" to
// a native bool. Anything else (an intrinsic call, a native bool, ...)
// passes through unchanged.
func normalizeConditionBoolString(v value.Value) value.Value {
	if v.Kind != value.KindStr {
		return v
	}
	switch v.Str {
	case "True":
		return value.Bool(true)
	case "False":
		return value.Bool(false)
	default:
		return v
	}
}

func resourceToRaw(res types.Resource) map[string]interface{} {
	raw := map[string]interface{}{"Type": res.Type}
	if res.Properties != nil {
		raw["Properties"] = res.Properties
	}
	if res.Metadata != nil {
		raw["Metadata"] = res.Metadata
	}
	if res.DependsOn != nil {
		raw["DependsOn"] = res.DependsOn
	}
	if res.Condition != "" {
		raw["Condition"] = res.Condition
	}
	if res.DeletionPolicy != "" {
		raw["DeletionPolicy"] = res.DeletionPolicy
	}
	if res.UpdatePolicy != nil {
		raw["UpdatePolicy"] = res.UpdatePolicy
	}
	return raw
}

func outputToRaw(out types.Output) map[string]interface{} {
	raw := map[string]interface{}{}
	if out.Description != "" {
		raw["Description"] = out.Description
	}
	if out.Value != nil {
		raw["Value"] = out.Value
	}
	if out.Condition != "" {
		raw["Condition"] = out.Condition
	}
	if out.Export != nil {
		raw["Export"] = map[string]interface{}{"Name": out.Export.Name}
	}
	return raw
}
