// Package intrinsics implements the resolver core: a recursive tree-walking
// evaluator over CloudFormation's intrinsic-function sub-language.
package intrinsics

import "github.com/lex00/cfn-resolve-go/pkg/value"

// Environment is the immutable set of bindings a resolve call reads from.
// It is never mutated by the resolver; Resolve produces a new tree.
type Environment struct {
	// Parameters holds scalar or list parameter values, keyed by name.
	// Pseudo-parameters (AWS::Region, AWS::AccountId, ...) live here too,
	// seeded by the driver rather than treated as a separate namespace.
	Parameters map[string]value.Value
	// Mappings is the three-level Fn::FindInMap lookup table: map name ->
	// top-level key -> second-level key -> value.
	Mappings map[string]value.Value
	// Conditions holds the template's pre-evaluated named conditions.
	Conditions map[string]bool
}

// Resolver resolves a Value within an Environment. The Registry implements
// this; lazy actions (Fn::If) receive it so they can recursively resolve
// only the branch they select.
type Resolver interface {
	Resolve(v value.Value, env Environment) (value.Value, error)
}

// Action is an intrinsic function handler.
type Action interface {
	// Name is the intrinsic key this action handles, e.g. "Ref", "Fn::Sub".
	Name() string
	// Eager reports whether the walker should resolve this intrinsic's
	// argument before calling Resolve. Every action is eager except
	// Fn::If, which must see its branches unresolved so the non-chosen
	// one is never evaluated.
	Eager() bool
	// Resolve evaluates the intrinsic call. arg is the resolved argument
	// when Eager() is true, or the raw argument otherwise.
	Resolve(r Resolver, env Environment, arg value.Value) (value.Value, error)
}

// Registry holds the closed set of intrinsic Actions and performs the
// recursive tree walk described in spec §4.1.
type Registry struct {
	actions map[string]Action
}

// NewRegistry builds a Registry with every built-in Action registered.
func NewRegistry() *Registry {
	r := &Registry{actions: make(map[string]Action)}
	r.Register(refAction{})
	r.Register(conditionAction{})
	r.Register(importValueAction{})
	r.Register(joinAction{})
	r.Register(findInMapAction{})
	r.Register(subAction{})
	r.Register(selectAction{})
	r.Register(splitAction{})
	r.Register(ifAction{})
	r.Register(andAction{})
	r.Register(orAction{})
	r.Register(notAction{})
	r.Register(equalsAction{})
	r.Register(base64Action{})
	r.Register(getAttAction{})
	r.Register(getAZsAction{})
	return r
}

// Register adds or replaces an Action in the registry.
func (r *Registry) Register(a Action) {
	r.actions[a.Name()] = a
}

// Resolve recursively rewrites every intrinsic in v, producing a new tree.
// It never mutates v or env.
func (r *Registry) Resolve(v value.Value, env Environment) (value.Value, error) {
	switch v.Kind {
	case value.KindMap:
		if key, arg, ok := value.AsIntrinsic(v); ok {
			action := r.actions[key]
			if !action.Eager() {
				return action.Resolve(r, env, arg)
			}
			resolvedArg, err := r.Resolve(arg, env)
			if err != nil {
				return value.Value{}, err
			}
			return action.Resolve(r, env, resolvedArg)
		}
		out := make(map[string]value.Value, len(v.Map))
		for k, val := range v.Map {
			resolved, err := r.Resolve(val, env)
			if err != nil {
				return value.Value{}, err
			}
			out[k] = resolved
		}
		return value.Value{Kind: value.KindMap, Map: out}, nil

	case value.KindList:
		out := make([]value.Value, len(v.List))
		for i, item := range v.List {
			resolved, err := r.Resolve(item, env)
			if err != nil {
				return value.Value{}, err
			}
			out[i] = resolved
		}
		return value.Value{Kind: value.KindList, List: out}, nil

	default:
		return v, nil
	}
}

// defaultRegistry is the shared, stateless registry used by the package
// level Resolve function. Building a Registry carries no per-call state,
// so sharing one across concurrent calls is safe.
var defaultRegistry = NewRegistry()

// Resolve is the resolver core's entry point: resolve(node, parameters,
// mappings, conditions) -> node from spec §6, using the built-in registry.
func Resolve(node value.Value, env Environment) (value.Value, error) {
	return defaultRegistry.Resolve(node, env)
}
