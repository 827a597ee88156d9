package intrinsics

import (
	"fmt"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// findInMapAction handles Fn::FindInMap: [mapName, key1, key2], a
// three-level lookup into the Mappings environment. A missing level at
// any depth yields the UNDEFINED_MAPPING_ sentinel rather than an error.
type findInMapAction struct{}

func (findInMapAction) Name() string { return "Fn::FindInMap" }
func (findInMapAction) Eager() bool  { return true }

func (findInMapAction) Resolve(_ Resolver, env Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindList || len(arg.List) != 3 {
		return value.Value{}, badIntrinsic("Fn::FindInMap", arg, "expected [mapName, key1, key2]")
	}

	mapName, ok1 := stringArg(arg.List[0])
	key1, ok2 := stringArg(arg.List[1])
	key2, ok3 := stringArg(arg.List[2])
	if !ok1 || !ok2 || !ok3 {
		return value.Value{}, badIntrinsic("Fn::FindInMap", arg, "mapName, key1, and key2 must be strings")
	}

	sentinel := value.Str(fmt.Sprintf("UNDEFINED_MAPPING_%s_%s_%s", mapName, key1, key2))

	top, ok := env.Mappings[mapName]
	if !ok || top.Kind != value.KindMap {
		return sentinel, nil
	}
	mid, ok := top.Map[key1]
	if !ok || mid.Kind != value.KindMap {
		return sentinel, nil
	}
	leaf, ok := mid.Map[key2]
	if !ok {
		return sentinel, nil
	}
	return leaf, nil
}

func stringArg(v value.Value) (string, bool) {
	if v.Kind != value.KindStr {
		return "", false
	}
	return v.Str, true
}
