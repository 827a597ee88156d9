// Package value provides the discriminated value model that the resolver
// walks: a tagged union of scalar, list, and map nodes, with conversions
// to and from the map[string]interface{}/[]interface{} shape produced by
// encoding/json and gopkg.in/yaml.v3.
package value

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Kind discriminates the variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindStr
	KindNum
	KindBool
	KindDate
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindStr:
		return "string"
	case KindNum:
		return "number"
	case KindBool:
		return "bool"
	case KindDate:
		return "date"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// DateLayout is the ISO date layout used when parsing or rendering KindDate
// values and when coercing Fn::Equals operands (spec rule 2).
const DateLayout = "2006-01-02"

// Value is a recursive, discriminated node: exactly one of its fields is
// meaningful, selected by Kind.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
	Date time.Time
	List []Value
	Map  map[string]Value
}

// Null is the singleton null value.
var Null = Value{Kind: KindNull}

// Str builds a string scalar.
func Str(s string) Value { return Value{Kind: KindStr, Str: s} }

// Num builds a numeric scalar.
func Num(n float64) Value { return Value{Kind: KindNum, Num: n} }

// Bool builds a boolean scalar.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date builds a date scalar.
func Date(t time.Time) Value { return Value{Kind: KindDate, Date: t} }

// List builds a list value, copying the given slice.
func List(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{Kind: KindList, List: cp}
}

// Map builds a map value, copying the given map.
func Map(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{Kind: KindMap, Map: cp}
}

// IsInt reports whether a KindNum value has no fractional part.
func (v Value) IsInt() bool {
	return v.Kind == KindNum && v.Num == float64(int64(v.Num))
}

// String renders a Value the way Fn::Join and Fn::Sub stringify arguments:
// strings pass through, whole numbers print without a decimal point,
// booleans print as "true"/"false", dates render as ISO dates.
func (v Value) String() string {
	switch v.Kind {
	case KindStr:
		return v.Str
	case KindNum:
		if v.IsInt() {
			return strconv.FormatInt(int64(v.Num), 10)
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		return v.Date.Format(DateLayout)
	case KindNull:
		return ""
	default:
		return fmt.Sprintf("%v", v.Raw())
	}
}

// Raw converts a Value back to the map[string]interface{}/[]interface{}
// shape used at the JSON/YAML boundary.
func (v Value) Raw() interface{} {
	switch v.Kind {
	case KindNull:
		return nil
	case KindStr:
		return v.Str
	case KindNum:
		if v.IsInt() {
			return int(v.Num)
		}
		return v.Num
	case KindBool:
		return v.Bool
	case KindDate:
		return v.Date.Format(DateLayout)
	case KindList:
		out := make([]interface{}, len(v.List))
		for i, item := range v.List {
			out[i] = item.Raw()
		}
		return out
	case KindMap:
		out := make(map[string]interface{}, len(v.Map))
		for k, item := range v.Map {
			out[k] = item.Raw()
		}
		return out
	default:
		return nil
	}
}

// From converts a raw map[string]interface{}/[]interface{}/scalar node
// (as produced by encoding/json or the YAML parser) into a Value.
func From(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Null
	case Value:
		return v
	case string:
		return Str(v)
	case bool:
		return Bool(v)
	case int:
		return Num(float64(v))
	case int64:
		return Num(float64(v))
	case float64:
		return Num(v)
	case time.Time:
		return Date(v)
	case []interface{}:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = From(item)
		}
		return Value{Kind: KindList, List: items}
	case []Value:
		return List(v)
	case map[string]interface{}:
		m := make(map[string]Value, len(v))
		for k, item := range v {
			m[k] = From(item)
		}
		return Value{Kind: KindMap, Map: m}
	case map[string]Value:
		return Map(v)
	default:
		return Str(fmt.Sprintf("%v", v))
	}
}

// Keys returns a map's keys in sorted order, for deterministic iteration.
func (v Value) Keys() []string {
	if v.Kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
