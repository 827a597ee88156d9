package value

// Intrinsics is the closed set of intrinsic function keys the resolver
// recognises. A single-key map whose key is not in this set is plain data.
var Intrinsics = map[string]bool{
	"Ref":             true,
	"Condition":       true,
	"Fn::ImportValue": true,
	"Fn::Join":        true,
	"Fn::FindInMap":   true,
	"Fn::Sub":         true,
	"Fn::Select":      true,
	"Fn::Split":       true,
	"Fn::If":          true,
	"Fn::And":         true,
	"Fn::Or":          true,
	"Fn::Not":         true,
	"Fn::Equals":      true,
	"Fn::Base64":      true,
	"Fn::GetAtt":      true,
	"Fn::GetAZs":      true,
}

// IsIntrinsicKey reports whether key names a recognised intrinsic function.
// The set is closed: any other "Fn::"-prefixed key is treated as plain data.
func IsIntrinsicKey(key string) bool {
	return Intrinsics[key]
}

// AsIntrinsic reports whether v is an intrinsic call: a map with exactly one
// key drawn from Intrinsics. Multi-key maps are always plain data, even if
// one key would otherwise be intrinsic.
func AsIntrinsic(v Value) (key string, arg Value, ok bool) {
	if v.Kind != KindMap || len(v.Map) != 1 {
		return "", Value{}, false
	}
	for k, val := range v.Map {
		if Intrinsics[k] {
			return k, val, true
		}
		return "", Value{}, false
	}
	return "", Value{}, false
}
