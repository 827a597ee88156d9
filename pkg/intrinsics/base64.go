package intrinsics

import (
	"encoding/base64"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// base64Action handles Fn::Base64: string, standard base64 encoding.
type base64Action struct{}

func (base64Action) Name() string { return "Fn::Base64" }
func (base64Action) Eager() bool  { return true }

func (base64Action) Resolve(_ Resolver, _ Environment, arg value.Value) (value.Value, error) {
	if arg.Kind != value.KindStr {
		return value.Value{}, badIntrinsic("Fn::Base64", arg, "expected a string")
	}
	return value.Str(base64.StdEncoding.EncodeToString([]byte(arg.Str))), nil
}
