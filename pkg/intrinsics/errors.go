package intrinsics

import (
	cferrors "github.com/lex00/cfn-resolve-go/pkg/errors"
	"github.com/lex00/cfn-resolve-go/pkg/value"
)

// badIntrinsic builds a fatal BadIntrinsic error for a malformed call.
func badIntrinsic(fn string, arg value.Value, reason string) *cferrors.BadIntrinsic {
	return cferrors.NewBadIntrinsic(fn, arg.Raw(), reason)
}
