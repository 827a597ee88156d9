package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestIfAction_TrueBranch(t *testing.T) {
	env := testEnv()
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::If": value.List([]value.Value{
			value.Str("IsProd"), value.Str("prod-value"), value.Str("dev-value"),
		}),
	}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "prod-value" {
		t.Errorf("got %q, want %q", got.Str, "prod-value")
	}
}

func TestIfAction_FalseBranchNeverResolvesTrueBranch(t *testing.T) {
	env := testEnv()
	env.Conditions["IsProd"] = false
	// The unchosen branch references an intrinsic that would error if
	// resolved (Ref with a non-string argument); Fn::If must not resolve it.
	badBranch := value.Map(map[string]value.Value{"Ref": value.Num(1)})

	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::If": value.List([]value.Value{
			value.Str("IsProd"), badBranch, value.Str("safe"),
		}),
	}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "safe" {
		t.Errorf("got %q, want %q (lazy branch should not matter)", got.Str, "safe")
	}
}

func TestIfAction_UndefinedConditionIsFalse(t *testing.T) {
	env := testEnv()
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::If": value.List([]value.Value{
			value.Str("NeverDeclared"), value.Str("true-branch"), value.Str("false-branch"),
		}),
	}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "false-branch" {
		t.Errorf("got %q, want false-branch for undefined condition", got.Str)
	}
}
