package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func testEnv() Environment {
	return Environment{
		Parameters: map[string]value.Value{
			"Env":            value.Str("prod"),
			"AWS::Region":    value.Str("us-east-1"),
			"AWS::AccountId": value.Str("123456789012"),
		},
		Mappings: map[string]value.Value{
			"RegionMap": value.Map(map[string]value.Value{
				"us-east-1": value.Map(map[string]value.Value{
					"AMI": value.Str("ami-111"),
				}),
			}),
		},
		Conditions: map[string]bool{
			"IsProd": true,
		},
	}
}

func TestRefAction(t *testing.T) {
	env := testEnv()

	got, err := Resolve(value.Map(map[string]value.Value{"Ref": value.Str("Env")}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "prod" {
		t.Errorf("got %q, want %q", got.Str, "prod")
	}

	got, err = Resolve(value.Map(map[string]value.Value{"Ref": value.Str("Missing")}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "UNDEFINED_PARAM_Missing" {
		t.Errorf("got %q, want sentinel", got.Str)
	}
}

func TestRefAction_NonStringArg(t *testing.T) {
	env := testEnv()
	_, err := Resolve(value.Map(map[string]value.Value{"Ref": value.Num(1)}), env)
	if err == nil {
		t.Fatal("expected error for non-string Ref argument")
	}
}

func TestImportValueSharesParameterNamespace(t *testing.T) {
	env := testEnv()
	got, err := Resolve(value.Map(map[string]value.Value{"Fn::ImportValue": value.Str("Env")}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "prod" {
		t.Errorf("got %q, want %q", got.Str, "prod")
	}
}

func TestConditionAction(t *testing.T) {
	env := testEnv()

	got, err := Resolve(value.Map(map[string]value.Value{"Condition": value.Str("IsProd")}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindBool || !got.Bool {
		t.Errorf("got %+v, want true", got)
	}

	got, err = Resolve(value.Map(map[string]value.Value{"Condition": value.Str("Unknown")}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "UNDEFINED_CONDITION_Unknown" {
		t.Errorf("got %q, want sentinel", got.Str)
	}
}
