package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestGetAttAction_StringForm(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::GetAtt": value.Str("MyBucket.Arn"),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "GETATT" {
		t.Errorf("got %q, want %q", got.Str, "GETATT")
	}
}

func TestGetAttAction_ListForm(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::GetAtt": value.List([]value.Value{value.Str("MyBucket"), value.Str("Arn")}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "GETATT" {
		t.Errorf("got %q, want %q", got.Str, "GETATT")
	}
}

func TestGetAZsAction(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::GetAZs": value.Str("us-east-1"),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "GETAZS" {
		t.Errorf("got %q, want %q", got.Str, "GETAZS")
	}
}
