package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestSelectAction(t *testing.T) {
	items := value.List([]value.Value{value.Str("a"), value.Str("b"), value.Str("c")})

	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Select": value.List([]value.Value{value.Num(1), items}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "b" {
		t.Errorf("got %q, want %q", got.Str, "b")
	}
}

func TestSelectAction_NumericStringIndex(t *testing.T) {
	items := value.List([]value.Value{value.Str("a"), value.Str("b")})

	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Select": value.List([]value.Value{value.Str("0"), items}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "a" {
		t.Errorf("got %q, want %q", got.Str, "a")
	}
}

func TestSelectAction_OutOfRange(t *testing.T) {
	items := value.List([]value.Value{value.Str("a")})
	_, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Select": value.List([]value.Value{value.Num(5), items}),
	}), Environment{})
	if err == nil {
		t.Fatal("expected error for out-of-range index")
	}
}

func TestSelectAction_NonIntegerIndex(t *testing.T) {
	items := value.List([]value.Value{value.Str("a")})
	_, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Select": value.List([]value.Value{value.Str("nope"), items}),
	}), Environment{})
	if err == nil {
		t.Fatal("expected error for non-integer index")
	}
}
