package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestAndAction(t *testing.T) {
	cases := []struct {
		vals []bool
		want bool
	}{
		{[]bool{true, true}, true},
		{[]bool{true, false}, false},
		{[]bool{true, true, true}, true},
	}
	for _, tc := range cases {
		items := make([]value.Value, len(tc.vals))
		for i, b := range tc.vals {
			items[i] = value.Bool(b)
		}
		got, err := Resolve(value.Map(map[string]value.Value{"Fn::And": value.List(items)}), Environment{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Bool != tc.want {
			t.Errorf("And(%v) = %v, want %v", tc.vals, got.Bool, tc.want)
		}
	}
}

func TestOrAction(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Or": value.List([]value.Value{value.Bool(false), value.Bool(true)}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Bool {
		t.Error("Or(false, true) should be true")
	}
}

func TestNotAction(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Not": value.List([]value.Value{value.Bool(true)}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Bool {
		t.Error("Not(true) should be false")
	}
}

func TestBooleanActions_NonBoolOperand(t *testing.T) {
	_, err := Resolve(value.Map(map[string]value.Value{
		"Fn::And": value.List([]value.Value{value.Str("true"), value.Bool(true)}),
	}), Environment{})
	if err == nil {
		t.Fatal("expected error for non-bool operand")
	}
}
