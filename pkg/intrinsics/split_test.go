package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestSplitAction(t *testing.T) {
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Split": value.List([]value.Value{value.Str(","), value.Str("a,b,,c")}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindList || len(got.List) != 4 {
		t.Fatalf("got %+v, want 4 elements", got)
	}
	want := []string{"a", "b", "", "c"}
	for i, w := range want {
		if got.List[i].Str != w {
			t.Errorf("element %d: got %q, want %q", i, got.List[i].Str, w)
		}
	}
}

func TestSplitThenSelectRoundTrip(t *testing.T) {
	// Fn::Select(1, Fn::Split(",", "a,b,c")) == "b"
	split := value.Map(map[string]value.Value{
		"Fn::Split": value.List([]value.Value{value.Str(","), value.Str("a,b,c")}),
	})
	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::Select": value.List([]value.Value{value.Num(1), split}),
	}), Environment{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "b" {
		t.Errorf("got %q, want %q", got.Str, "b")
	}
}
