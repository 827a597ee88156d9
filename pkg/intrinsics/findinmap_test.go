package intrinsics

import (
	"testing"

	"github.com/lex00/cfn-resolve-go/pkg/value"
)

func TestFindInMapAction(t *testing.T) {
	env := testEnv()

	got, err := Resolve(value.Map(map[string]value.Value{
		"Fn::FindInMap": value.List([]value.Value{
			value.Str("RegionMap"), value.Str("us-east-1"), value.Str("AMI"),
		}),
	}), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Str != "ami-111" {
		t.Errorf("got %q, want %q", got.Str, "ami-111")
	}
}

func TestFindInMapAction_MissingAtEachLevel(t *testing.T) {
	env := testEnv()

	cases := []struct {
		name string
		arg  []value.Value
		want string
	}{
		{"missing map", []value.Value{value.Str("Nope"), value.Str("us-east-1"), value.Str("AMI")}, "UNDEFINED_MAPPING_Nope_us-east-1_AMI"},
		{"missing top key", []value.Value{value.Str("RegionMap"), value.Str("eu-west-1"), value.Str("AMI")}, "UNDEFINED_MAPPING_RegionMap_eu-west-1_AMI"},
		{"missing leaf key", []value.Value{value.Str("RegionMap"), value.Str("us-east-1"), value.Str("Nope")}, "UNDEFINED_MAPPING_RegionMap_us-east-1_Nope"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(value.Map(map[string]value.Value{
				"Fn::FindInMap": value.List(tc.arg),
			}), env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Str != tc.want {
				t.Errorf("got %q, want %q", got.Str, tc.want)
			}
		})
	}
}
