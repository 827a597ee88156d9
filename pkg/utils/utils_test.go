package utils

import (
	"reflect"
	"testing"
)

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name     string
		dst      map[string]interface{}
		src      map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name:     "empty maps",
			dst:      map[string]interface{}{},
			src:      map[string]interface{}{},
			expected: map[string]interface{}{},
		},
		{
			name: "src overwrites dst",
			dst:  map[string]interface{}{"a": 1},
			src:  map[string]interface{}{"a": 2},
			expected: map[string]interface{}{
				"a": 2,
			},
		},
		{
			name: "merge adds new keys",
			dst:  map[string]interface{}{"a": 1},
			src:  map[string]interface{}{"b": 2},
			expected: map[string]interface{}{
				"a": 1,
				"b": 2,
			},
		},
		{
			name: "deep merge nested maps",
			dst: map[string]interface{}{
				"outer": map[string]interface{}{
					"a": 1,
					"b": 2,
				},
			},
			src: map[string]interface{}{
				"outer": map[string]interface{}{
					"b": 3,
					"c": 4,
				},
			},
			expected: map[string]interface{}{
				"outer": map[string]interface{}{
					"a": 1,
					"b": 3,
					"c": 4,
				},
			},
		},
		{
			name: "non-map overwrites map",
			dst: map[string]interface{}{
				"key": map[string]interface{}{"nested": 1},
			},
			src: map[string]interface{}{
				"key": "string value",
			},
			expected: map[string]interface{}{
				"key": "string value",
			},
		},
		{
			name: "three-way right-biased merge order",
			dst: map[string]interface{}{
				"AWS::Region": "us-east-1",
				"Env":         "dev",
			},
			src: map[string]interface{}{
				"Env": "prod",
			},
			expected: map[string]interface{}{
				"AWS::Region": "us-east-1",
				"Env":         "prod",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DeepMerge(tt.dst, tt.src)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("DeepMerge() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDeepMerge_DoesNotMutateInputs(t *testing.T) {
	dst := map[string]interface{}{"a": 1}
	src := map[string]interface{}{"b": 2}

	DeepMerge(dst, src)

	if len(dst) != 1 || dst["a"] != 1 {
		t.Errorf("DeepMerge() mutated dst: %v", dst)
	}
	if len(src) != 1 || src["b"] != 2 {
		t.Errorf("DeepMerge() mutated src: %v", src)
	}
}
