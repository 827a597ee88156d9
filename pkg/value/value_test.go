package value

import (
	"testing"
	"time"
)

func TestFromRawRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
	}{
		{"string", "hello"},
		{"int", 42},
		{"float", 0.3},
		{"bool", true},
		{"list", []interface{}{"a", "b"}},
		{"map", map[string]interface{}{"k": "v"}},
		{"nested", map[string]interface{}{"Ref": "X"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := From(tt.raw)
			got := v.Raw()
			if !rawEqual(got, tt.raw) {
				t.Errorf("round trip mismatch: got %#v, want %#v", got, tt.raw)
			}
		})
	}
}

func rawEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !rawEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if !rawEqual(v, bv[k]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"string", Str("abc"), "abc"},
		{"whole number", Num(10), "10"},
		{"fractional number", Num(0.3), "0.3"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"date", Date(time.Date(2019, 12, 10, 0, 0, 0, 0, time.UTC)), "2019-12-10"},
		{"null", Null, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsInt(t *testing.T) {
	if !Num(10).IsInt() {
		t.Error("expected 10 to be an int")
	}
	if Num(0.3).IsInt() {
		t.Error("expected 0.3 not to be an int")
	}
}

func TestAsIntrinsic(t *testing.T) {
	tests := []struct {
		name    string
		v       Value
		wantKey string
		wantOK  bool
	}{
		{
			name:    "single intrinsic key",
			v:       From(map[string]interface{}{"Ref": "abc"}),
			wantKey: "Ref",
			wantOK:  true,
		},
		{
			name:   "unknown single key is plain data",
			v:      From(map[string]interface{}{"Foo": "abc"}),
			wantOK: false,
		},
		{
			name:   "multi-key map is always plain data",
			v:      From(map[string]interface{}{"Ref": "abc", "Other": "x"}),
			wantOK: false,
		},
		{
			name:   "scalar is never intrinsic",
			v:      Str("Ref"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _, ok := AsIntrinsic(tt.v)
			if ok != tt.wantOK {
				t.Fatalf("AsIntrinsic() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && key != tt.wantKey {
				t.Errorf("AsIntrinsic() key = %q, want %q", key, tt.wantKey)
			}
		})
	}
}
