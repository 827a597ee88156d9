package main

import (
	"strings"
	"testing"
)

func TestGetVersion(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	t.Run("returns ldflags version when set", func(t *testing.T) {
		Version = "v1.2.3"
		got := getVersion()
		if got != "v1.2.3" {
			t.Errorf("getVersion() = %q, want %q", got, "v1.2.3")
		}
	})

	t.Run("returns dev or module version when Version is dev", func(t *testing.T) {
		Version = "dev"
		got := getVersion()
		if got == "" {
			t.Error("getVersion() returned empty string")
		}
	})

	t.Run("never returns the devel placeholder", func(t *testing.T) {
		Version = "dev"
		got := getVersion()
		if got == "(devel)" {
			t.Error("getVersion() leaked the raw (devel) build-info placeholder")
		}
	})
}

func TestVersionNotEmpty(t *testing.T) {
	originalVersion := Version
	defer func() { Version = originalVersion }()

	testCases := []string{"dev", "v1.0.0", "1.0.0", "custom-version"}
	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			Version = tc
			got := getVersion()
			if got == "" {
				t.Errorf("getVersion() with Version=%q returned empty string", tc)
			}
		})
	}
}
