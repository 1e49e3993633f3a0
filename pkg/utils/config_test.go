package utils

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfiguration tests the JSON defaults file.
func TestLoadConfiguration(t *testing.T) {
	t.Parallel()

	t.Run("reads values and fills defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		contents := `{"Damping": 0.9, "Samples": 500}`
		if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
			t.Fatal(err)
		}
		config, err := LoadConfiguration(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Damping != 0.9 {
			t.Errorf("damping = %f, expected 0.9", config.Damping)
		}
		if config.Samples != 500 {
			t.Errorf("samples = %d, expected 500", config.Samples)
		}
		// Threshold was omitted -> default
		if config.Threshold != 0.001 {
			t.Errorf("threshold = %f, expected default 0.001", config.Threshold)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfiguration(path); err == nil {
			t.Error("expected an error for malformed JSON")
		}
	})
}

// TestReadEnvVars tests environment configuration defaults and overrides.
func TestReadEnvVars(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("RABBIT_HOST", "rabbit.local")
	t.Setenv("VERBOSE", "true")

	env := ReadEnvVars()
	if env.HTTPPort != 9999 {
		t.Errorf("HTTPPort = %d, expected 9999", env.HTTPPort)
	}
	if env.GrpcPort != 1234 {
		t.Errorf("GrpcPort = %d, expected default 1234", env.GrpcPort)
	}
	if env.RabbitHost != "rabbit.local" {
		t.Errorf("RabbitHost = %q, expected rabbit.local", env.RabbitHost)
	}
	if env.RabbitUser != "guest" {
		t.Errorf("RabbitUser = %q, expected default guest", env.RabbitUser)
	}
	if !env.Verbose {
		t.Error("Verbose = false, expected true")
	}
}

// TestReadIntEnvVarOr tests the integer fallback helper.
func TestReadIntEnvVarOr(t *testing.T) {
	t.Setenv("SOME_COUNT", "7")
	if got := ReadIntEnvVarOr("SOME_COUNT", 3); got != 7 {
		t.Errorf("got %d, expected 7", got)
	}
	if got := ReadIntEnvVarOr("MISSING_COUNT", 3); got != 3 {
		t.Errorf("got %d, expected fallback 3", got)
	}
	t.Setenv("BAD_COUNT", "seven")
	if got := ReadIntEnvVarOr("BAD_COUNT", 3); got != 3 {
		t.Errorf("got %d, expected fallback 3", got)
	}
}
