package config

import (
	"os"
	"testing"
)

// unsetEnv removes key for the duration of the test. t.Setenv registers the
// cleanup that restores the previous value.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"LISTEN_ADDR", "HOST", "PORT", "LOG_DIR", "LOG_LEVEL", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "ENABLE_PPROF", "VERCEL", "AWS_LAMBDA_FUNCTION_NAME"} {
		unsetEnv(t, key)
	}

	cfg := Load()

	if cfg.ListenAddr != "0.0.0.0:8000" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, "0.0.0.0:8000")
	}
	if cfg.LogDir != "logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "logs")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogMaxSizeMB != 10 || cfg.LogMaxBackups != 5 {
		t.Errorf("rotation = %d MB / %d backups, want 10 / 5", cfg.LogMaxSizeMB, cfg.LogMaxBackups)
	}
	if cfg.Serverless {
		t.Error("Serverless should be false without platform variables")
	}
	if cfg.EnablePprof {
		t.Error("EnablePprof should default to false")
	}
	if cfg.App.Version != "1.0.0" {
		t.Errorf("App.Version = %q, want %q", cfg.App.Version, "1.0.0")
	}
}

func TestLoad_Overrides(t *testing.T) {
	unsetEnv(t, "LISTEN_ADDR")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_MAX_SIZE_MB", "1")
	t.Setenv("LOG_MAX_BACKUPS", "not-a-number")
	t.Setenv("ENABLE_PPROF", "true")

	cfg := Load()

	if cfg.ListenAddr != "127.0.0.1:9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, "127.0.0.1:9090")
	}
	if cfg.LogMaxSizeMB != 1 {
		t.Errorf("LogMaxSizeMB = %d, want 1", cfg.LogMaxSizeMB)
	}
	if cfg.LogMaxBackups != 5 {
		t.Errorf("LogMaxBackups = %d, want default 5 on parse failure", cfg.LogMaxBackups)
	}
	if !cfg.EnablePprof {
		t.Error("EnablePprof should be true")
	}

	t.Setenv("LISTEN_ADDR", ":7000")
	if got := Load().ListenAddr; got != ":7000" {
		t.Errorf("ListenAddr = %q, want LISTEN_ADDR override %q", got, ":7000")
	}
}

func TestIsServerless(t *testing.T) {
	tests := []struct {
		name   string
		vercel string
		lambda *string
		want   bool
	}{
		{name: "plain host", want: false},
		{name: "vercel", vercel: "1", want: true},
		{name: "vercel other value", vercel: "0", want: false},
		{name: "lambda", lambda: ptr("my-function"), want: true},
		{name: "lambda empty name", lambda: ptr(""), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unsetEnv(t, "VERCEL")
			unsetEnv(t, "AWS_LAMBDA_FUNCTION_NAME")
			if tt.vercel != "" {
				t.Setenv("VERCEL", tt.vercel)
			}
			if tt.lambda != nil {
				t.Setenv("AWS_LAMBDA_FUNCTION_NAME", *tt.lambda)
			}

			if got := IsServerless(); got != tt.want {
				t.Errorf("IsServerless() = %v, want %v", got, tt.want)
			}
		})
	}
}

func ptr(s string) *string { return &s }
