package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := &Config{
		App:      AppConfig{Environment: "development"},
		Logger:   LoggerConfig{Level: "info"},
		Database: DatabaseConfig{Path: "/tmp/clutchboard.db"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Ingest: IngestConfig{RateLimitRPS: 2, RateLimitBurst: 5},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty environment", func(c *Config) { c.App.Environment = "" }},
		{"unknown environment", func(c *Config) { c.App.Environment = "testing" }},
		{"bad log level", func(c *Config) { c.Logger.Level = "verbose" }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"zero ingest rps", func(c *Config) { c.Ingest.RateLimitRPS = 0 }},
		{"zero ingest burst", func(c *Config) { c.Ingest.RateLimitBurst = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := *valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate: expected error, got nil")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	// Absolute paths pass through cleaned.
	got, err := expandPath("/data//clutchboard.db", "")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != "/data/clutchboard.db" {
		t.Errorf("expandPath: got %q", got)
	}

	// Empty falls back to the default.
	got, err = expandPath("", "/default/path.db")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != "/default/path.db" {
		t.Errorf("expandPath: got %q, want default", got)
	}

	// Tilde expands to the home directory.
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err = expandPath("~/games.db", "")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	if got != filepath.Join(home, "games.db") {
		t.Errorf("expandPath: got %q", got)
	}
}

func TestGetConfigValuePrecedence(t *testing.T) {
	const key = "CLUTCHBOARD_TEST_VALUE"
	t.Setenv(key, "from-env")

	// Flag beats env.
	if got := getConfigValue("from-flag", key, "default"); got != "from-flag" {
		t.Errorf("got %q, want flag value", got)
	}

	// Env beats default.
	if got := getConfigValue("", key, "default"); got != "from-env" {
		t.Errorf("got %q, want env value", got)
	}

	// Default when nothing else is set.
	if got := getConfigValue("", "CLUTCHBOARD_TEST_UNSET", "default"); got != "default" {
		t.Errorf("got %q, want default", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")

	content := "# comment\nCLUTCHBOARD_ENVFILE_A=hello\nCLUTCHBOARD_ENVFILE_B=\"quoted\"\n"
	if err := os.WriteFile(envPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("CLUTCHBOARD_ENVFILE_A", "")
	t.Setenv("CLUTCHBOARD_ENVFILE_B", "")
	os.Unsetenv("CLUTCHBOARD_ENVFILE_A")
	os.Unsetenv("CLUTCHBOARD_ENVFILE_B")

	if err := loadEnvFile(envPath); err != nil {
		t.Fatalf("loadEnvFile: %v", err)
	}

	if got := os.Getenv("CLUTCHBOARD_ENVFILE_A"); got != "hello" {
		t.Errorf("A: got %q, want %q", got, "hello")
	}
	if got := os.Getenv("CLUTCHBOARD_ENVFILE_B"); got != "quoted" {
		t.Errorf("B: got %q, want %q", got, "quoted")
	}
}

func TestGetIntAndFloatConfigValue(t *testing.T) {
	if got := getIntConfigValue("7", "UNUSED", 2); got != 7 {
		t.Errorf("int: got %d, want 7", got)
	}
	if got := getIntConfigValue("junk", "UNUSED", 2); got != 2 {
		t.Errorf("int fallback: got %d, want 2", got)
	}
	if got := getFloatConfigValue("2.5", "UNUSED", 1); got != 2.5 {
		t.Errorf("float: got %v, want 2.5", got)
	}
	if got := getFloatConfigValue("", "UNUSED", 1.5); got != 1.5 {
		t.Errorf("float default: got %v, want 1.5", got)
	}
}
