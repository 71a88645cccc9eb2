package config

import (
	"os"
	"testing"
)

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test_value")
	defer os.Unsetenv("TEST_VAR")

	result := getEnv("TEST_VAR", "default_value")
	if result != "test_value" {
		t.Errorf("getEnv() = %s, want %s", result, "test_value")
	}

	result = getEnv("NON_EXISTENT_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}

	os.Setenv("EMPTY_VAR", "")
	defer os.Unsetenv("EMPTY_VAR")

	result = getEnv("EMPTY_VAR", "default_value")
	if result != "default_value" {
		t.Errorf("getEnv() = %s, want %s", result, "default_value")
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{"Unset", "", 7},
		{"Valid", "4", 4},
		{"Padded", " 12 ", 12},
		{"Invalid", "four", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)
			if result := getEnvInt("TEST_INT_VAR", 7); result != tt.expected {
				t.Errorf("getEnvInt(%q) = %d, want %d", tt.value, result, tt.expected)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"Unset", "", false},
		{"True", "true", true},
		{"One", "1", true},
		{"False", "false", false},
		{"Invalid", "sometimes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_VAR", tt.value)
			if result := getEnvBool("TEST_BOOL_VAR", false); result != tt.expected {
				t.Errorf("getEnvBool(%q) = %v, want %v", tt.value, result, tt.expected)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	testVars := map[string]string{
		"API_URL":           "https://test-api.example.com",
		"ACCESS_KEY":        "test-access-key",
		"SECRET_KEY":        "test-secret-key",
		"REGION":            "test-region",
		"LOG_LEVEL":         "debug",
		"AUDIT_CONCURRENCY": "8",
		"SINGLE_PAGE":       "true",
		"MAX_ATTEMPTS":      "1",
	}

	for key, value := range testVars {
		t.Setenv(key, value)
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != testVars["API_URL"] {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, testVars["API_URL"])
	}

	if config.AccessKey != testVars["ACCESS_KEY"] {
		t.Errorf("config.AccessKey = %s, want %s", config.AccessKey, testVars["ACCESS_KEY"])
	}

	if config.SecretKey != testVars["SECRET_KEY"] {
		t.Errorf("config.SecretKey = %s, want %s", config.SecretKey, testVars["SECRET_KEY"])
	}

	if config.Region != testVars["REGION"] {
		t.Errorf("config.Region = %s, want %s", config.Region, testVars["REGION"])
	}

	if config.LogLevel != "debug" {
		t.Errorf("config.LogLevel = %s, want %s", config.LogLevel, "debug")
	}

	if config.Concurrency != 8 {
		t.Errorf("config.Concurrency = %d, want %d", config.Concurrency, 8)
	}

	if !config.SinglePage {
		t.Errorf("config.SinglePage = false, want true")
	}

	if config.MaxAttempts != 1 {
		t.Errorf("config.MaxAttempts = %d, want %d", config.MaxAttempts, 1)
	}

	if !config.HasStaticCredentials() {
		t.Errorf("config.HasStaticCredentials() = false, want true")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"API_URL", "ACCESS_KEY", "SECRET_KEY", "REGION", "LOG_LEVEL", "AUDIT_CONCURRENCY", "SINGLE_PAGE", "MAX_ATTEMPTS"} {
		t.Setenv(key, "")
	}

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.ApiURL != "" {
		t.Errorf("config.ApiURL = %s, want %s", config.ApiURL, "")
	}

	if config.Region != "us-east-1" {
		t.Errorf("config.Region = %s, want %s", config.Region, "us-east-1")
	}

	if config.LogLevel != "info" {
		t.Errorf("config.LogLevel = %s, want %s", config.LogLevel, "info")
	}

	if config.Concurrency != 1 {
		t.Errorf("config.Concurrency = %d, want %d", config.Concurrency, 1)
	}

	if config.SinglePage {
		t.Errorf("config.SinglePage = true, want false")
	}

	if config.HasStaticCredentials() {
		t.Errorf("config.HasStaticCredentials() = true, want false")
	}
}

func TestLoadClampsConcurrency(t *testing.T) {
	t.Setenv("AUDIT_CONCURRENCY", "-3")
	t.Setenv("MAX_ATTEMPTS", "-1")

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config.Concurrency != 1 {
		t.Errorf("config.Concurrency = %d, want %d", config.Concurrency, 1)
	}

	if config.MaxAttempts != 0 {
		t.Errorf("config.MaxAttempts = %d, want %d", config.MaxAttempts, 0)
	}
}
