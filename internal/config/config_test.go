package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	c := fromEnv()

	if c.Checker.JudgeURL != "https://httpbin.org/ip" {
		t.Fatalf("unexpected judge URL %q", c.Checker.JudgeURL)
	}
	if c.Checker.Timeout != 5000 {
		t.Fatalf("unexpected default timeout %d", c.Checker.Timeout)
	}
	if c.Checker.MaxBatchSize != 100 {
		t.Fatalf("unexpected default batch size %d", c.Checker.MaxBatchSize)
	}
	if got := c.ListenAddress(); got != "0.0.0.0:8080" {
		t.Fatalf("unexpected listen address %q", got)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CHECKER_TIMEOUT", "2500")
	t.Setenv("CHECKER_CONCURRENCY", "5")

	c := fromEnv()

	if c.Server.Port != 9090 {
		t.Fatalf("port override not applied, got %d", c.Server.Port)
	}
	if c.Checker.Timeout != 2500 {
		t.Fatalf("timeout override not applied, got %d", c.Checker.Timeout)
	}
	if c.Checker.Concurrency != 5 {
		t.Fatalf("concurrency override not applied, got %d", c.Checker.Concurrency)
	}
}

func TestSanitizeRejectsNonsenseValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "-1")
	t.Setenv("CHECKER_TIMEOUT", "0")
	t.Setenv("CHECKER_MAX_TIMEOUT", "10")

	c := fromEnv()

	if c.Server.Port != 8080 {
		t.Fatalf("invalid port should fall back to 8080, got %d", c.Server.Port)
	}
	if c.Checker.Timeout != 5000 {
		t.Fatalf("zero timeout should fall back to 5000, got %d", c.Checker.Timeout)
	}
	if c.Checker.MaxTimeout < c.Checker.Timeout {
		t.Fatalf("max timeout %d must not be below timeout %d", c.Checker.MaxTimeout, c.Checker.Timeout)
	}
}
