package support

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CHECKER_TEST_ENV", "value")
	if got := GetEnv("CHECKER_TEST_ENV", "fallback"); got != "value" {
		t.Fatalf("GetEnv returned %s, want value", got)
	}

	if got := GetEnv("CHECKER_TEST_ENV_MISSING", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv returned %s, want fallback", got)
	}
}

func TestGetEnvTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("CHECKER_TEST_ENV_BLANK", "   ")
	if got := GetEnv("CHECKER_TEST_ENV_BLANK", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv returned %s, want fallback for blank value", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CHECKER_TEST_INT", "42")
	if got := GetEnvInt("CHECKER_TEST_INT", 7); got != 42 {
		t.Fatalf("GetEnvInt returned %d, want 42", got)
	}

	t.Setenv("CHECKER_TEST_INT", "not-a-number")
	if got := GetEnvInt("CHECKER_TEST_INT", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want 7 fallback", got)
	}

	if got := GetEnvInt("CHECKER_TEST_INT_MISSING", 7); got != 7 {
		t.Fatalf("GetEnvInt returned %d, want 7 fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("CHECKER_TEST_BOOL", "true")
	if got := GetEnvBool("CHECKER_TEST_BOOL", false); got != true {
		t.Fatalf("GetEnvBool returned %t, want true", got)
	}

	t.Setenv("CHECKER_TEST_BOOL", "false")
	if got := GetEnvBool("CHECKER_TEST_BOOL", true); got != false {
		t.Fatalf("GetEnvBool returned %t, want false", got)
	}

	if got := GetEnvBool("CHECKER_TEST_BOOL_MISSING", true); got != true {
		t.Fatalf("GetEnvBool returned %t, want true fallback", got)
	}
}

func TestNormalizeProxyURL(t *testing.T) {
	proxyURL, err := NormalizeProxyURL("127.0.0.1:8080")
	if err != nil {
		t.Fatalf("NormalizeProxyURL returned error: %v", err)
	}
	if proxyURL.Scheme != "http" || proxyURL.Host != "127.0.0.1:8080" {
		t.Fatalf("unexpected URL %q", proxyURL.String())
	}

	proxyURL, err = NormalizeProxyURL("https://10.0.0.1:3128")
	if err != nil {
		t.Fatalf("NormalizeProxyURL returned error: %v", err)
	}
	if proxyURL.Scheme != "https" {
		t.Fatalf("scheme %q should be preserved", proxyURL.Scheme)
	}

	if _, err := NormalizeProxyURL("   "); err == nil {
		t.Fatal("NormalizeProxyURL should reject blank addresses")
	}

	if _, err := NormalizeProxyURL("http://"); err == nil {
		t.Fatal("NormalizeProxyURL should reject addresses without a host")
	}
}
