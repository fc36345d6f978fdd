package geo

import "testing"

func TestOpenWithoutDatabaseReturnsNop(t *testing.T) {
	resolver, err := Open("")
	if err != nil {
		t.Fatalf("Open returned error for empty path: %v", err)
	}
	t.Cleanup(func() { _ = resolver.Close() })

	country, city := resolver.Lookup("203.0.113.7")
	if country != "" || city != "" {
		t.Fatalf("nop resolver returned %q/%q, want empty", country, city)
	}
}

func TestOpenMissingDatabaseFails(t *testing.T) {
	if _, err := Open("/nonexistent/GeoLite2-City.mmdb"); err == nil {
		t.Fatal("Open should fail for a missing database file")
	}
}
