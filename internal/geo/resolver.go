// Package geo annotates working check results with the location of the
// proxy's exit IP. Lookups come from a local GeoLite2 database when one is
// configured; otherwise the resolver is a no-op.
package geo

import (
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"github.com/oschwald/geoip2-golang"
)

type Resolver interface {
	// Lookup returns the country and city for an IP address. Both are empty
	// when the address is unknown or the resolver has no database.
	Lookup(ip string) (country, city string)
	Close() error
}

// Open returns a database-backed resolver when databasePath is set, and a
// no-op resolver otherwise.
func Open(databasePath string) (Resolver, error) {
	if databasePath == "" {
		return nopResolver{}, nil
	}

	reader, err := geoip2.Open(databasePath)
	if err != nil {
		return nil, fmt.Errorf("geo: open database %q: %w", databasePath, err)
	}
	log.Info("GeoIP database loaded", "path", databasePath)
	return &maxmindResolver{reader: reader}, nil
}

type maxmindResolver struct {
	reader *geoip2.Reader
}

func (r *maxmindResolver) Lookup(ip string) (string, string) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", ""
	}

	record, err := r.reader.City(parsed)
	if err != nil {
		log.Debug("GeoIP lookup failed", "ip", ip, "error", err)
		return "", ""
	}

	return record.Country.Names["en"], record.City.Names["en"]
}

func (r *maxmindResolver) Close() error {
	return r.reader.Close()
}

type nopResolver struct{}

func (nopResolver) Lookup(string) (string, string) { return "", "" }

func (nopResolver) Close() error { return nil }
