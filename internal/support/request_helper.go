package support

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NormalizeProxyURL turns a caller-supplied proxy address into a URL the
// transport can use. Bare "host:port" addresses get an http scheme, matching
// how callers commonly submit proxies.
func NormalizeProxyURL(address string) (*url.URL, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("support: empty proxy address")
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}

	proxyURL, err := url.Parse(address)
	if err != nil {
		return nil, fmt.Errorf("support: parse proxy address %q: %w", address, err)
	}
	if proxyURL.Host == "" {
		return nil, fmt.Errorf("support: proxy address %q has no host", address)
	}
	return proxyURL, nil
}

// CreateTransport builds a throwaway transport that routes every request
// through the given proxy. Keep-alives are disabled so each check dials the
// proxy fresh and measures the full connection cost.
func CreateTransport(proxyURL *url.URL, timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 0, // KeepAlive disabled
		}).DialContext,
		DisableKeepAlives:     true,
		MaxIdleConns:          0,
		MaxIdleConnsPerHost:   0,
		IdleConnTimeout:       0,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		// Candidate proxies routinely sit behind interception certificates;
		// the check cares about reachability, not certificate trust.
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
	}
}
