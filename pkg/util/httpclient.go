package util

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"
)

// NewHTTPClient builds an HTTP client with an explicit root-certificate
// pool: the system pool, optionally extended with a PEM bundle file. The
// client is constructed once at startup and passed to every component that
// talks to the network.
func NewHTTPClient(timeout time.Duration, caBundlePath string) (*http.Client, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}

	if caBundlePath != "" {
		pem, err := os.ReadFile(caBundlePath)
		if err != nil {
			return nil, fmt.Errorf("read ca bundle: %w", err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca bundle %s contains no valid certificates", caBundlePath)
		}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{RootCAs: pool}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}, nil
}
