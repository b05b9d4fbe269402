package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewTransport returns the pooled transport shared by outbound clients.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
}

// NewHTTPClient builds a client around rt, or around NewTransport when rt is nil.
func NewHTTPClient(timeout time.Duration, rt http.RoundTripper) *http.Client {
	if rt == nil {
		rt = NewTransport()
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: rt,
	}
}
