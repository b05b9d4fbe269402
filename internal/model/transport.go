package model

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strings"

	"sparky-backend/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	sensitiveHeaders = []string{"authorization", "x-api-key", "x-auth-token", "cookie"}

	sensitiveFieldPattern = regexp.MustCompile(`(?i)"(api_key|apikey|password|secret|token)"\s*:\s*"[^"]*"`)
)

// DebugTransport logs outbound provider requests at debug level. Credentials
// never reach the log: sensitive headers and JSON fields are redacted.
type DebugTransport struct {
	base    http.RoundTripper
	enabled bool
}

func NewDebugTransport(base http.RoundTripper, enabled bool) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DebugTransport{base: base, enabled: enabled}
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.enabled {
		return t.base.RoundTrip(req)
	}

	entry := logger.WithContext(req.Context()).WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	if req.Body != nil && req.Method == http.MethodPost {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			entry.WithError(err).Error("provider request: reading body")
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(body))
		entry = entry.WithFields(logrus.Fields{
			"headers": redactHeaders(req.Header),
			"body":    RedactBody(body),
			"bytes":   len(body),
		})
	}
	entry.Debug("provider request")

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		entry.WithError(err).Error("provider request failed")
		return nil, err
	}
	entry.WithField("status", resp.StatusCode).Debug("provider response")
	return resp, nil
}

func redactHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if isSensitiveHeader(name) {
			out[name] = "[REDACTED]"
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func isSensitiveHeader(name string) bool {
	for _, s := range sensitiveHeaders {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

// RedactBody masks the values of credential-looking JSON fields.
func RedactBody(body []byte) string {
	return sensitiveFieldPattern.ReplaceAllString(string(body), `"$1": "[REDACTED]"`)
}
