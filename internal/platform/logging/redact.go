package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase header names whose values never reach
// log output. HeaderAttrs and the attribute redactor both read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// Attribute keys that always hold secrets, plus key prefixes for their
// variants (secret_key, api_key_v2).
var (
	secretKeys     = []string{"password", "secret", "token", "redis_password"}
	secretPrefixes = []string{"secret_", "api_key"}
)

// Value patterns caught regardless of the attribute key.
var secretValues = []*regexp.Regexp{
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWT: three base64url segments of 10+ chars, so version strings pass.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Connection strings with inline credentials: redis://:pass@host:6379/0.
	regexp.MustCompile(`[a-z][a-z0-9+\-.]*://[^\s/@]*:[^\s/@]*@\S+`),
}

// redactAttr builds the slog ReplaceAttr hook that masks secrets by key,
// key prefix or value shape.
func redactAttr() func([]string, slog.Attr) slog.Attr {
	opts := []masq.Option{masq.WithRedactMessage(redacted)}
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, key := range secretKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	for _, prefix := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range secretValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
