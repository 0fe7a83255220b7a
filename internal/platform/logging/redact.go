package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	// credentialURLPattern matches a store address carrying a password,
	// e.g. postgres://catalog:pass@db/catalog or https://u:p@host/sparql.
	credentialURLPattern = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://[^/:@\s]+:[^/@\s]+@`)

	// postgresKeywordPattern matches a keyword/value DSN with a password.
	postgresKeywordPattern = regexp.MustCompile(`(?i)(^|\s)password=\S+`)

	// authHeaderPattern matches Authorization header values.
	authHeaderPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// DefaultRedactOptions returns the masq options applied to every handler.
// Store addresses are logged on each query, so credential-bearing DSNs and
// endpoint URLs are caught by value as well as by field name.
func DefaultRedactOptions() []masq.Option {
	return []masq.Option{
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldName("api_key"),
		masq.WithFieldName("authorization"),
		masq.WithFieldName("Authorization"),
		masq.WithFieldName("cookie"),
		masq.WithFieldPrefix("secret"),

		masq.WithRegex(credentialURLPattern),
		masq.WithRegex(postgresKeywordPattern),
		masq.WithRegex(authHeaderPattern),
	}
}

// NewReplaceAttr returns a slog.HandlerOptions.ReplaceAttr that redacts
// secrets using DefaultRedactOptions plus opts.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
