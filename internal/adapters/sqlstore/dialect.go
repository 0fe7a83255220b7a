package sqlstore

import (
	"net/url"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// dialect captures the differences between the two supported databases.
type dialect int

const (
	dialectSQLite dialect = iota
	dialectPostgres
)

func (d dialect) String() string {
	if d == dialectPostgres {
		return "postgres"
	}

	return "sqlite"
}

// resolveDSN picks the driver for a DSN. PostgreSQL URLs go through pgx;
// anything else is a SQLite file path.
func resolveDSN(dsn string, readOnly bool) (driver, source string, d dialect) {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return "pgx", dsn, dialectPostgres
	}

	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 && strings.HasPrefix(dsn, "file:") {
		path = path[:i]
	}

	mode := "rwc"
	if readOnly {
		mode = "ro"
	}

	source = "file:" + (&url.URL{Path: path}).EscapedPath() +
		"?mode=" + mode + "&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	return "sqlite3", source, dialectSQLite
}

// rebind rewrites ? placeholders to $n for PostgreSQL.
func (d dialect) rebind(query string) string {
	if d != dialectPostgres || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// placeholders renders n comma-separated ? placeholders.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// stringArgs converts filter values to query arguments.
func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}

	return args
}
