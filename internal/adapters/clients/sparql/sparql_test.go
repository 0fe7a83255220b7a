package sparql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/clients"
	"github.com/jsamuelsen/journal-catalog/internal/platform/config"
)

// fakeEndpoint is a SPARQL protocol endpoint that records every request
// and answers with a canned response.
type fakeEndpoint struct {
	mu      sync.Mutex
	queries []string
	updates []string
	accept  []string

	status int
	body   string
}

func (f *fakeEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	if q := r.PostForm.Get("query"); q != "" {
		f.queries = append(f.queries, q)
	}
	if u := r.PostForm.Get("update"); u != "" {
		f.updates = append(f.updates, u)
	}
	f.accept = append(f.accept, r.Header.Get("Accept"))
	status, body := f.status, f.body
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}

	w.Header().Set("Content-Type", contentTypeResults)
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeEndpoint) lastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queries) == 0 {
		return ""
	}

	return f.queries[len(f.queries)-1]
}

func (f *fakeEndpoint) allUpdates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.updates...)
}

// clientConfig is a fast-failing client template for tests.
func clientConfig() clients.Config {
	return clients.Config{
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     100 * time.Millisecond,
			Multiplier:      2,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func newTestStore(t *testing.T, f *fakeEndpoint) *Store {
	t.Helper()

	server := httptest.NewServer(f)
	t.Cleanup(server.Close)

	s, err := New(Config{Endpoint: server.URL + "/sparql", Client: clientConfig(), BatchSize: 2})
	require.NoError(t, err)

	return s
}

// selectBody renders a SELECT results document from variable/value rows.
func selectBody(t *testing.T, rows ...map[string]string) string {
	t.Helper()

	bindings := make([]map[string]binding, 0, len(rows))
	for _, row := range rows {
		b := make(map[string]binding, len(row))
		for k, v := range row {
			typ := "literal"
			if k == varJournal {
				typ = "uri"
			}
			b[k] = binding{Type: typ, Value: v}
		}
		bindings = append(bindings, b)
	}

	doc := map[string]any{
		"head":    map[string]any{"vars": []string{varJournal, varTitle, varISSN, varEISSN}},
		"results": map[string]any{"bindings": bindings},
	}

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	return string(out)
}
