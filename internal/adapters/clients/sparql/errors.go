package sparql

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/clients"
	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// StoreName identifies the graph store in errors, logs and health output.
const StoreName = "graph"

// ErrRejected is the cause of a StoreError for a 4xx endpoint response,
// typically a malformed query or update.
var ErrRejected = errors.New("request rejected by endpoint")

// maxErrorBody bounds how much of an error response is quoted.
const maxErrorBody = 512

// mapClientError wraps a transport level failure. Breaker and retry
// exhaustion additionally wrap an UnavailableError.
func mapClientError(err error, endpoint, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewStoreError(StoreName, operation,
			fmt.Errorf("%w: %w", domain.NewUnavailableError(endpoint, "circuit breaker open"), err))

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewStoreError(StoreName, operation,
			fmt.Errorf("%w: %w", domain.NewUnavailableError(endpoint, "max retries exceeded"), err))

	default:
		return domain.NewStoreError(StoreName, operation, err)
	}
}

// mapStatus turns a non-2xx response into a StoreError. The caller closes
// the body.
func mapStatus(resp *http.Response, endpoint, operation string) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := readMessage(resp.Body)
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return domain.NewStoreError(StoreName, operation,
			domain.NewUnavailableError(endpoint, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, message)))
	}

	return domain.NewStoreError(StoreName, operation,
		fmt.Errorf("%w: HTTP %d: %s", ErrRejected, resp.StatusCode, message))
}

func readMessage(body io.Reader) string {
	if body == nil {
		return ""
	}

	b, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil {
		return ""
	}

	return strings.Join(strings.Fields(string(b)), " ")
}
