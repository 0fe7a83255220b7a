package sparql

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/clients"
	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

const (
	// contentTypeResults is the SPARQL 1.1 JSON results media type.
	contentTypeResults = "application/sparql-results+json"

	// defaultBatchSize is the number of CSV records per upload update.
	defaultBatchSize = 500
)

var (
	_ ports.JournalMetadataSource = (*Store)(nil)
	_ ports.Uploader              = (*Store)(nil)
	_ ports.PathConfigurable      = (*Store)(nil)
	_ ports.HealthChecker         = (*Store)(nil)
)

// Config configures a graph Store.
type Config struct {
	// Name identifies the store in health output. Defaults to StoreName.
	Name string

	// Endpoint is the SPARQL endpoint URL. It may be set later with
	// SetDbPathOrURL.
	Endpoint string

	// Client is the HTTP client template. BaseURL and ServiceName are
	// filled in per endpoint.
	Client clients.Config

	// BatchSize is the number of CSV records sent per update.
	BatchSize int

	// UpdatesPerSecond paces upload batches. Zero disables pacing.
	UpdatesPerSecond float64

	Logger *slog.Logger
}

// Store is a JournalMetadataSource over a SPARQL endpoint.
// Each call is one protocol round trip; the HTTP client is built lazily
// per endpoint and reused so breaker state persists across calls.
type Store struct {
	mu       sync.Mutex
	cfg      Config
	endpoint string
	client   *clients.Client
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// New creates a graph Store. An invalid Config.Endpoint is a ValidationError.
func New(cfg Config) (*Store, error) {
	if cfg.Name == "" {
		cfg.Name = StoreName
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.UpdatesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.UpdatesPerSecond), 1)
	}

	s := &Store{
		cfg:     cfg,
		limiter: limiter,
		logger:  logger.With(slog.String("component", "sparql.Store")),
	}

	if cfg.Endpoint != "" {
		if err := s.SetDbPathOrURL(cfg.Endpoint); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// DbPathOrURL returns the configured endpoint URL.
func (s *Store) DbPathOrURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.endpoint
}

// SetDbPathOrURL sets the SPARQL endpoint URL. It must be an absolute
// http or https URL.
func (s *Store) SetDbPathOrURL(endpoint string) error {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return domain.NewValidationError("endpoint", "must not be empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.NewValidationErrorWithValue("endpoint", "must be an absolute http or https URL", endpoint)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.endpoint != endpoint {
		s.endpoint = endpoint
		s.client = nil
	}

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return s.cfg.Name
}

// Check implements ports.HealthChecker with an empty ASK query.
func (s *Store) Check(ctx context.Context) error {
	client, endpoint, err := s.conn()
	if err != nil {
		return err
	}

	resp, err := client.PostForm(ctx, "", url.Values{"query": {askQuery}})
	if err != nil {
		return mapClientError(err, endpoint, "health check")
	}
	defer closeBody(s.logger, resp)

	if err := mapStatus(resp, endpoint, "health check"); err != nil {
		return err
	}

	if _, err := decodeBoolean(resp.Body); err != nil {
		return domain.NewStoreError(StoreName, "health check", err)
	}

	return nil
}

// GetAllJournals returns every journal.
func (s *Store) GetAllJournals(ctx context.Context) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get all journals", allJournalsQuery())
}

// GetJournalsWithTitle returns journals whose title contains substring,
// ignoring case.
func (s *Store) GetJournalsWithTitle(ctx context.Context, substring string) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get journals with title", titleQuery(substring))
}

// GetJournalsPublishedBy returns journals whose publisher contains
// substring, ignoring case.
func (s *Store) GetJournalsPublishedBy(ctx context.Context, substring string) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get journals published by", publisherQuery(substring))
}

// GetJournalsWithLicense returns journals whose license is in licenses.
func (s *Store) GetJournalsWithLicense(ctx context.Context, licenses []string) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get journals with license", licenseQuery(licenses))
}

// GetJournalsWithAPC returns journals whose APC flag equals apc.
func (s *Store) GetJournalsWithAPC(ctx context.Context, apc bool) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get journals with apc", apcQuery(apc))
}

// GetJournalsWithDOAJSeal returns journals whose DOAJ seal flag equals seal.
func (s *Store) GetJournalsWithDOAJSeal(ctx context.Context, seal bool) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get journals with doaj seal", sealQuery(seal))
}

// GetByID returns the journals identified by id.
func (s *Store) GetByID(ctx context.Context, id string) ([]ports.JournalRow, error) {
	return s.selectJournals(ctx, "get by id", byIDQuery(id))
}

// conn returns the client for the current endpoint, building it on first use.
func (s *Store) conn() (*clients.Client, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.endpoint == "" {
		return nil, "", domain.NewConfigurationError(StoreName, "endpoint URL is not set")
	}

	if s.client == nil {
		cfg := s.cfg.Client
		cfg.BaseURL = s.endpoint
		cfg.ServiceName = s.cfg.Name
		cfg.Headers = http.Header{"Accept": {contentTypeResults}}
		cfg.Logger = s.logger

		client, err := clients.New(cfg)
		if err != nil {
			return nil, "", domain.NewConfigurationError(StoreName, err.Error())
		}

		s.client = client
	}

	return s.client, s.endpoint, nil
}

func (s *Store) selectJournals(ctx context.Context, operation, query string) ([]ports.JournalRow, error) {
	client, endpoint, err := s.conn()
	if err != nil {
		return nil, err
	}

	ctx = logging.WithStore(ctx, StoreName, endpoint)
	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "sparql query",
		slog.String("operation", operation),
		slog.String("query", query),
	)

	resp, err := client.PostForm(ctx, "", url.Values{"query": {query}})
	if err != nil {
		return nil, mapClientError(err, endpoint, operation)
	}
	defer closeBody(s.logger, resp)

	if err := mapStatus(resp, endpoint, operation); err != nil {
		return nil, err
	}

	rows, err := decodeJournals(resp.Body)
	if err != nil {
		return nil, domain.NewStoreError(StoreName, operation, err)
	}

	return rows, nil
}

// update sends one SPARQL update.
func (s *Store) update(ctx context.Context, operation, update string) error {
	client, endpoint, err := s.conn()
	if err != nil {
		return err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return domain.NewStoreError(StoreName, operation, err)
	}

	ctx = logging.WithStore(ctx, StoreName, endpoint)

	resp, err := client.PostForm(ctx, "", url.Values{"update": {update}})
	if err != nil {
		return mapClientError(err, endpoint, operation)
	}
	defer closeBody(s.logger, resp)

	return mapStatus(resp, endpoint, operation)
}

func closeBody(logger *slog.Logger, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		logger.Debug("failed to close response body", slog.Any("error", err))
	}
}
