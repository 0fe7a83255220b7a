package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// Import targets, chosen by file extension.
const (
	TargetRelational = "relational"
	TargetGraph      = "graph"
)

const defaultImportConcurrency = 2

// ImportReport describes one imported file.
type ImportReport struct {
	Path     string             `json:"path"`
	Target   string             `json:"target"`
	Result   ports.UploadResult `json:"result"`
	Duration time.Duration      `json:"duration"`
}

// ImporterConfig contains configuration for the importer.
type ImporterConfig struct {
	// Relational receives .json assignment files.
	Relational ports.Uploader

	// Graph receives .csv journal files.
	Graph ports.Uploader

	Logger *slog.Logger

	// Concurrency bounds how many files ImportAll loads at once.
	Concurrency int
}

// Importer loads input files into the store matching their extension.
type Importer struct {
	targets     map[string]importTarget
	logger      *slog.Logger
	concurrency int
}

type importTarget struct {
	name     string
	uploader ports.Uploader
}

type importInput struct {
	path   string
	target importTarget
	start  time.Time
}

// NewImporter creates an importer. Either uploader may be nil, in which
// case files of that kind are rejected.
func NewImporter(cfg ImporterConfig) *Importer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultImportConcurrency
	}

	targets := make(map[string]importTarget, 2)
	if cfg.Relational != nil {
		targets[".json"] = importTarget{name: TargetRelational, uploader: cfg.Relational}
	}

	if cfg.Graph != nil {
		targets[".csv"] = importTarget{name: TargetGraph, uploader: cfg.Graph}
	}

	logger = logger.With(slog.String("component", "importer"))

	return &Importer{
		targets:     targets,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Import loads a single file.
func (i *Importer) Import(ctx context.Context, path string) (ImportReport, error) {
	in := &importInput{path: path, start: time.Now()}

	load := Pipeline[*importInput, ports.UploadResult]{
		Name:     "import " + filepath.Base(path),
		Validate: i.validate,
		Perform: func(ctx context.Context, in *importInput) (ports.UploadResult, error) {
			return in.target.uploader.Upload(ctx, in.path)
		},
		Verify: func(_ context.Context, in *importInput, res ports.UploadResult) error {
			if res.Records == 0 {
				return domain.NewValidationErrorWithValue("path", "no records were loaded", in.path)
			}

			return nil
		},
	}

	res, err := load.Run(ctx, i.logger, in)
	if err != nil {
		return ImportReport{}, err
	}

	return ImportReport{Path: path, Target: in.target.name, Result: res, Duration: time.Since(in.start)}, nil
}

// ImportAll loads every path, at most Concurrency at a time. The first
// failure cancels the files still in flight.
func (i *Importer) ImportAll(ctx context.Context, paths ...string) ([]ImportReport, error) {
	if len(paths) == 0 {
		return nil, domain.NewValidationError("paths", "at least one file is required")
	}

	fns := make([]func(context.Context) (ImportReport, error), len(paths))
	for n, path := range paths {
		fns[n] = func(ctx context.Context) (ImportReport, error) { return i.Import(ctx, path) }
	}

	reports, err := Gather(ctx, i.concurrency, fns...)
	if err != nil {
		return nil, err
	}

	i.logger.InfoContext(ctx, "import finished", slog.Int("files", len(reports)))

	return reports, nil
}

func (i *Importer) validate(_ context.Context, in *importInput) error {
	ext := strings.ToLower(filepath.Ext(in.path))

	target, ok := i.targets[ext]
	if !ok {
		return domain.NewValidationErrorWithValue("path", "unsupported file type "+ext, in.path)
	}

	info, err := os.Stat(in.path)
	if err != nil {
		return domain.NewValidationErrorWithValue("path", "file cannot be read", in.path)
	}

	if info.IsDir() {
		return domain.NewValidationErrorWithValue("path", "is a directory", in.path)
	}

	in.target = target

	return nil
}
