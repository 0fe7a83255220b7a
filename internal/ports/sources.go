// Package ports defines the interfaces the catalog facade depends on and
// the row types that cross them.
//
// Filter arguments are plain string slices. A nil or empty slice always
// means "unconstrained", never "match nothing".
package ports

import (
	"context"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
)

// CategoryRow is a distinct (category, quartile) pair. Quartile is empty
// when the assignment carries none.
type CategoryRow struct {
	Name     string
	Quartile string
}

// AreaRow is a distinct area.
type AreaRow struct {
	Name string
}

// CategoryAssignmentRow records that a journal belongs to a category with
// the given journal-specific quartile.
type CategoryAssignmentRow struct {
	Identifiers []string
	Category    string
	Quartile    string
}

// AreaAssignmentRow records that a journal belongs to an area.
type AreaAssignmentRow struct {
	Identifiers []string
	Area        string
}

// AssignmentRow groups every assignment of one journal.
type AssignmentRow struct {
	Identifiers []string
	Categories  []CategoryRow
	Areas       []string
}

// EntityRow is the result of a relational id lookup. Kind is either
// domain.KindCategory or domain.KindArea.
type EntityRow struct {
	ID       string
	Kind     domain.Kind
	Quartile string
}

// JournalRow is one journal as stored in the graph. Seal and APC are
// already normalized from the store's present/absent/falsy representation.
type JournalRow struct {
	Identifiers []string
	Title       string
	Languages   []string
	Publisher   string
	Seal        bool
	License     string
	APC         bool
}

// RelationalAssignmentSource answers category, area and assignment
// queries from a relational store.
type RelationalAssignmentSource interface {
	GetAllCategories(ctx context.Context) ([]CategoryRow, error)
	GetAllAreas(ctx context.Context) ([]AreaRow, error)
	GetCategoriesWithQuartile(ctx context.Context, quartiles []string) ([]CategoryRow, error)
	GetCategoriesAssignedToAreas(ctx context.Context, areaIDs []string) ([]CategoryRow, error)
	GetAreasAssignedToCategories(ctx context.Context, categoryIDs []string) ([]AreaRow, error)
	GetAllCategoryAssignments(ctx context.Context) ([]CategoryAssignmentRow, error)
	GetAllAreaAssignments(ctx context.Context) ([]AreaAssignmentRow, error)
	GetAllAssignments(ctx context.Context) ([]AssignmentRow, error)

	// GetByID returns the category or area named id, or nil when there is none.
	GetByID(ctx context.Context, id string) (*EntityRow, error)
}

// JournalMetadataSource answers bibliographic journal queries from a graph store.
type JournalMetadataSource interface {
	GetAllJournals(ctx context.Context) ([]JournalRow, error)

	// GetJournalsWithTitle and GetJournalsPublishedBy match a
	// case-insensitive substring.
	GetJournalsWithTitle(ctx context.Context, substring string) ([]JournalRow, error)
	GetJournalsPublishedBy(ctx context.Context, substring string) ([]JournalRow, error)

	// GetJournalsWithLicense matches licenses exactly.
	GetJournalsWithLicense(ctx context.Context, licenses []string) ([]JournalRow, error)
	GetJournalsWithAPC(ctx context.Context, apc bool) ([]JournalRow, error)
	GetJournalsWithDOAJSeal(ctx context.Context, seal bool) ([]JournalRow, error)

	// GetByID returns every journal having id among its identifiers.
	GetByID(ctx context.Context, id string) ([]JournalRow, error)
}

// PathConfigurable is a store addressed by an opaque path or URL.
type PathConfigurable interface {
	DbPathOrURL() string
	SetDbPathOrURL(pathOrURL string) error
}

// UploadResult summarizes a bulk load.
type UploadResult struct {
	Path string `json:"path"`

	// Records is the number of input records written.
	Records int `json:"records"`

	// Statements is the number of rows or triples written.
	Statements int `json:"statements"`

	// Skipped counts input records rejected for missing identifiers.
	Skipped int `json:"skipped"`
}

// Uploader bulk-loads a data file into its store.
type Uploader interface {
	Upload(ctx context.Context, path string) (UploadResult, error)
}
