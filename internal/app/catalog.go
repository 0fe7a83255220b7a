// Package app contains the catalog facade and the import pipeline that
// populates its stores.
package app

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/platform/logging"
	"github.com/jsamuelsen/journal-catalog/internal/platform/telemetry"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// Operation names used for logging and metric labels.
const (
	OpGetAllJournals            = "get_all_journals"
	OpGetJournalsWithTitle      = "get_journals_with_title"
	OpGetJournalsPublishedBy    = "get_journals_published_by"
	OpGetJournalsWithLicense    = "get_journals_with_license"
	OpGetJournalsWithAPC        = "get_journals_with_apc"
	OpGetJournalsWithDOAJSeal   = "get_journals_with_doaj_seal"
	OpGetAllCategories          = "get_all_categories"
	OpGetCategoriesWithQuartile = "get_categories_with_quartile"
	OpGetAllAreas               = "get_all_areas"
	OpGetCategoriesInAreas      = "get_categories_assigned_to_areas"
	OpGetAreasInCategories      = "get_areas_assigned_to_categories"
	OpGetEntityByID             = "get_entity_by_id"
	OpGetJournalsInCategories   = "get_journals_in_categories_with_quartile"
	OpGetJournalsInAreas        = "get_journals_in_areas_with_license"
	OpGetDiamondJournals        = "get_diamond_journals_in_areas_and_categories_with_quartile"
)

// Catalog fans queries out to every registered journal and category
// source, converts rows into domain values and joins across the two kinds
// of store by journal identifier.
//
// Sources are expected to be registered before querying starts. A failure
// in any source aborts the whole call and is returned unchanged.
type Catalog struct {
	mu         sync.RWMutex
	journals   []ports.JournalMetadataSource
	categories []ports.RelationalAssignmentSource

	logger   *slog.Logger
	metrics  *telemetry.CatalogMetrics
	parallel bool
}

// CatalogConfig contains configuration for the catalog.
type CatalogConfig struct {
	Logger *slog.Logger

	// Metrics is optional. Nil disables query instrumentation.
	Metrics *telemetry.CatalogMetrics

	// Parallel queries the sources of one kind concurrently. Results are
	// merged in registration order either way.
	Parallel bool
}

// NewCatalog creates a catalog with no sources.
func NewCatalog(cfg CatalogConfig) *Catalog {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Catalog{
		logger:   logger.With(slog.String("component", "catalog")),
		metrics:  cfg.Metrics,
		parallel: cfg.Parallel,
	}
}

// AddJournalSource registers a graph source. It reports false for nil.
func (c *Catalog) AddJournalSource(src ports.JournalMetadataSource) bool {
	if src == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.journals = append(c.journals, src)

	return true
}

// AddCategorySource registers a relational source. It reports false for nil.
func (c *Catalog) AddCategorySource(src ports.RelationalAssignmentSource) bool {
	if src == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = append(c.categories, src)

	return true
}

// CleanJournalSources removes every graph source.
func (c *Catalog) CleanJournalSources() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.journals = nil

	return true
}

// CleanCategorySources removes every relational source.
func (c *Catalog) CleanCategorySources() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.categories = nil

	return true
}

// JournalSources returns the registered graph sources in registration order.
func (c *Catalog) JournalSources() []ports.JournalMetadataSource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.journals)
}

// CategorySources returns the registered relational sources in registration order.
func (c *Catalog) CategorySources() []ports.RelationalAssignmentSource {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.categories)
}

// GetAllJournals returns every journal of every graph source.
func (c *Catalog) GetAllJournals(ctx context.Context) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetAllJournals, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetAllJournals(ctx)
		})
	})
}

// GetJournalsWithTitle returns journals whose title contains substring,
// ignoring case.
func (c *Catalog) GetJournalsWithTitle(ctx context.Context, substring string) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsWithTitle, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetJournalsWithTitle(ctx, substring)
		})
	})
}

// GetJournalsPublishedBy returns journals whose publisher contains
// substring, ignoring case.
func (c *Catalog) GetJournalsPublishedBy(ctx context.Context, substring string) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsPublishedBy, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetJournalsPublishedBy(ctx, substring)
		})
	})
}

// GetJournalsWithLicense returns journals whose license is one of licenses.
// An empty set returns every journal.
func (c *Catalog) GetJournalsWithLicense(ctx context.Context, licenses []string) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsWithLicense, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetJournalsWithLicense(ctx, licenses)
		})
	})
}

// GetJournalsWithAPC returns journals whose APC flag equals apc.
func (c *Catalog) GetJournalsWithAPC(ctx context.Context, apc bool) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsWithAPC, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetJournalsWithAPC(ctx, apc)
		})
	})
}

// GetJournalsWithDOAJSeal returns journals whose seal flag equals seal.
func (c *Catalog) GetJournalsWithDOAJSeal(ctx context.Context, seal bool) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsWithDOAJSeal, func(ctx context.Context) ([]domain.Journal, error) {
		return c.journalQuery(ctx, func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
			return s.GetJournalsWithDOAJSeal(ctx, seal)
		})
	})
}

// GetAllCategories returns every distinct (category, quartile) pair.
func (c *Catalog) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return observe(ctx, c, OpGetAllCategories, c.allCategories)
}

// GetCategoriesWithQuartile returns the categories whose quartile is one
// of quartiles. An empty set is the same as GetAllCategories.
func (c *Catalog) GetCategoriesWithQuartile(ctx context.Context, quartiles []string) ([]domain.Category, error) {
	return observe(ctx, c, OpGetCategoriesWithQuartile, func(ctx context.Context) ([]domain.Category, error) {
		if ports.Unconstrained(quartiles) {
			return c.allCategories(ctx)
		}

		return c.categoryQuery(ctx, func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.CategoryRow, error) {
			return s.GetCategoriesWithQuartile(ctx, quartiles)
		})
	})
}

// GetAllAreas returns every distinct area.
func (c *Catalog) GetAllAreas(ctx context.Context) ([]domain.Area, error) {
	return observe(ctx, c, OpGetAllAreas, c.allAreas)
}

// GetCategoriesAssignedToAreas returns the categories sharing a journal
// with one of areaIDs. An empty set returns every category.
func (c *Catalog) GetCategoriesAssignedToAreas(ctx context.Context, areaIDs []string) ([]domain.Category, error) {
	return observe(ctx, c, OpGetCategoriesInAreas, func(ctx context.Context) ([]domain.Category, error) {
		if ports.Unconstrained(areaIDs) {
			return c.allCategories(ctx)
		}

		return c.categoryQuery(ctx, func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.CategoryRow, error) {
			return s.GetCategoriesAssignedToAreas(ctx, areaIDs)
		})
	})
}

// GetAreasAssignedToCategories returns the areas sharing a journal with
// one of categoryIDs. An empty set returns every area.
func (c *Catalog) GetAreasAssignedToCategories(ctx context.Context, categoryIDs []string) ([]domain.Area, error) {
	return observe(ctx, c, OpGetAreasInCategories, func(ctx context.Context) ([]domain.Area, error) {
		if ports.Unconstrained(categoryIDs) {
			return c.allAreas(ctx)
		}

		return c.areaQuery(ctx, func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.AreaRow, error) {
			return s.GetAreasAssignedToCategories(ctx, categoryIDs)
		})
	})
}

// GetEntityByID looks id up in the graph sources first and then in the
// relational sources, each in registration order. The first hit wins.
// An id known to no source yields the zero Entity and a nil error.
func (c *Catalog) GetEntityByID(ctx context.Context, id string) (domain.Entity, error) {
	return observe(ctx, c, OpGetEntityByID, func(ctx context.Context) (domain.Entity, error) {
		journalSrc, categorySrc := c.sources()

		for _, src := range journalSrc {
			rows, err := src.GetByID(ctx, id)
			if err != nil {
				return domain.Entity{}, err
			}

			journals := mergeJournals(rows)
			if len(journals) == 0 {
				continue
			}

			found := journals[:1]
			if err := c.enrich(ctx, categorySrc, found); err != nil {
				return domain.Entity{}, err
			}

			return domain.JournalEntity(found[0]), nil
		}

		for _, src := range categorySrc {
			row, err := src.GetByID(ctx, id)
			if err != nil {
				return domain.Entity{}, err
			}

			if row == nil {
				continue
			}

			switch row.Kind {
			case domain.KindCategory:
				return domain.CategoryEntity(domain.Category{ID: row.ID, Quartile: row.Quartile}), nil
			case domain.KindArea:
				return domain.AreaEntity(domain.Area{ID: row.ID}), nil
			}
		}

		return domain.Entity{}, nil
	})
}

// GetJournalsInCategoriesWithQuartile returns the journals assigned to one
// of categoryIDs with one of quartiles, both conditions holding on the same
// assignment. Empty sets are unconstrained.
func (c *Catalog) GetJournalsInCategoriesWithQuartile(
	ctx context.Context,
	categoryIDs, quartiles []string,
) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsInCategories, func(ctx context.Context) ([]domain.Journal, error) {
		journalSrc, categorySrc := c.sources()

		rows, err := fanOut(ctx, c, categorySrc,
			func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.CategoryAssignmentRow, error) {
				return s.GetAllCategoryAssignments(ctx)
			})
		if err != nil {
			return nil, err
		}

		categories, quartileSet := ports.SetOf(categoryIDs), ports.SetOf(quartiles)
		ids := make(ports.Set)

		for _, row := range rows {
			if categories.Matches(row.Category) && quartileSet.Matches(row.Quartile) {
				addIdentifiers(ids, row.Identifiers)
			}
		}

		return c.journalsWithIdentifiers(ctx, journalSrc, categorySrc, ids,
			func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
				return s.GetAllJournals(ctx)
			})
	})
}

// GetJournalsInAreasWithLicense returns the journals assigned to one of
// areaIDs whose license is one of licenses. Empty sets are unconstrained.
func (c *Catalog) GetJournalsInAreasWithLicense(
	ctx context.Context,
	areaIDs, licenses []string,
) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetJournalsInAreas, func(ctx context.Context) ([]domain.Journal, error) {
		journalSrc, categorySrc := c.sources()

		rows, err := fanOut(ctx, c, categorySrc,
			func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.AreaAssignmentRow, error) {
				return s.GetAllAreaAssignments(ctx)
			})
		if err != nil {
			return nil, err
		}

		areas := ports.SetOf(areaIDs)
		ids := make(ports.Set)

		for _, row := range rows {
			if areas.Matches(row.Area) {
				addIdentifiers(ids, row.Identifiers)
			}
		}

		return c.journalsWithIdentifiers(ctx, journalSrc, categorySrc, ids,
			func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
				return s.GetJournalsWithLicense(ctx, licenses)
			})
	})
}

// GetDiamondJournalsInAreasAndCategoriesWithQuartile returns the journals
// without an APC that are assigned to one of areaIDs and to one of
// categoryIDs with one of quartiles. Empty sets are unconstrained.
func (c *Catalog) GetDiamondJournalsInAreasAndCategoriesWithQuartile(
	ctx context.Context,
	areaIDs, categoryIDs, quartiles []string,
) ([]domain.Journal, error) {
	return observe(ctx, c, OpGetDiamondJournals, func(ctx context.Context) ([]domain.Journal, error) {
		journalSrc, categorySrc := c.sources()

		rows, err := fanOut(ctx, c, categorySrc,
			func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.AssignmentRow, error) {
				return s.GetAllAssignments(ctx)
			})
		if err != nil {
			return nil, err
		}

		areas := ports.SetOf(areaIDs)
		categories, quartileSet := ports.SetOf(categoryIDs), ports.SetOf(quartiles)
		ids := make(ports.Set)

		for _, row := range rows {
			if matchesAny(areas, row.Areas) && hasCategory(row.Categories, categories, quartileSet) {
				addIdentifiers(ids, row.Identifiers)
			}
		}

		journals, err := c.journalsWithIdentifiers(ctx, journalSrc, categorySrc, ids,
			func(ctx context.Context, s ports.JournalMetadataSource) ([]ports.JournalRow, error) {
				return s.GetJournalsWithAPC(ctx, false)
			})
		if err != nil {
			return nil, err
		}

		return slices.DeleteFunc(journals, func(j domain.Journal) bool { return !j.IsDiamond() }), nil
	})
}

func (c *Catalog) sources() ([]ports.JournalMetadataSource, []ports.RelationalAssignmentSource) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.journals), slices.Clone(c.categories)
}

type journalCall = func(context.Context, ports.JournalMetadataSource) ([]ports.JournalRow, error)

func (c *Catalog) journalQuery(ctx context.Context, call journalCall) ([]domain.Journal, error) {
	journalSrc, categorySrc := c.sources()

	rows, err := fanOut(ctx, c, journalSrc, call)
	if err != nil {
		return nil, err
	}

	journals := mergeJournals(rows)
	if err := c.enrich(ctx, categorySrc, journals); err != nil {
		return nil, err
	}

	return journals, nil
}

// journalsWithIdentifiers runs call on every graph source and keeps the
// journals sharing an identifier with ids.
func (c *Catalog) journalsWithIdentifiers(
	ctx context.Context,
	journalSrc []ports.JournalMetadataSource,
	categorySrc []ports.RelationalAssignmentSource,
	ids ports.Set,
	call journalCall,
) ([]domain.Journal, error) {
	if len(ids) == 0 {
		return []domain.Journal{}, nil
	}

	rows, err := fanOut(ctx, c, journalSrc, call)
	if err != nil {
		return nil, err
	}

	rows = slices.DeleteFunc(rows, func(r ports.JournalRow) bool {
		return !slices.ContainsFunc(r.Identifiers, ids.Has)
	})

	journals := mergeJournals(rows)
	if err := c.enrich(ctx, categorySrc, journals); err != nil {
		return nil, err
	}

	return journals, nil
}

func (c *Catalog) allCategories(ctx context.Context) ([]domain.Category, error) {
	return c.categoryQuery(ctx, func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.CategoryRow, error) {
		return s.GetAllCategories(ctx)
	})
}

func (c *Catalog) allAreas(ctx context.Context) ([]domain.Area, error) {
	return c.areaQuery(ctx, func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.AreaRow, error) {
		return s.GetAllAreas(ctx)
	})
}

func (c *Catalog) categoryQuery(
	ctx context.Context,
	call func(context.Context, ports.RelationalAssignmentSource) ([]ports.CategoryRow, error),
) ([]domain.Category, error) {
	rows, err := fanOut(ctx, c, c.CategorySources(), call)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(rows))
	seen := make(map[domain.CategoryKey]struct{}, len(rows))

	for _, row := range rows {
		category := domain.Category{ID: row.Name, Quartile: row.Quartile}
		if _, dup := seen[category.Key()]; dup {
			continue
		}

		seen[category.Key()] = struct{}{}
		out = append(out, category)
	}

	return out, nil
}

func (c *Catalog) areaQuery(
	ctx context.Context,
	call func(context.Context, ports.RelationalAssignmentSource) ([]ports.AreaRow, error),
) ([]domain.Area, error) {
	rows, err := fanOut(ctx, c, c.CategorySources(), call)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Area, 0, len(rows))
	seen := make(ports.Set, len(rows))

	for _, row := range rows {
		if seen.Has(row.Name) {
			continue
		}

		seen[row.Name] = struct{}{}
		out = append(out, domain.Area{ID: row.Name})
	}

	return out, nil
}

// enrich fills in the category and area ids of journals from the
// assignments of every relational source.
func (c *Catalog) enrich(ctx context.Context, sources []ports.RelationalAssignmentSource, journals []domain.Journal) error {
	if len(sources) == 0 || len(journals) == 0 {
		return nil
	}

	rows, err := fanOut(ctx, c, sources,
		func(ctx context.Context, s ports.RelationalAssignmentSource) ([]ports.AssignmentRow, error) {
			return s.GetAllAssignments(ctx)
		})
	if err != nil {
		return err
	}

	byIdentifier := make(map[string][]int, len(rows))

	for i, row := range rows {
		for _, id := range row.Identifiers {
			byIdentifier[id] = append(byIdentifier[id], i)
		}
	}

	for j := range journals {
		var categories, areas []string

		used := make(map[int]struct{})

		for _, id := range journals[j].IDs {
			for _, i := range byIdentifier[id] {
				if _, ok := used[i]; ok {
					continue
				}

				used[i] = struct{}{}

				for _, category := range rows[i].Categories {
					categories = append(categories, category.Name)
				}

				areas = append(areas, rows[i].Areas...)
			}
		}

		journals[j].Categories = ports.Compact(categories)
		journals[j].Areas = ports.Compact(areas)
	}

	return nil
}

// mergeJournals converts rows into journals, folding rows that share any
// identifier into the first one seen. Rows without identifiers are dropped.
func mergeJournals(rows []ports.JournalRow) []domain.Journal {
	out := make([]domain.Journal, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		ids := ports.Compact(row.Identifiers)
		if len(ids) == 0 {
			continue
		}

		pos := -1

		for _, id := range ids {
			if i, ok := index[id]; ok {
				pos = i
				break
			}
		}

		if pos < 0 {
			out = append(out, domain.Journal{
				IDs:       ids,
				Title:     row.Title,
				Languages: slices.Clone(row.Languages),
				Publisher: row.Publisher,
				Seal:      row.Seal,
				License:   row.License,
				APC:       row.APC,
			})
			pos = len(out) - 1
		}

		for _, id := range ids {
			if !out[pos].HasID(id) {
				out[pos].IDs = append(out[pos].IDs, id)
			}

			if _, ok := index[id]; !ok {
				index[id] = pos
			}
		}
	}

	return out
}

func addIdentifiers(set ports.Set, ids []string) {
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

// matchesAny applies the filter policy to a multi-valued field.
func matchesAny(filter ports.Set, values []string) bool {
	return len(filter) == 0 || slices.ContainsFunc(values, filter.Has)
}

// hasCategory reports whether one assignment satisfies both the category
// and the quartile filter.
func hasCategory(rows []ports.CategoryRow, categories, quartiles ports.Set) bool {
	if len(categories) == 0 && len(quartiles) == 0 {
		return true
	}

	return slices.ContainsFunc(rows, func(r ports.CategoryRow) bool {
		return categories.Matches(r.Name) && quartiles.Matches(r.Quartile)
	})
}

// fanOut calls every source and concatenates the results in source order.
func fanOut[S, R any](
	ctx context.Context,
	c *Catalog,
	sources []S,
	call func(context.Context, S) ([]R, error),
) ([]R, error) {
	fns := make([]func(context.Context) ([]R, error), len(sources))
	for i, src := range sources {
		fns[i] = func(ctx context.Context) ([]R, error) { return call(ctx, src) }
	}

	limit := 1
	if c.parallel {
		limit = Unbounded
	}

	batches, err := Gather(ctx, limit, fns...)
	if err != nil {
		return nil, err
	}

	var out []R
	for _, batch := range batches {
		out = append(out, batch...)
	}

	return out, nil
}

// observe tags the context with the operation, records its outcome and
// logs failures.
func observe[T any](ctx context.Context, c *Catalog, operation string, fn func(context.Context) (T, error)) (T, error) {
	start := time.Now()
	ctx = logging.WithOperation(ctx, operation)

	result, err := fn(ctx)
	c.metrics.Observe(operation, start, err)

	if err != nil {
		c.logger.ErrorContext(ctx, "catalog query failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)

		return result, err
	}

	c.logger.DebugContext(ctx, "catalog query completed",
		slog.String("operation", operation),
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}
