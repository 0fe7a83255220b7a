package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/jsamuelsen/journal-catalog/internal/adapters/sqlstore"
	"github.com/jsamuelsen/journal-catalog/internal/domain"
	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// memoryGraph is an in-process JournalMetadataSource with the same filter
// semantics as the SPARQL adapter.
type memoryGraph struct {
	rows []ports.JournalRow
}

func (g *memoryGraph) filter(keep func(ports.JournalRow) bool) []ports.JournalRow {
	var out []ports.JournalRow

	for _, row := range g.rows {
		if keep(row) {
			out = append(out, row)
		}
	}

	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (g *memoryGraph) GetAllJournals(context.Context) ([]ports.JournalRow, error) {
	return slices.Clone(g.rows), nil
}

func (g *memoryGraph) GetJournalsWithTitle(_ context.Context, substring string) ([]ports.JournalRow, error) {
	return g.filter(func(r ports.JournalRow) bool { return containsFold(r.Title, substring) }), nil
}

func (g *memoryGraph) GetJournalsPublishedBy(_ context.Context, substring string) ([]ports.JournalRow, error) {
	return g.filter(func(r ports.JournalRow) bool { return containsFold(r.Publisher, substring) }), nil
}

func (g *memoryGraph) GetJournalsWithLicense(_ context.Context, licenses []string) ([]ports.JournalRow, error) {
	set := ports.SetOf(licenses)
	return g.filter(func(r ports.JournalRow) bool { return set.Matches(r.License) }), nil
}

func (g *memoryGraph) GetJournalsWithAPC(_ context.Context, apc bool) ([]ports.JournalRow, error) {
	return g.filter(func(r ports.JournalRow) bool { return r.APC == apc }), nil
}

func (g *memoryGraph) GetJournalsWithDOAJSeal(_ context.Context, seal bool) ([]ports.JournalRow, error) {
	return g.filter(func(r ports.JournalRow) bool { return r.Seal == seal }), nil
}

func (g *memoryGraph) GetByID(_ context.Context, id string) ([]ports.JournalRow, error) {
	return g.filter(func(r ports.JournalRow) bool { return slices.Contains(r.Identifiers, id) }), nil
}

// catalogFeature holds the state of one scenario.
type catalogFeature struct {
	t        *testing.T
	catalog  *Catalog
	listings [][]string
	journals []domain.Journal
	entity   domain.Entity
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return ports.Compact(strings.Split(s, ","))
}

func titles(journals []domain.Journal) []string {
	out := make([]string, 0, len(journals))
	for _, j := range journals {
		out = append(out, j.Title)
	}

	return out
}

func (f *catalogFeature) aRelationalStoreLoadedFrom(ctx context.Context, path string) error {
	store := sqlstore.New(sqlstore.Config{
		DSN:    filepath.Join(f.t.TempDir(), "catalog.db"),
		Logger: discardLogger(),
	})

	importer := NewImporter(ImporterConfig{Relational: store, Logger: discardLogger()})
	if _, err := importer.Import(ctx, path); err != nil {
		return err
	}

	f.catalog.AddCategorySource(store)

	return nil
}

func (f *catalogFeature) aGraphStoreHoldingTheJournals(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return errors.New("journal table needs a header and at least one row")
	}

	header := make(map[string]int)
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}

	graph := &memoryGraph{}

	for _, row := range table.Rows[1:] {
		value := func(column string) string { return row.Cells[header[column]].Value }

		graph.rows = append(graph.rows, ports.JournalRow{
			Identifiers: splitList(value("identifiers")),
			Title:       value("title"),
			Publisher:   value("publisher"),
			License:     value("license"),
			APC:         value("apc") == "yes",
			Seal:        value("seal") == "yes",
		})
	}

	f.catalog.AddJournalSource(graph)

	return nil
}

func (f *catalogFeature) recordJournals(journals []domain.Journal, err error) error {
	if err != nil {
		return err
	}

	f.journals = journals
	f.listings = append(f.listings, titles(journals))

	return nil
}

func (f *catalogFeature) recordCategories(categories []domain.Category, err error) error {
	if err != nil {
		return err
	}

	listing := make([]string, 0, len(categories))
	for _, c := range categories {
		listing = append(listing, strings.TrimSpace(c.ID+" "+c.Quartile))
	}

	f.listings = append(f.listings, listing)

	return nil
}

func (f *catalogFeature) recordAreas(areas []domain.Area, err error) error {
	if err != nil {
		return err
	}

	listing := make([]string, 0, len(areas))
	for _, a := range areas {
		listing = append(listing, a.ID)
	}

	f.listings = append(f.listings, listing)

	return nil
}

func (f *catalogFeature) iListAllJournals(ctx context.Context) error {
	return f.recordJournals(f.catalog.GetAllJournals(ctx))
}

func (f *catalogFeature) iListAllCategories(ctx context.Context) error {
	return f.recordCategories(f.catalog.GetAllCategories(ctx))
}

func (f *catalogFeature) iListAllAreas(ctx context.Context) error {
	return f.recordAreas(f.catalog.GetAllAreas(ctx))
}

func (f *catalogFeature) iListTheCategoriesWithQuartiles(ctx context.Context, quartiles string) error {
	return f.recordCategories(f.catalog.GetCategoriesWithQuartile(ctx, splitList(quartiles)))
}

func (f *catalogFeature) iListTheCategoriesAssignedToAreas(ctx context.Context, areas string) error {
	return f.recordCategories(f.catalog.GetCategoriesAssignedToAreas(ctx, splitList(areas)))
}

func (f *catalogFeature) iListTheAreasAssignedToCategories(ctx context.Context, categories string) error {
	return f.recordAreas(f.catalog.GetAreasAssignedToCategories(ctx, splitList(categories)))
}

func (f *catalogFeature) iSearchJournalsByTitle(ctx context.Context, title string) error {
	return f.recordJournals(f.catalog.GetJournalsWithTitle(ctx, title))
}

func (f *catalogFeature) iListTheDiamondJournals(ctx context.Context, areas, categories, quartiles string) error {
	return f.recordJournals(f.catalog.GetDiamondJournalsInAreasAndCategoriesWithQuartile(ctx,
		splitList(areas), splitList(categories), splitList(quartiles)))
}

func (f *catalogFeature) iListTheJournalsInCategories(ctx context.Context, categories, quartiles string) error {
	return f.recordJournals(f.catalog.GetJournalsInCategoriesWithQuartile(ctx,
		splitList(categories), splitList(quartiles)))
}

func (f *catalogFeature) iListTheJournalsInAreas(ctx context.Context, areas, licenses string) error {
	return f.recordJournals(f.catalog.GetJournalsInAreasWithLicense(ctx,
		splitList(areas), splitList(licenses)))
}

func (f *catalogFeature) iLookUpTheEntity(ctx context.Context, id string) error {
	entity, err := f.catalog.GetEntityByID(ctx, id)
	if err != nil {
		return fmt.Errorf("lookup of %q failed: %w", id, err)
	}

	f.entity = entity

	return nil
}

func (f *catalogFeature) theLastTwoListingsAreIdentical() error {
	n := len(f.listings)
	if n < 2 {
		return errors.New("fewer than two listings were recorded")
	}

	a, b := slices.Clone(f.listings[n-2]), slices.Clone(f.listings[n-1])
	slices.Sort(a)
	slices.Sort(b)

	if !slices.Equal(a, b) {
		return fmt.Errorf("listings differ: %q vs %q", a, b)
	}

	return nil
}

func (f *catalogFeature) theListingIsExactly(expected string) error {
	if len(f.listings) == 0 {
		return errors.New("nothing was listed")
	}

	got := slices.Clone(f.listings[len(f.listings)-1])
	want := splitList(expected)

	slices.Sort(got)
	slices.Sort(want)

	if !slices.Equal(got, want) {
		return fmt.Errorf("expected %q, got %q", want, got)
	}

	return nil
}

func (f *catalogFeature) theListingIsEmpty() error {
	if len(f.listings) == 0 {
		return errors.New("nothing was listed")
	}

	if last := f.listings[len(f.listings)-1]; len(last) != 0 {
		return fmt.Errorf("expected an empty listing, got %q", last)
	}

	return nil
}

func (f *catalogFeature) noListedJournalChargesAnAPC() error {
	for _, j := range f.journals {
		if j.APC {
			return fmt.Errorf("journal %s charges an APC", j.ID())
		}
	}

	return nil
}

func (f *catalogFeature) theEntityIsA(kind string) error {
	if got := string(f.entity.Kind); got != kind {
		return fmt.Errorf("expected a %s, got %q", kind, got)
	}

	return nil
}

func (f *catalogFeature) theEntityHasTheIdentifiers(ids string) error {
	if f.entity.Journal == nil {
		return errors.New("entity is not a journal")
	}

	got := f.entity.Journal.GetIDs()
	want := splitList(ids)

	slices.Sort(got)
	slices.Sort(want)

	if !slices.Equal(got, want) {
		return fmt.Errorf("expected identifiers %q, got %q", want, got)
	}

	return nil
}

func (f *catalogFeature) noEntityIsFound() error {
	if f.entity.Found() {
		return fmt.Errorf("expected nothing, found %s %q", f.entity.Kind, f.entity.ID())
	}

	return nil
}

func initializeCatalogScenario(t *testing.T) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		f := &catalogFeature{t: t}

		sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			*f = catalogFeature{t: t, catalog: NewCatalog(CatalogConfig{Logger: discardLogger()})}
			return ctx, nil
		})

		sc.Step(`^a relational store loaded from "([^"]*)"$`, f.aRelationalStoreLoadedFrom)
		sc.Step(`^a graph store holding the journals:$`, f.aGraphStoreHoldingTheJournals)

		sc.Step(`^I list all journals$`, f.iListAllJournals)
		sc.Step(`^I list all categories$`, f.iListAllCategories)
		sc.Step(`^I list all areas$`, f.iListAllAreas)
		sc.Step(`^I list the categories with quartiles "([^"]*)"$`, f.iListTheCategoriesWithQuartiles)
		sc.Step(`^I list the categories assigned to areas "([^"]*)"$`, f.iListTheCategoriesAssignedToAreas)
		sc.Step(`^I list the areas assigned to categories "([^"]*)"$`, f.iListTheAreasAssignedToCategories)
		sc.Step(`^I search journals by title "([^"]*)"$`, f.iSearchJournalsByTitle)
		sc.Step(`^I list the diamond journals in areas "([^"]*)" and categories "([^"]*)" with quartiles "([^"]*)"$`,
			f.iListTheDiamondJournals)
		sc.Step(`^I list the journals in categories "([^"]*)" with quartiles "([^"]*)"$`, f.iListTheJournalsInCategories)
		sc.Step(`^I list the journals in areas "([^"]*)" with licenses "([^"]*)"$`, f.iListTheJournalsInAreas)
		sc.Step(`^I look up the entity "([^"]*)"$`, f.iLookUpTheEntity)

		sc.Step(`^the last two listings are identical$`, f.theLastTwoListingsAreIdentical)
		sc.Step(`^the listing is exactly "([^"]*)"$`, f.theListingIsExactly)
		sc.Step(`^the listing is empty$`, f.theListingIsEmpty)
		sc.Step(`^no listed journal charges an APC$`, f.noListedJournalChargesAnAPC)
		sc.Step(`^the entity is a (journal|category|area)$`, f.theEntityIsA)
		sc.Step(`^the entity has the identifiers "([^"]*)"$`, f.theEntityHasTheIdentifiers)
		sc.Step(`^no entity is found$`, f.noEntityIsFound)
	}
}

// TestFeatures runs the catalog feature suite against a SQLite store and an
// in-memory graph.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeCatalogScenario(t),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/features"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
