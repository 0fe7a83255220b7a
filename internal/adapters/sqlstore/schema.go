package sqlstore

// Table names.
const (
	tableJournals            = "journals"
	tableJournalIdentifiers  = "journal_identifiers"
	tableCategories          = "categories"
	tableAreas               = "areas"
	tableCategoryAssignments = "category_assignments"
	tableAreaAssignments     = "area_assignments"
)

// dropSchema removes every table, dependents first.
var dropSchema = []string{
	`DROP TABLE IF EXISTS ` + tableAreaAssignments,
	`DROP TABLE IF EXISTS ` + tableCategoryAssignments,
	`DROP TABLE IF EXISTS ` + tableJournalIdentifiers,
	`DROP TABLE IF EXISTS ` + tableAreas,
	`DROP TABLE IF EXISTS ` + tableCategories,
	`DROP TABLE IF EXISTS ` + tableJournals,
}

// createSchema is portable between SQLite and PostgreSQL. Statements are
// executed one at a time since not every driver accepts a batch.
var createSchema = []string{
	`CREATE TABLE journals (
    id TEXT PRIMARY KEY
)`,
	`CREATE TABLE journal_identifiers (
    journal_id TEXT    NOT NULL REFERENCES journals(id),
    position   INTEGER NOT NULL,
    identifier TEXT    NOT NULL,
    PRIMARY KEY (journal_id, position)
)`,
	`CREATE INDEX idx_journal_identifiers_identifier ON journal_identifiers(identifier)`,
	`CREATE TABLE categories (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE areas (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE category_assignments (
    journal_id  TEXT NOT NULL REFERENCES journals(id),
    category_id TEXT NOT NULL REFERENCES categories(id),
    quartile    TEXT NULL
)`,
	`CREATE INDEX idx_category_assignments_category ON category_assignments(category_id)`,
	`CREATE TABLE area_assignments (
    journal_id TEXT NOT NULL REFERENCES journals(id),
    area_id    TEXT NOT NULL REFERENCES areas(id)
)`,
	`CREATE INDEX idx_area_assignments_area ON area_assignments(area_id)`,
}

// Insert statements used by the loader.
const (
	insertJournal            = `INSERT INTO journals (id) VALUES (?)`
	insertJournalIdentifier  = `INSERT INTO journal_identifiers (journal_id, position, identifier) VALUES (?, ?, ?)`
	insertCategory           = `INSERT INTO categories (id, name) VALUES (?, ?)`
	insertArea               = `INSERT INTO areas (id, name) VALUES (?, ?)`
	insertCategoryAssignment = `INSERT INTO category_assignments (journal_id, category_id, quartile) VALUES (?, ?, ?)`
	insertAreaAssignment     = `INSERT INTO area_assignments (journal_id, area_id) VALUES (?, ?)`
)
