// Package sparql is the graph store adapter. Journals are RDF resources
// behind a SPARQL 1.1 protocol endpoint; the adapter builds queries,
// decodes JSON result sets into rows and bulk-loads CSV files as
// INSERT DATA updates.
package sparql

// Namespace is the base IRI of the journal vocabulary.
const Namespace = "http://Brigata.github.org/journal/"

// Vocabulary terms, local to Namespace.
const (
	ClassJournal = "Journal"

	PredTitle     = "title"
	PredISSN      = "issn"
	PredEISSN     = "eissn"
	PredLanguages = "languages" // comma-joined literal
	PredPublisher = "publisher"
	PredSeal      = "seal" // xsd:boolean
	PredLicense   = "license"
	PredAPC       = "apc" // xsd:boolean
)

// subjectPrefix prefixes the primary identifier in journal subject IRIs.
const subjectPrefix = "journal-"

// xsdBoolean is the datatype IRI of boolean literals.
const xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"

// truthy lists the lower-cased lexical forms read as true. Anything else,
// including an absent value, is false.
var truthy = map[string]struct{}{
	"true": {},
	"1":    {},
	"t":    {},
	"y":    {},
	"yes":  {},
}
