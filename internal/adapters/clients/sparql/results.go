package sparql

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jsamuelsen/journal-catalog/internal/ports"
)

// resultSet is a SPARQL 1.1 query results JSON document.
type resultSet struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results *struct {
		Bindings []map[string]binding `json:"bindings"`
	} `json:"results,omitempty"`
	Boolean *bool `json:"boolean,omitempty"`
}

// binding is one RDF term bound to a variable.
type binding struct {
	Type     string `json:"type"`
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	Lang     string `json:"xml:lang,omitempty"`
}

// errMalformedResults is returned for documents that are neither a SELECT
// nor an ASK result.
var errMalformedResults = errors.New("malformed SPARQL results document")

func decodeResultSet(r io.Reader) (*resultSet, error) {
	var rs resultSet
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, fmt.Errorf("decoding SPARQL results: %w", err)
	}

	if rs.Results == nil && rs.Boolean == nil {
		return nil, errMalformedResults
	}

	return &rs, nil
}

// decodeBoolean reads an ASK result.
func decodeBoolean(r io.Reader) (bool, error) {
	rs, err := decodeResultSet(r)
	if err != nil {
		return false, err
	}

	if rs.Boolean == nil {
		return false, errMalformedResults
	}

	return *rs.Boolean, nil
}

// decodeJournals folds the bindings of a journal projection into one row
// per subject, in first-seen order. Subjects carrying no identifier are
// dropped.
func decodeJournals(r io.Reader) ([]ports.JournalRow, error) {
	rs, err := decodeResultSet(r)
	if err != nil {
		return nil, err
	}

	if rs.Results == nil {
		return nil, errMalformedResults
	}

	order := make([]string, 0, len(rs.Results.Bindings))
	rows := make(map[string]*ports.JournalRow, len(rs.Results.Bindings))

	for _, b := range rs.Results.Bindings {
		subject := b[varJournal].Value
		if subject == "" {
			continue
		}

		row, ok := rows[subject]
		if !ok {
			row = &ports.JournalRow{}
			rows[subject] = row
			order = append(order, subject)
		}

		mergeBinding(row, b)
	}

	out := make([]ports.JournalRow, 0, len(order))
	for _, subject := range order {
		if row := rows[subject]; len(row.Identifiers) > 0 {
			out = append(out, *row)
		}
	}

	return out, nil
}

// mergeBinding folds one solution into row. Scalars keep the first
// non-empty value; identifiers accumulate ISSN before EISSN; flags are
// true if any solution is truthy. Upload keeps one value per flag, so
// graphs it loaded never carry conflicting solutions.
func mergeBinding(row *ports.JournalRow, b map[string]binding) {
	for _, v := range []string{varISSN, varEISSN} {
		if id := strings.TrimSpace(b[v].Value); id != "" && !slices.Contains(row.Identifiers, id) {
			row.Identifiers = append(row.Identifiers, id)
		}
	}

	setOnce(&row.Title, b[varTitle].Value)
	setOnce(&row.Publisher, b[varPublisher].Value)
	setOnce(&row.License, b[varLicense].Value)

	if len(row.Languages) == 0 {
		row.Languages = splitLanguages(b[varLanguages].Value)
	}

	row.Seal = row.Seal || isTruthy(b[varSeal].Value)
	row.APC = row.APC || isTruthy(b[varAPC].Value)
}

func setOnce(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

// splitLanguages splits the comma-joined languages literal.
func splitLanguages(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// isTruthy normalizes a tri-state flag value. Absent is false. The rule
// matches truthyExpr: the lexical form is lower-cased and never trimmed.
func isTruthy(v string) bool {
	_, ok := truthy[lower.String(v)]
	return ok
}
