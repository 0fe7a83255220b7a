package sparql

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Projection variables, in SELECT order.
const (
	varJournal   = "journal"
	varTitle     = "title"
	varISSN      = "issn"
	varEISSN     = "eissn"
	varLanguages = "languages"
	varPublisher = "publisher"
	varSeal      = "seal"
	varLicense   = "license"
	varAPC       = "apc"
)

// journalFields pairs each optional projection variable with its predicate.
var journalFields = []struct {
	variable  string
	predicate string
}{
	{varTitle, PredTitle},
	{varISSN, PredISSN},
	{varEISSN, PredEISSN},
	{varLanguages, PredLanguages},
	{varPublisher, PredPublisher},
	{varSeal, PredSeal},
	{varLicense, PredLicense},
	{varAPC, PredAPC},
}

var lower = cases.Lower(language.Und)

// journalQuery renders the shared journal projection with the given FILTER
// expressions ANDed together. Every field is OPTIONAL so a journal missing
// one still yields a row.
func journalQuery(filters ...string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PREFIX : <%s>\n", Namespace)
	b.WriteString("SELECT ?" + varJournal)
	for _, f := range journalFields {
		b.WriteString(" ?" + f.variable)
	}
	b.WriteString("\nWHERE {\n")
	fmt.Fprintf(&b, "  ?%s a :%s .\n", varJournal, ClassJournal)
	for _, f := range journalFields {
		fmt.Fprintf(&b, "  OPTIONAL { ?%s :%s ?%s }\n", varJournal, f.predicate, f.variable)
	}
	for _, f := range filters {
		fmt.Fprintf(&b, "  FILTER(%s)\n", f)
	}
	b.WriteString("}\n")
	fmt.Fprintf(&b, "ORDER BY ?%s", varJournal)

	return b.String()
}

// allJournalsQuery selects every journal.
func allJournalsQuery() string {
	return journalQuery()
}

// containsQuery matches a case-insensitive substring of variable.
func containsQuery(variable, substring string) string {
	needle := literal(lower.String(substring))
	return journalQuery(fmt.Sprintf("BOUND(?%s) && CONTAINS(LCASE(STR(?%s)), %s)", variable, variable, needle))
}

// titleQuery matches journals whose title contains substring.
func titleQuery(substring string) string {
	return containsQuery(varTitle, substring)
}

// publisherQuery matches journals whose publisher contains substring.
func publisherQuery(substring string) string {
	return containsQuery(varPublisher, substring)
}

// licenseQuery matches journals whose license is one of licenses exactly.
// An empty set selects every journal.
func licenseQuery(licenses []string) string {
	if len(licenses) == 0 {
		return allJournalsQuery()
	}

	sorted := append([]string(nil), licenses...)
	sort.Strings(sorted)

	terms := make([]string, len(sorted))
	for i, l := range sorted {
		terms[i] = literal(l)
	}

	return journalQuery(fmt.Sprintf("BOUND(?%s) && STR(?%s) IN (%s)", varLicense, varLicense, strings.Join(terms, ", ")))
}

// truthyExpr is true when variable is bound to a truthy lexical form. It
// applies the same rule as isTruthy.
func truthyExpr(variable string) string {
	forms := make([]string, 0, len(truthy))
	for form := range truthy {
		forms = append(forms, literal(form))
	}
	sort.Strings(forms)

	return fmt.Sprintf("(BOUND(?%s) && LCASE(STR(?%s)) IN (%s))", variable, variable, strings.Join(forms, ", "))
}

// flagQuery matches journals whose tri-state flag normalizes to want.
// For want=false both unbound and falsy values match.
func flagQuery(variable string, want bool) string {
	expr := truthyExpr(variable)
	if !want {
		expr = "!" + expr
	}

	return journalQuery(expr)
}

// apcQuery matches journals by APC flag.
func apcQuery(apc bool) string {
	return flagQuery(varAPC, apc)
}

// sealQuery matches journals by DOAJ seal flag.
func sealQuery(seal bool) string {
	return flagQuery(varSeal, seal)
}

// byIDQuery matches journals whose ISSN or EISSN equals id.
func byIDQuery(id string) string {
	lit := literal(id)
	return journalQuery(fmt.Sprintf(
		"(BOUND(?%s) && STR(?%s) = %s) || (BOUND(?%s) && STR(?%s) = %s)",
		varISSN, varISSN, lit, varEISSN, varEISSN, lit,
	))
}

// askQuery is the cheapest query an endpoint can answer.
const askQuery = "ASK { }"

// literal renders s as a quoted SPARQL string literal.
func literal(s string) string {
	return `"` + escape(s) + `"`
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// escape escapes the characters that may not appear raw in a
// double-quoted literal.
func escape(s string) string {
	return literalEscaper.Replace(s)
}
