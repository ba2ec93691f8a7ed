// Package validate inspects raw rows before assembly and reports
// structural and value-level findings. Findings are advisory: they are
// surfaced to the researcher, never raised, and never block assembly.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/research-data-tools/depositcsv/catalog"
	"github.com/research-data-tools/depositcsv/meta"
)

// Severity grades a finding. None of the grades is fatal.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one advisory issue on one row value.
type Finding struct {
	Row      int      `json:"row"` // 1-based data row number
	Field    string   `json:"field"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Report aggregates findings over a batch of rows.
type Report struct {
	MissingRequired    []string  `json:"missingRequired,omitempty"`
	MissingRecommended []string  `json:"missingRecommended,omitempty"`
	UnknownFields      []string  `json:"unknownFields,omitempty"`
	Findings           []Finding `json:"findings,omitempty"`
}

// HasErrors reports whether any finding is error-grade.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Options configures validation.
type Options struct {
	// Required fields; a row missing one gets an error-grade finding.
	Required []string
	// Recommended fields; absence is warning-grade.
	Recommended []string
	// TypeNamespace is the prefix resource type URIs should start with.
	TypeNamespace string
}

// DefaultOptions returns the standard policy for deposit rows.
func DefaultOptions() Options {
	return Options{
		Required:      []string{"title", "type"},
		Recommended:   []string{"description", "creator", "keywords"},
		TypeNamespace: catalog.COARTypePrefix,
	}
}

var (
	langTaggedRegex = regexp.MustCompile(`^[A-Za-z]{2,3}(-[A-Za-z0-9]+)?:`)
	numericRegex    = regexp.MustCompile(`\d`)
)

// Rows validates a batch against the catalog and returns the combined
// report. Row numbers in findings are 1-based.
func Rows(rows []*meta.Row, cat *catalog.Catalog, opts Options) *Report {
	report := &Report{}
	missingRequired := make(map[string]bool)
	missingRecommended := make(map[string]bool)
	unknown := make(map[string]bool)

	for i, row := range rows {
		if row == nil {
			continue
		}
		n := i + 1

		for _, field := range opts.Required {
			if strings.TrimSpace(row.Value(field)) == "" {
				missingRequired[field] = true
				report.Findings = append(report.Findings, Finding{
					Row: n, Field: field, Severity: SeverityError,
					Message: fmt.Sprintf("required field %q is missing or empty", field),
				})
			}
		}
		for _, field := range opts.Recommended {
			if strings.TrimSpace(row.Value(field)) == "" {
				missingRecommended[field] = true
				report.Findings = append(report.Findings, Finding{
					Row: n, Field: field, Severity: SeverityWarning,
					Message: fmt.Sprintf("recommended field %q is missing or empty", field),
				})
			}
		}

		for _, field := range row.Fields() {
			if _, ok := cat.Lookup(field); !ok && !isStructuralField(field) {
				if !unknown[field] {
					unknown[field] = true
					report.Findings = append(report.Findings, Finding{
						Row: n, Field: field, Severity: SeverityInfo,
						Message: fmt.Sprintf("field %q is not in the property catalog and will be skipped", field),
					})
				}
			}
		}

		report.Findings = append(report.Findings, checkValues(n, row, opts)...)
	}

	report.MissingRequired = sortedKeys(missingRequired)
	report.MissingRecommended = sortedKeys(missingRecommended)
	report.UnknownFields = sortedKeys(unknown)
	return report
}

// checkValues applies per-value format checks. All advisory.
func checkValues(n int, row *meta.Row, opts Options) []Finding {
	var findings []Finding

	if title := strings.TrimSpace(row.Value("title")); title != "" {
		if !langTaggedRegex.MatchString(title) {
			findings = append(findings, Finding{
				Row: n, Field: "title", Severity: SeverityInfo,
				Message: "title does not use the lang:text|lang:text convention; language will be recorded as undetermined",
			})
		}
	}

	if typ := strings.TrimSpace(row.Value("type")); typ != "" && opts.TypeNamespace != "" {
		if !strings.HasPrefix(typ, opts.TypeNamespace) {
			findings = append(findings, Finding{
				Row: n, Field: "type", Severity: SeverityWarning,
				Message: fmt.Sprintf("type %q does not start with %s", typ, opts.TypeNamespace),
			})
		}
	}

	if date := strings.TrimSpace(row.Value("date")); date != "" {
		if !numericRegex.MatchString(date) && !strings.Contains(date, "-") {
			findings = append(findings, Finding{
				Row: n, Field: "date", Severity: SeverityWarning,
				Message: fmt.Sprintf("date %q does not look like a date", date),
			})
		}
	}

	return findings
}

// isStructuralField reports whether a column belongs to the resource
// envelope rather than its metadata, so it is not flagged as unknown.
func isStructuralField(field string) bool {
	switch field {
	case "file", "status", "data_items":
		return true
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
