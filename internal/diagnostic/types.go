package diagnostic

import (
	"errors"
	"strings"

	"cms-mapper/internal/common"
)

// Codes of the diagnostics raised by the mapping layer.
const (
	CodeEditorMissing       = "editor_missing"
	CodeConfigValueMissing  = "config_value_missing"
	CodeSensitiveValue      = "sensitive_value_hidden"
	CodeCompositionSkipped  = "composition_skipped"
	CodeTemplateMissing     = "template_missing"
	CodeUnknownLanguage     = "unknown_language"
	CodePropertyNotOnType   = "property_not_on_type"
	CodeStalePropertyID     = "stale_property_id"
	CodeDataTypeMissing     = "data_type_missing"
	CodeStartNodeMissing    = "start_node_missing"
	CodeDictionaryLookupErr = "dictionary_lookup_failed"

	// Raised by callers that run many mappings, such as a consistency check.
	CodeMappingFailed    = "mapping_failed"
	CodeCompositionCycle = "composition_cycle"
)

// Severity orders diagnostics from informational to fatal.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	// TypePair names the mapping ("S -> T") or the item the finding is about.
	TypePair string
	// FieldPath is the property alias or field involved, if any.
	FieldPath string
	// Suggestions are close known names for a name that did not resolve.
	Suggestions []string
}

// String formats d as "code [pair] field: message (did you mean ...?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	b.WriteString(d.Code)

	if d.TypePair != "" {
		b.WriteString(" [" + d.TypePair + "]")
	}

	if d.FieldPath != "" {
		b.WriteString(" " + d.FieldPath)
	}

	b.WriteString(": " + d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// Diagnostics collects findings by severity. The zero value is ready to use.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records a finding that made a mapping fail.
func (d *Diagnostics) AddError(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath})
}

// AddWarning records degraded output.
func (d *Diagnostics) AddWarning(code, message, typePair, fieldPath string, suggestions ...string) {
	d.Add(Diagnostic{
		Severity: SeverityWarning, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath,
		Suggestions: suggestions,
	})
}

// AddInfo records something left out on purpose, such as a hidden value.
func (d *Diagnostics) AddInfo(code, message, typePair, fieldPath string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, TypePair: typePair, FieldPath: fieldPath})
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid reports whether no error was recorded.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// HasCode reports whether any finding carries code.
func (d *Diagnostics) HasCode(code string) bool {
	return len(d.ByCode(code)) > 0
}

// ByCode returns the findings carrying code, errors first.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var result []Diagnostic

	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				result = append(result, diag)
			}
		}
	}

	return result
}

// Error joins the recorded errors into one error, nil when there are none.
func (d *Diagnostics) Error() error {
	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}
