package domain

import "fmt"

// Severity classifies a diagnostic message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// NoRecord marks a diagnostic that is not tied to a specific record.
const NoRecord = -1

// Diagnostic is one parse- or validation-time finding. Record is the index
// into Zone.Records the finding refers to, or NoRecord.
type Diagnostic struct {
	Severity Severity
	Record   int
	Message  string
}

// Errorf builds an error-severity diagnostic for the given record index.
func Errorf(record int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityError, Record: record, Message: fmt.Sprintf(format, args...)}
}

// Warnf builds a warning-severity diagnostic for the given record index.
func Warnf(record int, format string, args ...any) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Record: record, Message: fmt.Sprintf(format, args...)}
}

// String renders the diagnostic for human consumption.
func (d Diagnostic) String() string {
	if d.Record == NoRecord {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: record %d: %s", d.Severity, d.Record, d.Message)
}

// HasErrors reports whether any diagnostic in the list is error-severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
