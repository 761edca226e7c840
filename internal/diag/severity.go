package diag

// Severity defines the importance of a diagnostic. The zero value is
// SevInfo so that an unset severity never upgrades a finding.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the upper-case form used in JSON payloads and plain
// CLI lines.
func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	case SevInfo:
		return "INFO"
	}
	return "UNKNOWN"
}

// Label returns the lower-case form used in golden output.
func (s Severity) Label() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return "info"
	}
}
