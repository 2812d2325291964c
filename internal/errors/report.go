package errors

import (
	"encoding/json"
	"errors"
)

// Report is the canonical structured diagnostic for minihs. Every
// builder in this package returns a *Report, wrapped as a ReportError so
// it survives errors.As() unwrapping through ordinary Go error returns.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report so it can travel as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// New builds a Report and wraps it as an error in one call.
func New(code, phase, message string, data map[string]any) error {
	return &ReportError{Rep: &Report{
		Schema:  "minihs.error/v1",
		Code:    code,
		Phase:   phase,
		Message: message,
		Data:    data,
	}}
}

// ToJSON renders a Report as deterministic JSON for tooling/CLI --json output.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		data, err := json.Marshal(r)
		return string(data), err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	return string(data), err
}
