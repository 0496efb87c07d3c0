// Package report collects findings from checking markup attributes.
package report

import "fmt"

// Severity levels for findings.
type Severity string

const (
	Fatal   Severity = "FATAL"
	Error   Severity = "ERROR"
	Warning Severity = "WARNING"
	Info    Severity = "INFO"
	Usage   Severity = "USAGE"
)

// Message represents a single finding.
type Message struct {
	Severity Severity `json:"severity" yaml:"severity"`
	CheckID  string   `json:"check_id" yaml:"check_id"`
	Message  string   `json:"message" yaml:"message"`
	Location string   `json:"location,omitempty" yaml:"location,omitempty"`
}

func (m Message) String() string {
	if m.Location != "" {
		return fmt.Sprintf("%s(%s): %s [%s]", m.Severity, m.CheckID, m.Message, m.Location)
	}
	return fmt.Sprintf("%s(%s): %s", m.Severity, m.CheckID, m.Message)
}

// Location formats a 1-based line and column.
func Location(line, col int) string {
	return fmt.Sprintf("%d:%d", line, col)
}

// Report collects all messages from one run.
type Report struct {
	Messages []Message `json:"messages" yaml:"messages"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a message to the report.
func (r *Report) Add(sev Severity, checkID string, msg string) {
	r.AddWithLocation(sev, checkID, msg, "")
}

// AddWithLocation appends a message with a location to the report.
func (r *Report) AddWithLocation(sev Severity, checkID string, msg string, location string) {
	r.Messages = append(r.Messages, Message{
		Severity: sev,
		CheckID:  checkID,
		Message:  msg,
		Location: location,
	})
}

// Count returns the number of messages with the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, m := range r.Messages {
		if m.Severity == sev {
			n++
		}
	}
	return n
}

// FatalCount returns the number of FATAL messages.
func (r *Report) FatalCount() int { return r.Count(Fatal) }

// ErrorCount returns the number of ERROR messages.
func (r *Report) ErrorCount() int { return r.Count(Error) }

// WarningCount returns the number of WARNING messages.
func (r *Report) WarningCount() int { return r.Count(Warning) }

// UsageCount returns the number of USAGE messages.
func (r *Report) UsageCount() int { return r.Count(Usage) }

// IsValid returns true if there are no FATAL or ERROR messages.
func (r *Report) IsValid() bool {
	return r.FatalCount() == 0 && r.ErrorCount() == 0
}

// CheckIDs returns how many times each check fired.
func (r *Report) CheckIDs() map[string]int {
	ids := make(map[string]int)
	for _, m := range r.Messages {
		ids[m.CheckID]++
	}
	return ids
}

// Reclassify changes messages of severity from whose CheckID is in
// checkIDs to severity to. Strict mode uses it to promote warnings.
func (r *Report) Reclassify(checkIDs map[string]bool, from, to Severity) {
	for i := range r.Messages {
		if r.Messages[i].Severity == from && checkIDs[r.Messages[i].CheckID] {
			r.Messages[i].Severity = to
		}
	}
}
