// Package dataset reads keyed answer records from disk and normalizes them into entries.
package dataset

import (
	"strings"
	"unicode"
)

// Entry is a single normalized dataset record.
// Answers are trimmed and never empty strings.
type Entry struct {
	Key      string
	Category string
	Answers  []string
}

// FromRecord converts a decoded record into an Entry.
// It accepts both the singular "answer" and the plural "answers" fields,
// and reports false when the record carries no usable key.
func FromRecord(rec map[string]any) (Entry, bool) {
	if rec == nil {
		return Entry{}, false
	}
	key, _ := rec["key"].(string)
	if key == "" {
		return Entry{}, false
	}

	e := Entry{Key: key}
	if cat, ok := rec["category"].(string); ok {
		e.Category = cat
	}
	e.Answers = collectAnswers(rec)
	return e, true
}

// collectAnswers prefers a list under "answers", then a string under "answer",
// then a bare string under "answers".
func collectAnswers(rec map[string]any) []string {
	var raw []string

	switch v := rec["answers"].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case []string:
		raw = append(raw, v...)
	default:
		if s, ok := rec["answer"].(string); ok && s != "" {
			raw = []string{s}
		} else if s, ok := v.(string); ok && s != "" {
			raw = []string{s}
		}
	}

	return TrimAnswers(raw)
}

// TrimText strips surrounding Unicode whitespace and byte order marks.
func TrimText(s string) string {
	return strings.TrimFunc(s, isTrimmable)
}

func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// TrimAnswers trims every answer and drops the ones left empty.
func TrimAnswers(answers []string) []string {
	out := make([]string, 0, len(answers))
	for _, a := range answers {
		if t := TrimText(a); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// FromRecords converts decoded records, skipping those without a key.
// The second return value is the number of skipped records.
func FromRecords(recs []map[string]any) ([]Entry, int) {
	entries := make([]Entry, 0, len(recs))
	skipped := 0
	for _, rec := range recs {
		e, ok := FromRecord(rec)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped
}
