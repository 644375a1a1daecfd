package lookup

import (
	"slices"
)

// State is the query state a plan was produced in.
type State int

const (
	// StateEmpty means the normalized query was blank.
	StateEmpty State = iota
	// StateActive means the normalized query had text.
	StateActive
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// MessageKind tells which informational message a plan shows instead of cards.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessagePlaceholder
	MessageNoMatch
)

// ExactCard is the card shown when the query equals a key.
type ExactCard struct {
	Key        string
	Categories []string
	Answers    []string
}

// SuggestionRow is one key that starts with the query.
type SuggestionRow struct {
	Key        string
	Categories []string
}

// Plan is the declarative result of one query cycle.
// Exactly one of Message or the cards is populated: when Message is not MessageNone,
// Exact is nil and Suggestions is empty.
type Plan struct {
	State       State
	Query       string
	Message     MessageKind
	Text        string // message text for Message
	Exact       *ExactCard
	Suggestions []SuggestionRow
}

// HasResults reports whether the plan carries any card.
func (p Plan) HasResults() bool {
	return p.Exact != nil || len(p.Suggestions) > 0
}

// SuggestionKeys returns the keys of the suggestion rows in order.
func (p Plan) SuggestionKeys() []string {
	keys := make([]string, len(p.Suggestions))
	for i, s := range p.Suggestions {
		keys[i] = s.Key
	}
	return keys
}

// Answers returns the answers of the exact card, or nil.
func (p Plan) Answers() []string {
	if p.Exact == nil {
		return nil
	}
	return p.Exact.Answers
}

// Equal reports whether two plans would render identically.
func (p Plan) Equal(o Plan) bool {
	if p.State != o.State || p.Query != o.Query || p.Message != o.Message || p.Text != o.Text {
		return false
	}
	if (p.Exact == nil) != (o.Exact == nil) {
		return false
	}
	if p.Exact != nil {
		if p.Exact.Key != o.Exact.Key ||
			!slices.Equal(p.Exact.Categories, o.Exact.Categories) ||
			!slices.Equal(p.Exact.Answers, o.Exact.Answers) {
			return false
		}
	}
	return slices.EqualFunc(p.Suggestions, o.Suggestions, func(a, b SuggestionRow) bool {
		return a.Key == b.Key && slices.Equal(a.Categories, b.Categories)
	})
}
