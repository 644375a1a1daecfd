// Package lookup turns a raw query string into a render plan over a built index.
//
// Engine.Query is a pure function of the index and the query text: it trims the
// input, looks the result up as an exact key, collects prefix suggestions in
// collation order and describes what should be shown. Front-ends bind the plan
// to their own rendering and route suggestion loads back through Engine.Load,
// which is the same path as typing the key.
package lookup

import (
	"github.com/bastiangx/choseong/pkg/dataset"
	"github.com/bastiangx/choseong/pkg/index"
)

// Default values mirrored by the config package.
const (
	DefaultSuggestionLimit    = 100
	DefaultSuppressedCategory = "기타+중복정답"
	DefaultPlaceholder        = "초성을 입력하면 결과가 여기에 표시됩니다."
	DefaultNoMatch            = "일치하는 항목이 없습니다."
)

// Options configures an Engine.
type Options struct {
	SuggestionLimit    int
	SuppressedCategory string
	Placeholder        string
	NoMatch            string
}

// DefaultOptions returns the options the tool ships with.
func DefaultOptions() Options {
	return Options{
		SuggestionLimit:    DefaultSuggestionLimit,
		SuppressedCategory: DefaultSuppressedCategory,
		Placeholder:        DefaultPlaceholder,
		NoMatch:            DefaultNoMatch,
	}
}

// Engine computes plans over a read-only index.
type Engine struct {
	idx  *index.Index
	opts Options
}

// NewEngine creates an engine over idx. A zero limit or empty message falls back to the
// default; an empty SuppressedCategory hides nothing.
func NewEngine(idx *index.Index, opts Options) *Engine {
	def := DefaultOptions()
	if opts.SuggestionLimit <= 0 {
		opts.SuggestionLimit = def.SuggestionLimit
	}
	if opts.Placeholder == "" {
		opts.Placeholder = def.Placeholder
	}
	if opts.NoMatch == "" {
		opts.NoMatch = def.NoMatch
	}
	return &Engine{idx: idx, opts: opts}
}

// Options returns the effective options.
func (e *Engine) Options() Options {
	return e.opts
}

// Normalize trims surrounding whitespace and byte order marks from raw input.
func Normalize(raw string) string {
	return dataset.TrimText(raw)
}

// Query runs one full query cycle for the current input text.
func (e *Engine) Query(raw string) Plan {
	q := Normalize(raw)
	if q == "" {
		return Plan{
			State:   StateEmpty,
			Message: MessagePlaceholder,
			Text:    e.opts.Placeholder,
		}
	}

	plan := Plan{State: StateActive, Query: q}

	exclude := ""
	if g, ok := e.idx.Lookup(q); ok {
		plan.Exact = &ExactCard{
			Key:        q,
			Categories: e.visibleCategories(g),
			Answers:    g.Answers(),
		}
		exclude = q
	}

	for _, k := range e.idx.PrefixKeys(q, exclude, e.opts.SuggestionLimit) {
		row := SuggestionRow{Key: k}
		if g, ok := e.idx.Lookup(k); ok {
			row.Categories = e.visibleCategories(g)
		}
		plan.Suggestions = append(plan.Suggestions, row)
	}

	if !plan.HasResults() {
		plan.Message = MessageNoMatch
		plan.Text = e.opts.NoMatch
	}
	return plan
}

// Load selects a suggested key. It is exactly a query for that key.
func (e *Engine) Load(key string) Plan {
	return e.Query(key)
}

func (e *Engine) visibleCategories(g *index.Group) []string {
	return g.VisibleCategories(e.opts.SuppressedCategory)
}
