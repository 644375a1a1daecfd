// Package index folds dataset entries into per-key groups and answers exact and prefix lookups over them.
//
// An Index is built once with Build and is read-only afterwards. Keys are kept in
// locale-aware collation order; prefix lookups walk a patricia trie to find the
// candidates and return them in that same order.
package index

import (
	"slices"
	"strings"

	"github.com/bastiangx/choseong/pkg/dataset"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Stats summarizes an index build.
type Stats struct {
	Entries     int // entries offered to Build
	Skipped     int // entries dropped for an empty key
	EmptyGroups int // keys dropped because no category or answer survived
	Keys        int
	Answers     int // distinct answers summed over all groups
}

// Index maps keys to their groups and keeps every key in collation order.
type Index struct {
	groups map[string]*Group
	keys   []string
	trie   *patricia.Trie // key -> position in keys
	locale language.Tag
	stats  Stats
}

// Option configures Build.
type Option func(*buildOptions)

type buildOptions struct {
	locale language.Tag
}

// WithLocale sets the collation locale used to order keys. Defaults to Korean.
func WithLocale(tag language.Tag) Option {
	return func(o *buildOptions) {
		o.locale = tag
	}
}

// Build folds entries into groups and sorts the distinct keys.
// Entries with an empty key are skipped; it never fails.
func Build(entries []dataset.Entry, opts ...Option) *Index {
	o := buildOptions{locale: language.Korean}
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		groups: make(map[string]*Group),
		trie:   patricia.NewTrie(),
		locale: o.locale,
	}
	idx.stats.Entries = len(entries)

	for _, e := range entries {
		if e.Key == "" {
			idx.stats.Skipped++
			continue
		}
		g, ok := idx.groups[e.Key]
		if !ok {
			g = newGroup()
			idx.groups[e.Key] = g
		}
		if e.Category != "" {
			g.categories.add(e.Category)
		}
		for _, a := range dataset.TrimAnswers(e.Answers) {
			g.answers.add(a)
		}
	}

	idx.keys = make([]string, 0, len(idx.groups))
	for k, g := range idx.groups {
		if g.IsEmpty() {
			delete(idx.groups, k)
			idx.stats.EmptyGroups++
			continue
		}
		idx.keys = append(idx.keys, k)
		idx.stats.Answers += g.NumAnswers()
	}

	sortKeys(idx.keys, o.locale)
	for i, k := range idx.keys {
		idx.trie.Insert(patricia.Prefix(k), i)
	}
	idx.stats.Keys = len(idx.keys)

	log.Debugf("Index built: entries=%d skipped=%d empty=%d keys=%d answers=%d locale=%s",
		idx.stats.Entries, idx.stats.Skipped, idx.stats.EmptyGroups,
		idx.stats.Keys, idx.stats.Answers, o.locale)
	return idx
}

// sortKeys orders keys by the locale's collation, breaking collation ties by byte order
// so the result is deterministic.
func sortKeys(keys []string, tag language.Tag) {
	col := collate.New(tag)
	slices.SortFunc(keys, func(a, b string) int {
		if c := col.CompareString(a, b); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// Lookup returns the group stored under key.
func (idx *Index) Lookup(key string) (*Group, bool) {
	g, ok := idx.groups[key]
	return g, ok
}

// Keys returns a copy of every key in collation order.
func (idx *Index) Keys() []string {
	out := make([]string, len(idx.keys))
	copy(out, idx.keys)
	return out
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Locale returns the collation locale the keys were sorted with.
func (idx *Index) Locale() language.Tag {
	return idx.locale
}

// Stats returns the build statistics.
func (idx *Index) Stats() Stats {
	return idx.stats
}

// PrefixKeys returns keys starting with prefix in collation order, skipping exclude.
// At most limit keys are returned; a limit <= 0 means no cap. An empty prefix matches nothing.
func (idx *Index) PrefixKeys(prefix, exclude string, limit int) []string {
	if prefix == "" {
		return nil
	}

	var positions []int
	err := idx.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting key trie: %v", err)
		return nil
	}
	slices.Sort(positions)

	var out []string
	for _, pos := range positions {
		k := idx.keys[pos]
		if k == exclude {
			continue
		}
		out = append(out, k)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
