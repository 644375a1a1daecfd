package index

// orderedSet keeps the first-insertion order of distinct strings.
type orderedSet struct {
	items []string
	seen  map[string]struct{}
}

func newOrderedSet() orderedSet {
	return orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

func (s *orderedSet) values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Group is the aggregated data of every entry sharing one key.
// A Group is never modified once the Index that owns it is built.
type Group struct {
	categories orderedSet
	answers    orderedSet
}

func newGroup() *Group {
	return &Group{
		categories: newOrderedSet(),
		answers:    newOrderedSet(),
	}
}

// VisibleCategories returns the categories in insertion order minus the suppressed marker.
// An empty marker returns every category.
func (g *Group) VisibleCategories(suppressed string) []string {
	out := make([]string, 0, len(g.categories.items))
	for _, c := range g.categories.items {
		if c == suppressed {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Answers returns the distinct answers in insertion order.
func (g *Group) Answers() []string {
	return g.answers.values()
}

// NumAnswers returns the number of distinct answers.
func (g *Group) NumAnswers() int {
	return len(g.answers.items)
}

// IsEmpty reports whether the group has neither categories nor answers.
func (g *Group) IsEmpty() bool {
	return len(g.categories.items) == 0 && len(g.answers.items) == 0
}
