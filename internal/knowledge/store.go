package knowledge

import (
	"fmt"
	"strings"
)

// Store is a read-only lookup over the static technique catalog.
type Store struct {
	techniques []Technique
	byName     map[string]int
}

// NewStore loads the built-in catalog.
func NewStore() *Store {
	s := &Store{
		techniques: techniques,
		byName:     make(map[string]int, len(techniques)),
	}
	for i, t := range techniques {
		s.byName[strings.ToLower(t.Name)] = i
	}
	return s
}

// All returns every technique in declaration order.
func (s *Store) All() []Technique {
	return s.techniques
}

// Get looks up a technique by exact case-insensitive name.
func (s *Store) Get(name string) (Technique, bool) {
	if i, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s.techniques[i], true
	}
	return Technique{}, false
}

// FindClosest returns the first technique (in declaration order) whose name
// contains the given text, case-insensitively.
func (s *Store) FindClosest(partial string) (Technique, bool) {
	needle := strings.ToLower(strings.TrimSpace(partial))
	if needle == "" {
		return Technique{}, false
	}
	for _, t := range s.techniques {
		if strings.Contains(strings.ToLower(t.Name), needle) {
			return t, true
		}
	}
	return Technique{}, false
}

// Names returns all technique names in declaration order.
func (s *Store) Names() []string {
	names := make([]string, len(s.techniques))
	for i, t := range s.techniques {
		names[i] = t.Name
	}
	return names
}

// DescriptionList renders a one-line-per-technique summary for the
// categorization prompt, truncating long descriptions.
func (s *Store) DescriptionList() string {
	var b strings.Builder
	for _, t := range s.techniques {
		desc := t.Description
		if len(desc) > 150 {
			desc = desc[:150] + "..."
		}
		fmt.Fprintf(&b, "- %s: %s\n", t.Name, desc)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ByCategory returns the techniques in a category, in declaration order.
func (s *Store) ByCategory(c Category) []Technique {
	var out []Technique
	for _, t := range s.techniques {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// SearchKeyword returns techniques whose name or description contains the
// keyword, case-insensitively.
func (s *Store) SearchKeyword(keyword string) []Technique {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}
	var out []Technique
	for _, t := range s.techniques {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}
