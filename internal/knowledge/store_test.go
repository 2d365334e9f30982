package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGet(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name  string
		query string
		want  string
		found bool
	}{
		{"exact match", "Zero-Shot Prompting", "Zero-Shot Prompting", true},
		{"case insensitive", "zero-shot prompting", "Zero-Shot Prompting", true},
		{"surrounding whitespace", "  Role Prompting  ", "Role Prompting", true},
		{"unknown name", "Quantum Prompting", "", false},
		{"partial name is not exact", "Zero-Shot", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Get(tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestStoreFindClosest(t *testing.T) {
	s := NewStore()

	tests := []struct {
		name    string
		partial string
		want    string
		found   bool
	}{
		{"substring of one name", "Chain-of-Thought", "Chain-of-Thought (CoT) Prompting", true},
		{"case insensitive substring", "self-refine", "Self-Refine", true},
		// containment only, no fuzzy matching
		{"near miss does not match", "CoT-ish", "", false},
		{"empty input", "", "", false},
		{"no relation", "completely unrelated", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.FindClosest(tt.partial)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestStoreFindClosestFirstMatchWins(t *testing.T) {
	s := NewStore()

	// several names contain "prompting"; declaration order decides
	got, ok := s.FindClosest("prompting")
	require.True(t, ok)
	assert.Equal(t, s.All()[0].Name, got.Name)
}

func TestStoreDescriptionList(t *testing.T) {
	s := NewStore()

	list := s.DescriptionList()
	lines := strings.Split(list, "\n")
	require.Len(t, lines, len(s.All()))

	for i, line := range lines {
		assert.True(t, strings.HasPrefix(line, "- "+s.All()[i].Name+": "), "line %d: %s", i, line)
		assert.LessOrEqual(t, len(line), len(s.All()[i].Name)+150+len("- : ..."))
	}
}

func TestStoreByCategory(t *testing.T) {
	s := NewStore()

	icl := s.ByCategory(CategoryInContextLearning)
	require.NotEmpty(t, icl)
	for _, tech := range icl {
		assert.Equal(t, CategoryInContextLearning, tech.Category)
	}

	names := make(map[string]bool)
	for _, tech := range icl {
		names[tech.Name] = true
	}
	assert.True(t, names["Few-Shot Prompting"])
	assert.True(t, names["Self-Generated In-Context Learning (SG-ICL)"])
	assert.True(t, names["Unified Demonstration Retrieval (UDR)"])
}

func TestStoreNamesUnique(t *testing.T) {
	s := NewStore()

	seen := make(map[string]bool)
	for _, name := range s.Names() {
		assert.False(t, seen[name], "duplicate technique name %s", name)
		seen[name] = true
	}
}

func TestTechniqueRender(t *testing.T) {
	tech := Technique{
		Name:          "Example Technique",
		Category:      CategoryZeroShot,
		Description:   "Does a thing.",
		HowToApply:    "Apply it directly.",
		Benefits:      "Simplicity.",
		Prerequisites: "None.",
		Related:       []string{"Other", "Another"},
	}

	rendered := tech.Render()
	assert.Contains(t, rendered, "Technique: Example Technique")
	assert.Contains(t, rendered, "Category: Zero-Shot")
	assert.Contains(t, rendered, "How to Apply: Apply it directly.")
	assert.Contains(t, rendered, "Related: Other, Another")
}

func TestStoreSearchKeyword(t *testing.T) {
	s := NewStore()

	hits := s.SearchKeyword("reasoning")
	require.NotEmpty(t, hits)
	for _, tech := range hits {
		matched := strings.Contains(strings.ToLower(tech.Name), "reasoning") ||
			strings.Contains(strings.ToLower(tech.Description), "reasoning")
		assert.True(t, matched, "technique %s does not mention reasoning", tech.Name)
	}

	assert.Nil(t, s.SearchKeyword(""))
}
