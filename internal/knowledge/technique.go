package knowledge

import (
	"fmt"
	"strings"
)

// Category groups techniques per the Prompt Report taxonomy.
type Category string

const (
	CategoryInContextLearning Category = "In-Context Learning"
	CategoryZeroShot          Category = "Zero-Shot"
	CategoryThoughtGeneration Category = "Thought Generation"
	CategoryDecomposition     Category = "Decomposition"
	CategoryEnsembling        Category = "Ensembling"
	CategorySelfCriticism     Category = "Self-Criticism"
)

// Technique is one named prompting technique from the static knowledge base.
// Techniques are immutable and looked up by exact case-insensitive name.
type Technique struct {
	Name          string
	Category      Category
	SubCategory   string
	Description   string
	HowToApply    string
	Benefits      string
	Prerequisites string
	Related       []string
}

// Render produces the canonical text block for a technique, used both as the
// embedded knowledge-base document and as retrieval content.
func (t Technique) Render() string {
	return fmt.Sprintf(`Technique: %s
Category: %s
Description: %s
How to Apply: %s
Benefits: %s
Prerequisites: %s
Related: %s`,
		t.Name, t.Category, t.Description, t.HowToApply,
		t.Benefits, t.Prerequisites, strings.Join(t.Related, ", "))
}
