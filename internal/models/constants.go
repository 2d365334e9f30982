package models

const (
	// DefaultTechnique is used whenever categorization cannot produce a
	// known technique name.
	DefaultTechnique = "Zero-Shot Prompting"

	// DefaultTechniqueLabel replaces DefaultTechnique at enhancement time so
	// the enhancement request does not ask for a "zero-shot" rewrite.
	DefaultTechniqueLabel = "Direct Instruction Following"

	// CannotSanitize is the sentinel a sanitization call returns when the
	// prompt cannot be rewritten into a safe form.
	CannotSanitize = "CANNOT_SANITIZE"

	// LongPromptThreshold is the length above which a failed safety check
	// falls back to "assume unsafe" instead of "assume safe".
	LongPromptThreshold = 500

	DefaultChunkSize     = 512
	DefaultChunkOverlap  = 50
	DefaultVectorWeight  = 0.7
	DefaultKeywordWeight = 0.3
	DefaultTopK          = 3

	// MinEnhancedLength is the minimal length an LLM enhancement must exceed
	// to be accepted over the deterministic fallback.
	MinEnhancedLength = 10
)

// HighRiskKeywords trigger the conservative "assume unsafe" bias when the
// safety check itself fails. Matched case-insensitively as substrings.
var HighRiskKeywords = []string{
	"weapon", "bomb", "explosive", "kill", "murder", "suicide",
	"self-harm", "hack", "malware", "exploit", "poison", "drug synthesis",
}

var (
	CategorizationPromptTemplate = `You are an expert prompt engineering analyst. Your task is to analyze a user's prompt and identify the most relevant prompting technique from "The Prompt Report" taxonomy.

Available Techniques:
%s

User Prompt to Analyze:
"%s"

Instructions:
1. Analyze the user's prompt for its intent, complexity, and structure
2. Determine which prompting technique would be most beneficial
3. Return ONLY the exact technique name from the list above
4. If multiple techniques could apply, choose the most impactful one

Response Format: Return only the technique name, nothing else.
`

	SafetyPromptTemplate = `You are a content safety reviewer. Assess whether the following prompt is safe to process and answer in exactly this format:

SAFE: YES or NO
ISSUES: comma-separated list of issues, or "none"
SEVERITY: none, low, medium or high

Prompt to assess:
"%s"
`

	SanitizePromptTemplate = `The following prompt was flagged as unsafe for these reasons: %s

Rewrite the prompt so it preserves the user's legitimate intent while removing any disallowed content. If the prompt cannot be made safe, reply with exactly "` + CannotSanitize + `".

Prompt:
"%s"
`

	EnhancementPromptTemplate = `You are a helpful writing assistant. Please help improve the clarity and effectiveness of the following request.

Original Request: "%s"

Suggested Improvement Approach: %s

Description: %s

Guidance: %s
%s
Please provide an improved version of the original request that is clearer and more specific while maintaining the same intent.

Improved Request:
`
)
