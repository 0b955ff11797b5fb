package analysis

import (
	"encoding/json"
	"strings"
)

// Defaults substituted when the model reply parses but individual fields are
// missing or carry the wrong type.
const (
	defaultSuggestions = "No suggestions available"
	defaultSummary     = "No summary available"
	failedSuggestions  = "Analysis failed - please try again"
	failedSummary      = "Unable to generate summary"
)

// Result is the coerced shape of a model reply. All four fields are always
// present and correctly typed, no matter what the model returned.
type Result struct {
	MatchPercent    int
	MissingKeywords []string
	Suggestions     string
	Summary         string
}

// FallbackResult is the record used whenever the model reply cannot be parsed
// at all, and when the transport itself fails.
func FallbackResult() Result {
	return Result{
		MatchPercent:    0,
		MissingKeywords: []string{},
		Suggestions:     failedSuggestions,
		Summary:         failedSummary,
	}
}

// ParseModelReply turns a raw model reply into a Result. It is a total
// function: the model is an untrusted text generator, so each field is coerced
// individually and anything unparseable collapses to FallbackResult. A
// malformed reply must never propagate past this point.
//
// matchPercent is deliberately not clamped to [0,100]; an out-of-range number
// from the model is stored as-is.
func ParseModelReply(raw string) Result {
	cleaned := StripFences(raw)

	var fields map[string]any
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return FallbackResult()
	}

	out := Result{
		MatchPercent:    0,
		MissingKeywords: []string{},
		Suggestions:     defaultSuggestions,
		Summary:         defaultSummary,
	}
	if n, ok := fields["matchPercent"].(float64); ok {
		out.MatchPercent = int(n)
	}
	if seq, ok := fields["missingKeywords"].([]any); ok {
		keywords := make([]string, 0, len(seq))
		for _, v := range seq {
			if s, ok := v.(string); ok {
				keywords = append(keywords, s)
			}
		}
		out.MissingKeywords = keywords
	}
	if s, ok := fields["suggestions"].(string); ok {
		out.Suggestions = s
	}
	if s, ok := fields["summary"].(string); ok {
		out.Summary = s
	}
	return out
}

// StripFences removes a surrounding markdown code block, with or without a
// language tag, leaving bare JSON untouched.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
