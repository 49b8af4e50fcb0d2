package storegen

import (
	"encoding/json"
	"regexp"
	"strings"
)

// LLM responses frequently wrap JSON in a markdown code fence despite
// instructions not to. CleanJSON strips exactly one leading and one
// trailing fence; it never attempts to repair malformed JSON.
var (
	leadingFenceRE  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	trailingFenceRE = regexp.MustCompile("(?i)\\s*```$")
)

// CleanJSON strips a single leading and trailing markdown code fence
// (optionally tagged "json") from raw and trims surrounding whitespace.
func CleanJSON(raw string) string {
	cleaned := leadingFenceRE.ReplaceAllString(raw, "")
	cleaned = trailingFenceRE.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// ExtractJSON cleans raw with CleanJSON and unmarshals the result into v.
// Returns EINVALID if the cleaned text is not valid JSON.
func ExtractJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(CleanJSON(raw)), v); err != nil {
		return Errorf(EINVALID, "response is not valid JSON: %v", err)
	}
	return nil
}
