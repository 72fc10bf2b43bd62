package recommend

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
)

// Repair normalizes the model's raw text into parseable JSON: strip code
// fences, extract the outermost brace span, collapse literal newlines and
// tabs, and drop trailing commas before closing braces or brackets. It
// reports whether the repaired text parses as JSON; on failure the original
// text is returned for diagnostics.
func Repair(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	if m := fenceRe.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return raw, false
	}
	text = text[start : end+1]

	// Literal control characters inside string values are the model's most
	// common syntax defect; structural whitespace is unaffected by the swap.
	text = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ").Replace(text)
	text = trailingCommaRe.ReplaceAllString(text, "$1")

	if !json.Valid([]byte(text)) {
		return raw, false
	}
	return text, true
}
