package llm

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// codeBlockPattern matches markdown code blocks with an optional language tag.
var codeBlockPattern = regexp.MustCompile(`(?s)` + "```" + `(\w*)\s*\n(.+?)\n` + "```")

// ExtractJSON extracts a JSON document from an LLM response that may be
// wrapped in markdown or surrounding prose.
// Priority:
//  1. JSON inside ```json ... ``` or ``` ... ``` code blocks
//  2. The first raw JSON object {...} or array [...] in the response
//
// Returns an LLM_RESPONSE_PARSE_FAILED error when no valid JSON is found.
func ExtractJSON(response string) (string, error) {
	if jsonStr, found := extractFromCodeBlock(response); found {
		return jsonStr, nil
	}

	if jsonStr, found := extractRawJSON(response); found {
		return jsonStr, nil
	}

	return "", types.NewError(ErrResponseParseFailed, "no valid JSON found in response")
}

// extractFromCodeBlock finds valid JSON in markdown code blocks.
func extractFromCodeBlock(response string) (string, bool) {
	matches := codeBlockPattern.FindAllStringSubmatch(response, -1)

	for _, match := range matches {
		if len(match) < 3 {
			continue
		}

		lang := strings.ToLower(match[1])
		content := strings.TrimSpace(match[2])

		// Accept json-tagged or untagged blocks, skip other languages
		if lang != "" && lang != "json" {
			continue
		}

		if strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[") {
			if json.Valid([]byte(content)) {
				return content, true
			}
		}
	}

	return "", false
}

// extractRawJSON finds the first JSON object or array not wrapped in a code
// block, matching brackets to handle nesting and quoted strings.
func extractRawJSON(response string) (string, bool) {
	startObj := strings.Index(response, "{")
	startArr := strings.Index(response, "[")

	start := -1
	var open, close byte = '{', '}'
	if startObj >= 0 && (startArr < 0 || startObj < startArr) {
		start = startObj
	} else if startArr >= 0 {
		start = startArr
		open, close = '[', ']'
	}

	if start < 0 {
		return "", false
	}

	candidate := matchBrackets(response[start:], open, close)
	if candidate != "" && json.Valid([]byte(candidate)) {
		return candidate, true
	}

	return "", false
}

// matchBrackets returns the prefix of s up to and including the bracket that
// balances s[0], or the empty string when the brackets never balance.
func matchBrackets(s string, open, close byte) string {
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// brackets inside strings do not count
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}

	return ""
}
