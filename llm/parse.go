package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// ExtractJSON pulls a JSON object or array out of model text. The
// model is told to return bare JSON but often wraps it in prose or a
// markdown code block, so several strategies are tried in order.
func ExtractJSON(text string) (string, bool) {
	strategies := []func(string) (string, bool){
		extractCompleteJSON,
		extractJSONFromCodeBlock,
		extractBalancedJSON,
	}

	for _, strategy := range strategies {
		if payload, found := strategy(text); found {
			return payload, true
		}
	}
	return "", false
}

// Strategy 1: the entire text is already valid JSON.
func extractCompleteJSON(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)
	if json.Valid([]byte(cleaned)) {
		return cleaned, true
	}
	return "", false
}

// Strategy 2: JSON inside a markdown code block.
func extractJSONFromCodeBlock(text string) (string, bool) {
	codeBlockRegex := regexp.MustCompile("(?s)```(?:json)?\\s*([\\[{].*?[\\]}])\\s*```")
	matches := codeBlockRegex.FindStringSubmatch(text)
	if len(matches) > 1 {
		candidate := fixCommonJSONIssues(strings.TrimSpace(matches[1]))
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// Strategy 3: scan for the first balanced object or array, tracking
// strings so braces inside values don't break the count.
func extractBalancedJSON(text string) (string, bool) {
	startIdx := strings.IndexAny(text, "{[")
	if startIdx == -1 {
		return "", false
	}

	open := text[startIdx]
	var closing byte = '}'
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := startIdx; i < len(text); i++ {
		char := text[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if char == open {
			depth++
		} else if char == closing {
			depth--
			if depth == 0 {
				candidate := fixCommonJSONIssues(text[startIdx : i+1])
				if json.Valid([]byte(candidate)) {
					return candidate, true
				}
				return "", false
			}
		}
	}
	return "", false
}

// fixCommonJSONIssues removes trailing commas, the malformation the
// model produces most often.
func fixCommonJSONIssues(text string) string {
	text = regexp.MustCompile(`,\s*}`).ReplaceAllString(text, "}")
	text = regexp.MustCompile(`,\s*]`).ReplaceAllString(text, "]")
	return text
}
