package service

import (
	"encoding/json"
	"strings"

	"sparky-backend/internal/model"
)

var defaultSuggestions = []string{"Tell me more", "Cost estimate?", "Maintenance schedule"}

// ParseAdvice finds the first balanced JSON object in reply that carries an
// "advice" key and decodes into an AdvicePayload. Surrounding prose, code
// fences and unrelated objects are skipped. Field values are taken as-is; a
// value of the wrong JSON type makes that candidate fail.
func ParseAdvice(reply string) (model.AdvicePayload, bool) {
	for start := strings.IndexByte(reply, '{'); start >= 0; {
		if end := matchingBrace(reply, start); end > start {
			if payload, ok := decodeAdvice([]byte(reply[start : end+1])); ok {
				return payload, true
			}
		}

		next := strings.IndexByte(reply[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return model.AdvicePayload{}, false
}

func decodeAdvice(candidate []byte) (model.AdvicePayload, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(candidate, &fields); err != nil {
		return model.AdvicePayload{}, false
	}
	if _, ok := fields["advice"]; !ok {
		return model.AdvicePayload{}, false
	}

	var payload model.AdvicePayload
	if err := json.Unmarshal(candidate, &payload); err != nil {
		return model.AdvicePayload{}, false
	}
	return payload, true
}

// matchingBrace returns the index of the brace closing the object opened at
// s[start], or -1 if the object never closes. Braces inside JSON strings are
// not counted.
func matchingBrace(s string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// FallbackAdvice wraps a reply that carried no usable JSON.
func FallbackAdvice(reply string) model.AdvicePayload {
	suggestions := make([]string, len(defaultSuggestions))
	copy(suggestions, defaultSuggestions)
	return model.AdvicePayload{
		Advice:      reply,
		Suggestions: suggestions,
	}
}
