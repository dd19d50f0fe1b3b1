package anthropic

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/freeil-scanner/internal/domain"
	"github.com/freeil-scanner/internal/pkg/errors"
)

// extractJSONArray pulls a JSON array out of model text that may wrap it
// in markdown fences or surrounding prose.
func extractJSONArray(text string) ([]json.RawMessage, error) {
	text = stripFences(text)

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(text), &elems); err == nil {
		return elems, nil
	}

	// Fall back to the first balanced [...] span in the text.
	runes := []rune(text)
	start := -1
	for i, r := range runes {
		if r == '[' {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, errors.ErrMalformedResponse
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(runes); i++ {
		r := runes[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				candidate := string(runes[start : i+1])
				if err := json.Unmarshal([]byte(candidate), &elems); err != nil {
					return nil, errors.ErrMalformedResponse
				}
				return elems, nil
			}
		}
	}
	return nil, errors.ErrMalformedResponse
}

// stripFences removes markdown code fences, keeping only fenced content
// when fences are present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "```") {
		return text
	}

	var fenced []string
	inFence := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			fenced = append(fenced, line)
		}
	}
	if len(fenced) == 0 {
		return text
	}
	return strings.TrimSpace(strings.Join(fenced, "\n"))
}

// decodeEvents parses model text into candidate events. The array itself
// must parse; individual elements that do not look like events are
// dropped with a warning rather than failing the batch.
func decodeEvents(text string, logger *zap.Logger) ([]domain.Event, error) {
	elems, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(elems))
	for i, elem := range elems {
		var ev domain.Event
		if err := json.Unmarshal(elem, &ev); err != nil {
			logger.Warn("Dropping malformed candidate element",
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	return events, nil
}
