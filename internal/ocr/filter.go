package ocr

import (
	"fmt"
	"regexp"
	"strings"
)

// NoiseFilter strips known UI artifacts (reaction rows, relative timestamps,
// "Sponsored" labels and the like) from raw OCR text. The pattern list is
// configuration, not code; see config.DefaultNoisePatterns for the stock set.
type NoiseFilter struct {
	patterns []*regexp.Regexp
}

// NewNoiseFilter compiles the given regex patterns. An invalid pattern is a
// configuration error and fails construction.
func NewNoiseFilter(patterns []string) (*NoiseFilter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid noise pattern %q: %w", p, err)
		}
		compiled = append(compiled, re)
	}
	return &NoiseFilter{patterns: compiled}, nil
}

// Clean removes every pattern match line by line and drops lines that end up
// blank. The surviving lines keep their original order.
func (f *NoiseFilter) Clean(text string) string {
	if text == "" {
		return ""
	}

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		for _, re := range f.patterns {
			line = re.ReplaceAllString(line, "")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
