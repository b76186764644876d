package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mirror of the stock list in the config package; duplicated here to keep
// this package free of a config import
var testPatterns = []string{
	`(?i)^\s*(like|comment|share|follow|send|reply|save)\s*$`,
	`(?i)\bsponsored\b`,
	`(?i)\b\d+\s*(mins?|hrs?|hours?|days?|weeks?|[hmdw])\s*(ago)?\s*$`,
	`(?i)\bjust now\b`,
	`(?i)\b\d+(\.\d+)?[KM]?\s+(likes?|comments?|shares?|reactions?|views?)\b`,
	`(?i)^\s*(see more|see translation|see all|view more comments|most relevant|top comments)\s*$`,
	`(?i)view\s+\d+\s+(more\s+)?(replies|comments)`,
	`\b\d{1,2}:\d{2}\s*([AP]M)?\b`,
	`[·•]`,
}

func TestNoiseFilter_Clean(t *testing.T) {
	filter, err := NewNoiseFilter(testPatterns)
	if err != nil {
		t.Fatalf("NewNoiseFilter() error = %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ui rows stripped",
			in:   "One Batangas\nRoad closed at the diversion today\nLike\nComment\nShare",
			want: "One Batangas\nRoad closed at the diversion today",
		},
		{
			name: "sponsored and reaction counts",
			in:   "Sponsored\nBuy our new product\n1.2K likes 300 comments",
			want: "Buy our new product",
		},
		{
			name: "relative timestamps",
			in:   "MMDA · 3 hrs ago\nTraffic advisory for EDSA",
			want: "MMDA\nTraffic advisory for EDSA",
		},
		{
			name: "clock times",
			in:   "Posted at 10:45 PM\nFlood update",
			want: "Posted at\nFlood update",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "all noise collapses to empty",
			in:   "Like\nShare\nSee more\n2 mins",
			want: "",
		},
		{
			name: "content untouched",
			in:   "Calamba Updates\nClasses suspended tomorrow in all levels",
			want: "Calamba Updates\nClasses suspended tomorrow in all levels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.Clean(tt.in); got != tt.want {
				t.Errorf("Clean() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewNoiseFilter_Invalid(t *testing.T) {
	if _, err := NewNoiseFilter([]string{`[broken`}); err == nil {
		t.Error("NewNoiseFilter() accepted an invalid pattern")
	}
}

type stubEngine struct {
	text string
	err  error
}

func (s *stubEngine) Recognize(ctx context.Context, imagePath string) (string, error) {
	return s.text, s.err
}

func TestExtractor_EngineFailure(t *testing.T) {
	filter, err := NewNoiseFilter(testPatterns)
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("tesseract exploded")
	e := NewExtractor(&stubEngine{err: boom}, filter)

	text, err := e.Extract(context.Background(), "whatever.png")
	if text != "" {
		t.Errorf("Extract() text = %q, want empty on failure", text)
	}
	if !errors.Is(err, boom) {
		t.Errorf("Extract() error = %v, want the engine error for accounting", err)
	}
}

func TestExtractor_CleansOutput(t *testing.T) {
	filter, err := NewNoiseFilter(testPatterns)
	if err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(&stubEngine{text: "GMA News\nStorm signal raised\nLike\nShare"}, filter)
	text, err := e.Extract(context.Background(), "img.png")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if strings.Contains(text, "Like") || strings.Contains(text, "Share") {
		t.Errorf("Extract() did not strip UI noise: %q", text)
	}
	if !strings.Contains(text, "Storm signal raised") {
		t.Errorf("Extract() lost content: %q", text)
	}
}
