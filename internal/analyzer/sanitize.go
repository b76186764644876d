package analyzer

import "strings"

var unicodeReplacer = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‘", "'",
	"’", "'",
	"…", "...",
	" ", " ",
)

// Sanitize reduces model output to the Latin-1 subset the PDF core fonts can
// encode. Common typographic characters map to ASCII equivalents; everything
// else outside the range, emoji included, is dropped.
func Sanitize(text string) string {
	text = unicodeReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case r >= 32 && r < 127:
			b.WriteRune(r)
		case r >= 160 && r < 256:
			b.WriteRune(r)
		}
	}

	return strings.TrimSpace(b.String())
}
