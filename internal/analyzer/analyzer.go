package analyzer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shotbook/internal/logger"
)

// FallbackSource labels content whose poster could not be determined.
const FallbackSource = "Unknown Source"

const fallbackSummary = "This post is shown in the screenshot but its content could not be determined."

const noTextSummary = "This post is shown in the screenshot but no text was detected."

// PageContext is what the model (or a fallback) tells us about one
// screenshot: who posted it and a short content-plus-sentiment summary.
// It lives only for the duration of one report build.
type PageContext struct {
	Source  string
	Summary string // at most 3 sentences, starts with "This post is"
}

// Analyzer turns cleaned OCR text into a PageContext. It never fails: the
// primary prompt, a simplified retry, and a deterministic placeholder are
// tried in order, and the first usable answer wins.
type Analyzer struct {
	client  Client
	timeout time.Duration
}

func New(client Client, timeout time.Duration) *Analyzer {
	return &Analyzer{client: client, timeout: timeout}
}

// Analyze produces a PageContext for one image's OCR text. The boolean
// reports whether the answer came from the model; false means the
// deterministic placeholder was used.
func (a *Analyzer) Analyze(ctx context.Context, ocrText string) (PageContext, bool) {
	if strings.TrimSpace(ocrText) == "" {
		// Nothing to ask the model about
		return PageContext{Source: FallbackSource, Summary: noTextSummary}, false
	}

	prompts := []string{primaryPrompt(ocrText), simplifiedPrompt(ocrText)}
	for i, prompt := range prompts {
		pc, err := a.tryPrompt(ctx, prompt)
		if err != nil {
			logger.GetLogger().Warnf("Context analysis attempt %d/%d failed: %v", i+1, len(prompts), err)
			continue
		}
		return normalize(pc), true
	}

	return PageContext{Source: FallbackSource, Summary: fallbackSummary}, false
}

func (a *Analyzer) tryPrompt(ctx context.Context, prompt string) (PageContext, error) {
	callCtx := ctx
	if a.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	raw, err := a.client.Complete(callCtx, prompt)
	if err != nil {
		return PageContext{}, err
	}

	return parseResponse(raw)
}

func primaryPrompt(ocrText string) string {
	return "You will be given OCR text from a Facebook screenshot. " +
		"Find the name of the Facebook page, group, or person who ORIGINALLY POSTED this content. " +
		"Return a JSON object with keys: page_name and summary.\n\n" +
		"1) page_name: the original poster (page, group, or individual), usually at the TOP of the post. " +
		"IGNORE commenters, reactors, sponsored labels, timestamps, and UI elements. " +
		"Return \"Unknown\" only if you truly cannot find the original poster.\n\n" +
		"2) summary: at most 3 sentences, MUST START with \"This post is\", describing what the post is about " +
		"and the general sentiment of commenters if comments are present (supportive, mixed, critical).\n\n" +
		"Return ONLY valid JSON. OCR TEXT:\n\n" + ocrText
}

func simplifiedPrompt(ocrText string) string {
	return "Read this OCR text from a Facebook screenshot. " +
		"Reply with ONLY a JSON object: {\"page_name\": \"<who posted it, or Unknown>\", " +
		"\"summary\": \"<up to 3 sentences starting with 'This post is'>\"}\n\n" + ocrText
}

type modelResponse struct {
	PageName string `json:"page_name"`
	Summary  string `json:"summary"`
}

// parseResponse pulls the expected two-part JSON object out of a completion,
// tolerating prose around it (first '{' to last '}').
func parseResponse(raw string) (PageContext, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return PageContext{}, fmt.Errorf("empty response")
	}

	jsonText := raw
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		first := strings.Index(raw, "{")
		last := strings.LastIndex(raw, "}")
		if first == -1 || last <= first {
			return PageContext{}, fmt.Errorf("no JSON object in response")
		}
		jsonText = raw[first : last+1]
	}

	var mr modelResponse
	if err := json.Unmarshal([]byte(jsonText), &mr); err != nil {
		return PageContext{}, fmt.Errorf("unparseable response: %w", err)
	}
	if strings.TrimSpace(mr.Summary) == "" {
		return PageContext{}, fmt.Errorf("response missing summary")
	}

	return PageContext{
		Source:  strings.TrimSpace(mr.PageName),
		Summary: strings.TrimSpace(mr.Summary),
	}, nil
}

// normalize sanitizes both fields for the PDF renderer and enforces the
// summary contract: "This post is" prefix, at most 3 sentences.
func normalize(pc PageContext) PageContext {
	source := Sanitize(pc.Source)
	if source == "" || strings.EqualFold(source, "unknown") {
		source = FallbackSource
	}

	summary := Sanitize(pc.Summary)
	if !strings.HasPrefix(strings.ToLower(summary), "this post is") {
		summary = "This post is " + summary
	}
	summary = clampSentences(summary, 3)

	return PageContext{Source: source, Summary: summary}
}

// clampSentences cuts text after the n-th sentence terminator.
func clampSentences(text string, n int) string {
	count := 0
	runes := []rune(text)
	for i, r := range runes {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Consume runs of terminators ("?!", "...") as one boundary
		if i+1 < len(runes) {
			next := runes[i+1]
			if next == '.' || next == '!' || next == '?' {
				continue
			}
		}
		count++
		if count == n {
			return strings.TrimSpace(string(runes[:i+1]))
		}
	}
	return strings.TrimSpace(text)
}
