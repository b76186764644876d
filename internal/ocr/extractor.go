package ocr

import (
	"context"

	"shotbook/internal/logger"
)

// Extractor runs the OCR engine and the noise filter over one image.
// Extraction problems never abort a run: the text result is always usable,
// empty on failure, and the returned error exists only so callers can count
// how often the engine fell over.
type Extractor struct {
	engine Engine
	filter *NoiseFilter
}

func NewExtractor(engine Engine, filter *NoiseFilter) *Extractor {
	return &Extractor{engine: engine, filter: filter}
}

// Extract OCRs the image and cleans the result. On engine failure it logs a
// warning and returns empty text alongside the (already absorbed) error.
func (e *Extractor) Extract(ctx context.Context, imagePath string) (string, error) {
	raw, err := e.engine.Recognize(ctx, imagePath)
	if err != nil {
		logger.GetLogger().Warnf("OCR failed for %s, continuing with empty text: %v", imagePath, err)
		return "", err
	}
	return e.filter.Clean(raw), nil
}
