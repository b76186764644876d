package screenshot

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kbinani/screenshot"
)

// Capture grabs the given display and writes it into dir under the canonical
// Screenshot_YYYY-MM-DD-HH-MM-SS-mmm.png name, so captured files feed straight
// back into the report pipeline. Returns the written path.
func Capture(displayID int, dir string) (string, error) {
	if n := screenshot.NumActiveDisplays(); displayID < 0 || displayID >= n {
		return "", fmt.Errorf("display %d not available (%d active)", displayID, n)
	}
	bounds := screenshot.GetDisplayBounds(displayID)

	// Capture can wedge under load; 15 seconds is generous for one display
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	done := make(chan error, 1)
	var img image.Image

	go func() {
		var err error
		img, err = screenshot.CaptureRect(bounds)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("failed to capture display %d (bounds: %v): %w", displayID, bounds, err)
		}
	case <-ctx.Done():
		return "", fmt.Errorf("capture of display %d timed out (bounds: %v)", displayID, bounds)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create input folder: %w", err)
	}

	now := time.Now()
	name := fmt.Sprintf("Screenshot_%s-%03d.png", now.Format("2006-01-02-15-04-05"), now.Nanosecond()/1e6)
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return path, nil
}
