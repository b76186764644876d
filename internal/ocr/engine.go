package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Engine produces text from a pixel image. Implementations are external
// collaborators; the pipeline expects them to fail and carries on.
type Engine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Tesseract drives the tesseract binary through its stdout mode, the same
// interface pytesseract wraps.
type Tesseract struct {
	Cmd       string // binary path, defaults to "tesseract" on PATH
	Languages string // e.g. "eng" or "eng+fil"
	Timeout   time.Duration
}

func (t *Tesseract) Recognize(ctx context.Context, imagePath string) (string, error) {
	bin := t.Cmd
	if bin == "" {
		bin = "tesseract"
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	args := []string{imagePath, "stdout"}
	if t.Languages != "" {
		args = append(args, "-l", t.Languages)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("tesseract failed on %s: %w: %s", imagePath, err, msg)
		}
		return "", fmt.Errorf("tesseract failed on %s: %w", imagePath, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
