// Package ocr extracts text from uploaded images by shelling out to the
// Tesseract CLI. It exists so screenshot analysis can reuse the content
// scoring pipeline on whatever text a scam screenshot contains.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"fraudshield/internal/config"
	"fraudshield/pkg/logger"
)

// TesseractExtractor runs the tesseract binary with stdin/stdout piping.
// Language packs follow tesseract's "+"-joined convention (e.g. "eng+hin").
type TesseractExtractor struct {
	binary    string
	languages string
	maxBytes  int64
	logger    *logger.Logger
}

// NewTesseractExtractor creates a TesseractExtractor from configuration.
func NewTesseractExtractor(cfg config.OCRConfig, log *logger.Logger) *TesseractExtractor {
	binary := cfg.TesseractPath
	if binary == "" {
		binary = "tesseract"
	}
	languages := cfg.Languages
	if languages == "" {
		languages = "eng"
	}
	return &TesseractExtractor{
		binary:    binary,
		languages: languages,
		maxBytes:  cfg.MaxBytes,
		logger:    log.WithComponent("ocr"),
	}
}

// Available reports whether the tesseract binary can be found.
func (t *TesseractExtractor) Available() bool {
	_, err := exec.LookPath(t.binary)
	return err == nil
}

// ExtractText runs OCR on the image and returns the recognized text with
// surrounding whitespace trimmed. An unreadable image yields an empty string,
// not an error; errors mean the tool itself failed.
func (t *TesseractExtractor) ExtractText(ctx context.Context, image io.Reader) (string, error) {
	if t.maxBytes > 0 {
		image = io.LimitReader(image, t.maxBytes)
	}

	// "stdin"/"stdout" keep tesseract off the filesystem entirely.
	cmd := exec.CommandContext(ctx, t.binary, "stdin", "stdout", "-l", t.languages)
	cmd.Stdin = image

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		t.logger.Warn().Err(err).Str("stderr", stderr.String()).Msg("tesseract run failed")
		return "", fmt.Errorf("ocr extraction failed: %w", err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
