package export

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Converter shells out to a headless office suite to turn a DOCX file into a
// PDF. Conversion is best-effort; callers fall back to the summary renderer
// when the binary is missing or the run fails.
type Converter struct {
	bin     string
	timeout time.Duration
}

// NewConverter builds a converter around the given binary. An empty binary
// name disables conversion.
func NewConverter(bin string, timeout time.Duration) *Converter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Converter{bin: bin, timeout: timeout}
}

// Available reports whether the converter binary can be resolved.
func (c *Converter) Available() bool {
	if c.bin == "" {
		return false
	}
	_, err := exec.LookPath(c.bin)
	return err == nil
}

// Convert renders docxPath into a PDF next to it and returns the PDF path.
// The external call is bounded by the configured timeout.
func (c *Converter) Convert(ctx context.Context, docxPath string) (string, error) {
	if !c.Available() {
		return "", fmt.Errorf("pdf converter %q not available", c.bin)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	outDir := filepath.Dir(docxPath)
	cmd := exec.CommandContext(ctx, c.bin, "--headless", "--convert-to", "pdf", "--outdir", outDir, docxPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("convert to pdf: %w: %s", err, strings.TrimSpace(string(out)))
	}

	pdfPath := strings.TrimSuffix(docxPath, filepath.Ext(docxPath)) + ".pdf"
	if _, err := os.Stat(pdfPath); err != nil {
		return "", fmt.Errorf("converted pdf missing: %w", err)
	}
	return pdfPath, nil
}
