// Package extract pulls answer text out of files the student hands in:
// plain text, images (OCR via tesseract) and PDFs (pdftotext, with an OCR
// fallback for scanned documents). Extraction is best-effort: any failure
// means "no answer provided", never a fatal error.
package extract

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Extractor extracts text from answer files using external tools when
// they are installed.
type Extractor struct {
	tesseract string // path to tesseract, empty when not installed
	pdftotext string // path to pdftotext, empty when not installed
	pdftoppm  string // path to pdftoppm, empty when not installed
}

// New creates an Extractor, detecting which external tools are available.
// Missing tools degrade the corresponding formats to "no answer".
func New() *Extractor {
	e := &Extractor{}
	if p, err := exec.LookPath("tesseract"); err == nil {
		e.tesseract = p
	}
	if p, err := exec.LookPath("pdftotext"); err == nil {
		e.pdftotext = p
	}
	if p, err := exec.LookPath("pdftoppm"); err == nil {
		e.pdftoppm = p
	}
	return e
}

// Supported reports whether the file extension is one Extract understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".png", ".jpg", ".jpeg", ".pdf":
		return true
	}
	return false
}

// Extract returns the text content of the file. The second return value is
// false when nothing could be extracted; callers treat that as an empty
// answer, not an error.
func (e *Extractor) Extract(ctx context.Context, path string) (string, bool) {
	if _, err := os.Stat(path); err != nil {
		return "", false
	}

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		text = e.fromTxt(path)
	case ".png", ".jpg", ".jpeg":
		text = e.fromImage(ctx, path)
	case ".pdf":
		text = e.fromPDF(ctx, path)
	default:
		return "", false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	return text, true
}

func (e *Extractor) fromTxt(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// fromImage runs tesseract with stdout output ("-" as the output base).
func (e *Extractor) fromImage(ctx context.Context, path string) string {
	if e.tesseract == "" {
		return ""
	}

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, e.tesseract, path, "-")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}
	return out.String()
}

// fromPDF tries the text layer first, then falls back to rasterizing the
// first pages and running OCR for scanned documents.
func (e *Extractor) fromPDF(ctx context.Context, path string) string {
	if e.pdftotext != "" {
		var out bytes.Buffer
		cmd := exec.CommandContext(ctx, e.pdftotext, "-layout", path, "-")
		cmd.Stdout = &out
		if err := cmd.Run(); err == nil && strings.TrimSpace(out.String()) != "" {
			return out.String()
		}
	}

	return e.ocrPDF(ctx, path)
}

func (e *Extractor) ocrPDF(ctx context.Context, path string) string {
	if e.pdftoppm == "" || e.tesseract == "" {
		return ""
	}

	tmp, err := os.MkdirTemp("", "mathcoach-ocr-")
	if err != nil {
		return ""
	}
	defer os.RemoveAll(tmp)

	// First 5 pages are plenty for a handed-in answer.
	base := filepath.Join(tmp, "page")
	cmd := exec.CommandContext(ctx, e.pdftoppm, "-png", "-r", "300", "-l", "5", path, base)
	if err := cmd.Run(); err != nil {
		return ""
	}

	pages, err := filepath.Glob(base + "*.png")
	if err != nil || len(pages) == 0 {
		return ""
	}

	var b strings.Builder
	for _, page := range pages {
		if text := e.fromImage(ctx, page); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String()
}
