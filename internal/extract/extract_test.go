package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestExtract_TxtFile(t *testing.T) {
	e := New()
	path := writeFile(t, "answer.txt", "x = 4\n")

	text, ok := e.Extract(t.Context(), path)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if text != "x = 4" {
		t.Errorf("text = %q", text)
	}
}

func TestExtract_EmptyTxtIsNoAnswer(t *testing.T) {
	e := New()
	path := writeFile(t, "answer.txt", "   \n\t\n")

	text, ok := e.Extract(t.Context(), path)
	if ok {
		t.Errorf("expected no answer, got %q", text)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	e := New()

	_, ok := e.Extract(t.Context(), filepath.Join(t.TempDir(), "nope.txt"))
	if ok {
		t.Error("expected extraction to fail for missing file")
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := New()
	path := writeFile(t, "answer.docx", "x = 4")

	_, ok := e.Extract(t.Context(), path)
	if ok {
		t.Error("expected unsupported format to yield no answer")
	}
}

func TestExtract_ImageWithoutTesseract(t *testing.T) {
	// Forced-missing tool: image extraction degrades to no answer.
	e := &Extractor{}
	path := writeFile(t, "answer.png", "not a real png")

	_, ok := e.Extract(t.Context(), path)
	if ok {
		t.Error("expected no answer without tesseract")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.txt", true},
		{"a.PNG", true},
		{"a.jpg", true},
		{"a.jpeg", true},
		{"a.pdf", true},
		{"a.docx", false},
		{"a", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.path); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
