package img2ascii

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, []string{"@@", ". "}); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if got := buf.String(); got != "@@\n. \n" {
		t.Errorf("Expected newline-terminated rows, got %q", got)
	}
}

func TestSaveText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := SaveText([]string{"制お", "ㅊ"}, path); err != nil {
		t.Fatalf("SaveText failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "制お\nㅊ\n" {
		t.Errorf("Unexpected file contents %q", data)
	}
}

func TestSaveTextUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := SaveText([]string{"x"}, path); !errors.Is(err, ErrWriterInit) {
		t.Errorf("Expected ErrWriterInit, got %v", err)
	}
}
