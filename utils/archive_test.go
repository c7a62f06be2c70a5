package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func buildZip(t *testing.T, entries []ArchiveEntry) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteZip(&buf, entries); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}
	return buf.Bytes()
}

func TestReadZip_FiltersEntries(t *testing.T) {
	data := buildZip(t, []ArchiveEntry{
		{Name: "posts/first.md", Body: []byte("# First")},
		{Name: "posts/second.HTML", Body: []byte("<p>Second</p>")},
		{Name: "posts/.hidden.md", Body: []byte("hidden")},
		{Name: "__MACOSX/posts/first.md", Body: []byte("junk")},
		{Name: "image.png", Body: []byte{0x89, 0x50}},
		{Name: "big.md", Body: bytes.Repeat([]byte("a"), 64)},
	})

	entries, skipped, err := ReadZip(bytes.NewReader(data), int64(len(data)), ReadZipOptions{
		MaxFileSize: 32,
		Extensions:  []string{".md", ".html"},
	})
	if err != nil {
		t.Fatalf("ReadZip: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "posts/first.md" || string(entries[0].Body) != "# First" {
		t.Errorf("Unexpected first entry %+v", entries[0])
	}
	if entries[1].Name != "posts/second.HTML" {
		t.Errorf("Expected extension match to be case-insensitive, got %q", entries[1].Name)
	}

	reasons := map[string]string{}
	for _, s := range skipped {
		reasons[s.Name] = s.Reason
	}
	expected := map[string]string{
		"posts/.hidden.md":        "hidden",
		"__MACOSX/posts/first.md": "hidden",
		"image.png":               "extension",
		"big.md":                  "too_large",
	}
	for name, reason := range expected {
		if reasons[name] != reason {
			t.Errorf("Expected %s to be skipped as %q, got %q", name, reason, reasons[name])
		}
	}
}

func TestReadZip_MaxFiles(t *testing.T) {
	data := buildZip(t, []ArchiveEntry{
		{Name: "a.md", Body: []byte("a")},
		{Name: "b.md", Body: []byte("b")},
		{Name: "c.md", Body: []byte("c")},
	})

	entries, skipped, err := ReadZip(bytes.NewReader(data), int64(len(data)), ReadZipOptions{MaxFiles: 2})
	if err != nil {
		t.Fatalf("ReadZip: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}
	if len(skipped) != 1 || skipped[0].Reason != "too_many_files" {
		t.Errorf("Expected c.md skipped as too_many_files, got %+v", skipped)
	}
}

func TestReadZip_NotAZip(t *testing.T) {
	data := []byte("definitely not a zip archive")
	if _, _, err := ReadZip(bytes.NewReader(data), int64(len(data)), ReadZipOptions{}); err == nil {
		t.Errorf("Expected error for invalid archive")
	}
}

func TestWriteZipFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "out.zip")
	if err := WriteZipFile(filePath, []ArchiveEntry{{Name: "x.md", Body: []byte("x")}}); err != nil {
		t.Fatalf("WriteZipFile: %v", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		t.Fatalf("read archive: %v", err)
	}
	entries, _, err := ReadZip(bytes.NewReader(data), int64(len(data)), ReadZipOptions{})
	if err != nil {
		t.Fatalf("ReadZip: %v", err)
	}
	if len(entries) != 1 || !strings.HasSuffix(entries[0].Name, "x.md") {
		t.Errorf("Unexpected entries %+v", entries)
	}
}

func TestWriteZipFile_BadDir(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "missing", "out.zip")
	if err := WriteZipFile(filePath, nil); err == nil {
		t.Errorf("Expected error for missing directory")
	}
}
