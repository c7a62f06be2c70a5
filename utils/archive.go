package utils

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ArchiveEntry là một file trong archive zip
type ArchiveEntry struct {
	Name string
	Body []byte
}

// WriteZipFile ghi các entry ra file zip tại filePath
// File dở dang bị xóa nếu có lỗi.
func WriteZipFile(filePath string, entries []ArchiveEntry) (err error) {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(filePath)
		}
	}()

	return WriteZip(f, entries)
}

// WriteZip ghi các entry vào w theo định dạng zip (deflate)
func WriteZip(w io.Writer, entries []ArchiveEntry) error {
	zw := zip.NewWriter(w)
	for _, e := range entries {
		fw, err := zw.Create(e.Name)
		if err != nil {
			return err
		}
		if _, err := fw.Write(e.Body); err != nil {
			return err
		}
	}
	return zw.Close()
}

// ReadZipOptions giới hạn khi đọc archive do người dùng upload
type ReadZipOptions struct {
	MaxFiles    int      // 0 = không giới hạn
	MaxFileSize int64    // 0 = không giới hạn
	Extensions  []string // chỉ nhận các đuôi này (lowercase, có dấu chấm); rỗng = mọi đuôi
}

// SkippedEntry là entry bị bỏ qua khi đọc zip kèm lý do
type SkippedEntry struct {
	Name   string
	Reason string
}

// ReadZip đọc các file hợp lệ trong archive
// Thư mục, file ẩn, file sai đuôi hoặc quá lớn bị bỏ qua và trả về trong skipped.
func ReadZip(r io.ReaderAt, size int64, opts ReadZipOptions) (entries []ArchiveEntry, skipped []SkippedEntry, err error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, nil, err
	}

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		base := path.Base(f.Name)
		if strings.HasPrefix(base, ".") || strings.HasPrefix(f.Name, "__MACOSX/") {
			skipped = append(skipped, SkippedEntry{Name: f.Name, Reason: "hidden"})
			continue
		}
		if !hasExtension(base, opts.Extensions) {
			skipped = append(skipped, SkippedEntry{Name: f.Name, Reason: "extension"})
			continue
		}
		if opts.MaxFileSize > 0 && f.UncompressedSize64 > uint64(opts.MaxFileSize) {
			skipped = append(skipped, SkippedEntry{Name: f.Name, Reason: "too_large"})
			continue
		}
		if opts.MaxFiles > 0 && len(entries) >= opts.MaxFiles {
			skipped = append(skipped, SkippedEntry{Name: f.Name, Reason: "too_many_files"})
			continue
		}

		body, err := readZipFile(f, opts.MaxFileSize)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		entries = append(entries, ArchiveEntry{Name: f.Name, Body: body})
	}

	return entries, skipped, nil
}

func readZipFile(f *zip.File, maxSize int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var reader io.Reader = rc
	if maxSize > 0 {
		// Header có thể khai báo sai kích thước
		reader = io.LimitReader(rc, maxSize+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && int64(len(body)) > maxSize {
		return nil, fmt.Errorf("entry exceeds %d bytes", maxSize)
	}
	return body, nil
}

func hasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(path.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
