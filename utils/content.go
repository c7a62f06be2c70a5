package utils

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// MarkdownToHTML renders markdown (GFM) to HTML
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText lấy nội dung text từ HTML, bỏ script/style và gộp khoảng trắng
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Summarize cắt text còn tối đa n rune
func Summarize(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if n <= 0 || len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n]))
}

// CountWords đếm số từ: mỗi ký tự CJK là một từ, còn lại tách theo chữ/số liên tiếp
func CountWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana):
			count++
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if !inWord {
				count++
				inWord = true
			}
		default:
			inWord = false
		}
	}
	return count
}

// SanitizeFileName thay các ký tự không hợp lệ trong tên file bằng '_'
func SanitizeFileName(name string) string {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsControl(r) || strings.ContainsRune(`/\:*?"<>|`, r) {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}

	result := []rune(strings.Trim(sb.String(), ". "))
	if len(result) > 80 {
		result = result[:80]
	}
	if len(result) == 0 {
		return "untitled"
	}
	return string(result)
}
