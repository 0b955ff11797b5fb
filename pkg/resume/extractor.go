// Package resume extracts plain text from uploaded resume documents.
package resume

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Media types accepted by the extractor. Anything else is rejected with
// ErrUnsupportedFormat.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeDoc  = "application/msword"
)

// ErrUnsupportedFormat is returned when the declared media type is not one of
// the supported resume formats. The offending type is attached via %w wrapping.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// Extractor dispatches on the client-declared media type and returns body text
// in reading order. A document with no extractable text yields an empty
// string, not an error.
type Extractor struct{}

func NewExtractor() *Extractor { return &Extractor{} }

func (Extractor) ExtractText(data []byte, mediaType string) (string, error) {
	switch mediaType {
	case MediaTypePDF:
		return extractPDFText(data)
	case MediaTypeDocx, MediaTypeDoc:
		// Legacy .doc goes through the same OOXML reader, best effort.
		return extractWordText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, mediaType)
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		b.WriteString(text)
	}
	return normalizeWhitespace(b.String()), nil
}

func extractWordText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()
	return stripWordMarkup(doc.Editable().GetContent()), nil
}

var (
	reTags   = regexp.MustCompile(`<[^>]+>`)
	reSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	reLines  = regexp.MustCompile(`\n+`)
)

// stripWordMarkup flattens document.xml into body text: paragraph boundaries
// become newlines, every other tag is dropped.
func stripWordMarkup(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	return normalizeWhitespace(reTags.ReplaceAllString(xml, " "))
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reLines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
