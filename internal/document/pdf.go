package document

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	ledongthuc "github.com/ledongthuc/pdf"
	rscpdf "rsc.io/pdf"
)

// minMeaningfulLength is the number of extracted characters below which a
// parse result is considered garbage and the next extractor is tried.
const minMeaningfulLength = 100

// extractPDF pulls plain text out of the PDF at path. Two extractors are
// tried in order; scanned or image-only PDFs fail with ErrNoText.
func extractPDF(path string) (string, error) {
	text, primaryErr := extractWithLedongthuc(path)
	if primaryErr == nil && meaningful(text) {
		return text, nil
	}

	text, fallbackErr := extractWithRsc(path)
	if fallbackErr == nil && meaningful(text) {
		return text, nil
	}

	if primaryErr == nil && fallbackErr == nil {
		return "", ErrNoText
	}
	return "", errors.Join(primaryErr, fallbackErr)
}

// ErrNoText reports a PDF that parsed but yielded no meaningful text.
var ErrNoText = errors.New("could not extract meaningful text from pdf")

func meaningful(text string) bool {
	return len(strings.TrimSpace(text)) > minMeaningfulLength
}

func extractWithLedongthuc(path string) (text string, err error) {
	// The pdf packages panic on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	f, reader, err := ledongthuc.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}

func extractWithRsc(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf extraction panicked: %v", r)
		}
	}()

	reader, err := rscpdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, t := range page.Content().Text {
			builder.WriteString(t.S)
		}
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}
