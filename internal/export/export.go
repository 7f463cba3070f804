// Package export writes lexicon entries to Markdown files and optionally converts them to PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

type Result struct {
	MarkdownPath string
	// PDFPath is empty unless a PDF was requested.
	PDFPath string
}

// WriteEntry writes the markdown to markdownPath, creating its parent directory,
// and converts it to a PDF next to it when withPDF is set.
func WriteEntry(markdownPath string, markdown string, withPDF bool) (Result, error) {
	if filepath.Ext(markdownPath) != ".md" {
		return Result{}, fmt.Errorf("output file must have .md extension: %s", markdownPath)
	}
	if dir := filepath.Dir(markdownPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Result{}, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(markdownPath, []byte(markdown), 0644); err != nil {
		return Result{}, fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	result := Result{MarkdownPath: markdownPath}
	if !withPDF {
		return result, nil
	}
	pdfPath, err := ConvertMarkdownToPDF(markdownPath)
	if err != nil {
		return result, fmt.Errorf("ConvertMarkdownToPDF > %w", err)
	}
	result.PDFPath = pdfPath
	return result, nil
}

// ConvertMarkdownToPDF converts a markdown file to a PDF in the same directory
// and returns the absolute path of the PDF.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
