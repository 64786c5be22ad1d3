package resume

import (
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer

	"github.com/jmartin/jobmatch/internal/ingestion"
	"github.com/jmartin/jobmatch/internal/types"
)

// LoadPDF extracts the text of a PDF resume. The result carries raw text
// only; skills and experience are discovered from the text downstream.
func LoadPDF(path string) (*types.ResumeDocument, error) {
	text, err := ExtractPDFText(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to extract PDF text", Cause: err}
	}

	text = ingestion.CleanText(text)
	if text == "" {
		return nil, &LoadError{Path: path, Message: "PDF contains no extractable text"}
	}

	return &types.ResumeDocument{RawText: text}, nil
}

// ExtractPDFText concatenates the text of every page in the PDF.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", err
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
