package loader

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/rs/zerolog"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"

	"prompt-enhancer/internal/models"
)

// ErrUnsupportedFormat is returned for file extensions the loader does not
// handle.
var ErrUnsupportedFormat = errors.New("loader: unsupported file format")

// Loader reads supplementary knowledge documents from disk and extracts
// their plain text. Chunking is left to the caller.
type Loader struct {
	log zerolog.Logger
}

func New(logger zerolog.Logger) *Loader {
	return &Loader{log: logger}
}

// LoadFile extracts plain text from a single document. The document name is
// the file's base name without extension.
func (l *Loader) LoadFile(path string) (models.Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var (
		content string
		err     error
	)
	switch ext {
	case ".txt":
		content, err = loadText(path)
	case ".md", ".markdown":
		content, err = loadMarkdown(path)
	case ".pdf":
		content, err = loadPDF(path)
	case ".docx":
		content, err = loadDOCX(path)
	case ".pptx":
		content, err = loadPPTX(path)
	case ".xlsx":
		content, err = loadXLSX(path)
	case ".ods":
		content, err = loadODS(path)
	default:
		return models.Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to load %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	l.log.Debug().Str("file", path).Int("chars", len(content)).Msg("document loaded")
	return models.Document{Name: name, Content: strings.TrimSpace(content)}, nil
}

// LoadDir loads every supported document directly under dir. Unsupported
// files are skipped, not errors.
func (l *Loader) LoadDir(dir string) ([]models.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var docs []models.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		doc, err := l.LoadFile(filepath.Join(dir, entry.Name()))
		if errors.Is(err, ErrUnsupportedFormat) {
			l.log.Debug().Str("file", entry.Name()).Msg("skipping unsupported file")
			continue
		}
		if err != nil {
			return nil, err
		}
		if doc.Content != "" {
			docs = append(docs, doc)
		}
	}
	l.log.Info().Str("dir", dir).Int("documents", len(docs)).Msg("directory loaded")
	return docs, nil
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadPDF(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}
	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func loadDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer r.Close()
	return r.Editable().GetContent(), nil
}

func loadPPTX(path string) (string, error) {
	f, err := zip.OpenReader(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, file := range f.File {
		if !strings.HasPrefix(file.Name, "ppt/slides/slide") {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		b.WriteString(extractDrawingText(string(data)))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func loadXLSX(path string) (string, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, sheet := range f.Sheets {
		fmt.Fprintf(&b, "Sheet: %s\n", sheet.Name)
		for _, row := range sheet.Rows {
			for _, cell := range row.Cells {
				b.WriteString(cell.String())
				b.WriteString("\t")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func loadODS(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "Sheet: %s\n", sheetName)
		for _, row := range rows {
			for _, cell := range row {
				b.WriteString(cell)
				b.WriteString("\t")
			}
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

// extractDrawingText pulls the text runs out of a slide's drawing XML.
func extractDrawingText(xmlContent string) string {
	var b strings.Builder
	parts := strings.Split(xmlContent, "<a:t>")
	for i, part := range parts {
		if i == 0 {
			continue
		}
		if end := strings.Index(part, "</a:t>"); end >= 0 {
			b.WriteString(part[:end])
			b.WriteString(" ")
		}
	}
	return b.String()
}
