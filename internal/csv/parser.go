package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kalij01/ecobank-report-codes/internal/columns"
	"github.com/kalij01/ecobank-report-codes/internal/models"

	"github.com/jszwec/csvutil"
)

var (
	ErrNoHeader          = errors.New("file has no header row")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

const bom = "\ufeff"

type Parser struct {
	filename string
}

func NewParser(filename string) *Parser {
	return &Parser{filename: filename}
}

// ParseSurvey loads the form export, resolves its columns and decodes one
// Response per data row. The format follows the file extension: .csv and
// .txt are comma separated, .tsv is tab separated, .xlsx reads the first sheet.
func (p *Parser) ParseSurvey() (*models.Survey, error) {
	switch ext := strings.ToLower(filepath.Ext(p.filename)); ext {
	case ".csv", ".txt", "":
		return p.parseDelimited(',')
	case ".tsv":
		return p.parseDelimited('\t')
	case ".xlsx":
		return p.parseWorkbook()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func (p *Parser) parseDelimited(comma rune) (*models.Survey, error) {
	file, err := os.Open(p.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = comma

	return Decode(reader, p.filename)
}

// Decode reads a header row from r, resolves it and decodes the remaining
// records.
func Decode(r csvutil.Reader, source string) (*models.Survey, error) {
	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	if len(headers) == 0 {
		return nil, ErrNoHeader
	}
	headers[0] = strings.TrimPrefix(headers[0], bom)

	res := columns.Resolve(headers)

	decoder, err := csvutil.NewDecoder(r, columns.DecodeHeader(headers, res)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV decoder: %w", err)
	}

	var responses []models.Response
	if err := decoder.Decode(&responses); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode CSV: %w", err)
	}

	return &models.Survey{
		Source:     source,
		Headers:    headers,
		Resolution: res,
		Responses:  responses,
	}, nil
}
