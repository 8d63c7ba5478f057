package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

// ReadOptions controls input decoding.
type ReadOptions struct {
	// Encoding names the input charset: "utf-8" (default), "latin-1" or
	// "windows-1252".
	Encoding string
	// Separator overrides the comma field separator when non-zero.
	Separator rune
}

// File is a parsed signalisation file: the header in input order plus one
// record per data row.
type File struct {
	Header  []string
	Records []*signalisation.Record
}

// ReadFile loads and parses a signalisation CSV from disk.
func ReadFile(path string, opts ReadOptions) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du fichier: %w", err)
	}
	defer f.Close()
	file, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", path, err)
	}
	return file, nil
}

// Read parses a signalisation CSV stream. Every row must have as many
// fields as the header; the first row is the header.
func Read(r io.Reader, opts ReadOptions) (*File, error) {
	decoder, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if decoder != nil {
		r = transform.NewReader(r, decoder)
	}

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	if opts.Separator != 0 {
		cr.Comma = opts.Separator
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("analyse CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("fichier vide: aucune ligne d'en-tête")
	}

	header := make([]string, len(rows[0]))
	for i, col := range rows[0] {
		header[i] = strings.TrimSpace(stripBOM(col))
	}

	file := &File{Header: header}
	for i, row := range rows[1:] {
		values := make(map[string]string, len(header))
		for j, col := range header {
			values[col] = row[j]
		}
		file.Records = append(file.Records, &signalisation.Record{
			Index:   i,
			Columns: header,
			Values:  values,
		})
	}
	return file, nil
}

func decoderFor(name string) (transform.Transformer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("encodage non pris en charge: %q", name)
	}
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
