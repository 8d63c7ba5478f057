package csvio_test

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/ybdn/DoublonsIDPP/internal/csvio"
	"github.com/ybdn/DoublonsIDPP/internal/signalisation"
)

func TestReadParsesHeaderAndRecords(t *testing.T) {
	input := "NUMERO_SIGNALISATION,IDENTIFIANT_GASPARD\n123,GN456\n789,GN000\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(file.Header) != 2 || file.Header[0] != signalisation.ColSignalisation {
		t.Fatalf("unexpected header: %v", file.Header)
	}
	if len(file.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(file.Records))
	}
	if file.Records[0].Numero() != "123" || file.Records[1].IDPP() != "GN000" {
		t.Fatalf("unexpected record values: %v", file.Records[0].Values)
	}
	if file.Records[0].Index != 0 || file.Records[1].Index != 1 {
		t.Fatalf("indexes must follow row order: %d, %d", file.Records[0].Index, file.Records[1].Index)
	}
}

func TestReadSkipsCommentLines(t *testing.T) {
	input := "# Rapport généré automatiquement\n# Traitement effectué le 01/01/2024\n#\nNUMERO_SIGNALISATION\n123\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(file.Records) != 1 || file.Records[0].Numero() != "123" {
		t.Fatalf("comment lines leaked into the data: %+v", file.Records)
	}
}

func TestReadStripsBOM(t *testing.T) {
	input := "\uFEFFNUMERO_SIGNALISATION\n123\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if file.Header[0] != signalisation.ColSignalisation {
		t.Fatalf("BOM not stripped from header: %q", file.Header[0])
	}
}

func TestReadCustomSeparator(t *testing.T) {
	input := "NUMERO_SIGNALISATION;NOM\n123;DUPONT\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{Separator: ';'})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if file.Records[0].Field(signalisation.ColNom) != "DUPONT" {
		t.Fatalf("separator not honored: %v", file.Records[0].Values)
	}
}

func TestReadLatin1(t *testing.T) {
	// "LEFÈVRE" with È encoded as the single latin-1 byte 0xC8.
	input := "NOM\nLEF\xc8VRE\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{Encoding: "latin-1"})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got := file.Records[0].Field(signalisation.ColNom); got != "LEFÈVRE" {
		t.Fatalf("latin-1 decoding broken: %q", got)
	}
}

func TestReadWindows1252(t *testing.T) {
	// 0x92 is the windows-1252 right single quotation mark.
	input := "NOM\nD\x92ARC\n"
	file, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{Encoding: "windows-1252"})
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got := file.Records[0].Field(signalisation.ColNom); got != "D’ARC" {
		t.Fatalf("windows-1252 decoding broken: %q", got)
	}
}

func TestReadUnknownEncoding(t *testing.T) {
	_, err := csvio.Read(strings.NewReader("NOM\n"), csvio.ReadOptions{Encoding: "ebcdic"})
	if err == nil || !strings.Contains(err.Error(), "encodage non pris en charge") {
		t.Fatalf("expected an unsupported-encoding error, got %v", err)
	}
}

func TestReadEmptyStream(t *testing.T) {
	_, err := csvio.Read(strings.NewReader(""), csvio.ReadOptions{})
	if err == nil || !strings.Contains(err.Error(), "fichier vide") {
		t.Fatalf("expected an empty-file error, got %v", err)
	}
}

func TestReadRaggedRow(t *testing.T) {
	input := "NUMERO_SIGNALISATION,NOM\n123\n"
	_, err := csvio.Read(strings.NewReader(input), csvio.ReadOptions{})
	var parseErr *csv.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected a CSV parse error, got %v", err)
	}
}
