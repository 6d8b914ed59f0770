package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

// bom makes spreadsheet apps read the file as UTF-8.
const bom = "\ufeff"

type Format string

const (
	FormatCSV Format = "csv"
	// FormatXLS is tab separated text that Excel opens directly.
	FormatXLS Format = "xls"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLS:
		return f, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
}

func (f Format) ContentType() string {
	if f == FormatXLS {
		return "application/vnd.ms-excel; charset=utf-8"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Extension() string {
	return "." + string(f)
}

// Write serializes the header line and rows. Cells holding the separator,
// a quote or a line break are quoted.
func Write(w io.Writer, f Format, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	switch f {
	case FormatCSV:
		cw.Comma = ','
	case FormatXLS:
		cw.Comma = '\t'
	default:
		return fmt.Errorf("%q: %w", f, ErrUnsupportedFormat)
	}
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
