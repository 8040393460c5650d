package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// itemColumn is the canonical name for the item-name column. Source CSVs
// leave the first header cell blank.
const itemColumn = "Item"

// sentinel replaces missing cells so nutrient columns type as float with NaN
// for absent measurements.
const sentinel = "NaN"

// LoadError reports a dataset that could not be read or parsed.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// unitsRe strips parenthesized units and stray periods from header cells,
// e.g. "Carb. (g)" -> "Carb".
var unitsRe = regexp.MustCompile(`\s*\([^)]*\)|[.]`)

// Load reads a CSV file into a Dataset. It detects the text encoding,
// normalizes header names, and coerces missing cells ("-" or empty) to NaN.
// A missing, empty, or unparsable file yields a *LoadError.
func Load(name, path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read file", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &LoadError{Path: path, Reason: "file is empty"}
	}

	r := csv.NewReader(transform.NewReader(bytes.NewReader(raw), detectEncoding(raw).NewDecoder()))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "parse csv", Err: err}
	}
	if len(records) < 2 {
		return nil, &LoadError{Path: path, Reason: "no data rows"}
	}

	header := records[0]
	for i, h := range header {
		header[i] = NormalizeColumn(h)
	}
	if header[0] == "" {
		header[0] = itemColumn
	}

	types := map[string]series.Type{header[0]: series.String}
	for _, rec := range records[1:] {
		for i := 1; i < len(rec); i++ {
			if v := strings.TrimSpace(rec[i]); v == "" || v == "-" {
				rec[i] = sentinel
			}
		}
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(types),
	)
	if df.Err != nil {
		return nil, &LoadError{Path: path, Reason: "build dataframe", Err: df.Err}
	}
	return &Dataset{Name: name, df: df}, nil
}

// NormalizeColumn canonicalizes a column name: units and periods removed,
// whitespace trimmed, first letter upper-cased and the rest lowered, so that
// "fat", "Fat (g)" and " FAT " all resolve to "Fat". Shared with user input
// validation in filter mode.
func NormalizeColumn(name string) string {
	name = strings.TrimSpace(unitsRe.ReplaceAllString(name, ""))
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

// detectEncoding sniffs the character encoding of raw file bytes: BOM first,
// then UTF-8 validity, with Windows-1252 as the fallback for the Latin-1
// style bytes the drinks dataset ships with.
func detectEncoding(b []byte) encoding.Encoding {
	switch {
	case bytes.HasPrefix(b, []byte{0xEF, 0xBB, 0xBF}):
		return unicode.UTF8BOM
	case bytes.HasPrefix(b, []byte{0xFF, 0xFE}):
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case bytes.HasPrefix(b, []byte{0xFE, 0xFF}):
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case utf8.Valid(b):
		return unicode.UTF8
	default:
		return charmap.Windows1252
	}
}
