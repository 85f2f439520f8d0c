// Package serialization converts CETools models to and from JSON and
// CSV files. CSV output flattens nested structures into dot-joined
// column names so a character fits on one row.
package serialization

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	cerrors "github.com/lgw4/cetools/internal/errors"
)

// Format identifies a serialization format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// ToJSON serializes a model (or slice of models) to indented JSON.
func ToJSON(obj any) ([]byte, error) {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return nil, cerrors.Wrap(err, "failed to serialize to JSON")
	}
	return data, nil
}

// FromJSON deserializes JSON into the given model pointer.
func FromJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return cerrors.Wrap(err, "failed to deserialize from JSON")
	}
	return nil
}

// ToCSV serializes models to CSV. The header row is the sorted union of
// flattened field names across all rows; missing cells are empty.
func ToCSV(objs ...any) (string, error) {
	if len(objs) == 0 {
		return "", nil
	}

	flattened := make([]map[string]any, 0, len(objs))
	fields := make(map[string]bool)

	for _, obj := range objs {
		m, err := toMap(obj)
		if err != nil {
			return "", err
		}
		flat := flatten(m, "")
		flattened = append(flattened, flat)
		for k := range flat {
			fields[k] = true
		}
	}

	header := make([]string, 0, len(fields))
	for k := range fields {
		header = append(header, k)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return "", cerrors.Wrap(err, "failed to write CSV header")
	}

	for _, flat := range flattened {
		row := make([]string, len(header))
		for i, field := range header {
			row[i] = formatCell(flat[field])
		}
		if err := w.Write(row); err != nil {
			return "", cerrors.Wrap(err, "failed to write CSV row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", cerrors.Wrap(err, "failed to serialize to CSV")
	}
	return buf.String(), nil
}

// FromCSV deserializes CSV content into out, which must be a pointer to
// a model or to a slice of models. Loading a multi-row file into a
// single model is an error.
func FromCSV(content string, out any) error {
	reader := csv.NewReader(strings.NewReader(content))
	records, err := reader.ReadAll()
	if err != nil {
		return cerrors.Wrap(err, "failed to parse CSV")
	}
	if len(records) < 2 {
		return cerrors.InvalidArgument("CSV content has no data rows")
	}

	header := records[0]
	rows := make([]map[string]any, 0, len(records)-1)
	for _, record := range records[1:] {
		flat := make(map[string]string, len(header))
		for i, field := range header {
			if i < len(record) && record[i] != "" {
				flat[field] = record[i]
			}
		}
		rows = append(rows, unflatten(flat))
	}

	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return cerrors.InvalidArgument("output must be a non-nil pointer")
	}

	if rv.Elem().Kind() == reflect.Slice {
		return decodeWeak(rows, out)
	}

	if len(rows) != 1 {
		return cerrors.InvalidArgumentf("expected a single CSV row, found %d", len(rows))
	}
	return decodeWeak(rows[0], out)
}

// SaveFile writes a model (or slice) to a file, creating parent
// directories. FormatAuto detects the format from the extension.
func SaveFile(obj any, path string, format Format) error {
	format, err := resolveFormat(path, format)
	if err != nil {
		return err
	}

	var content []byte
	switch format {
	case FormatJSON:
		content, err = ToJSON(obj)
	case FormatCSV:
		var s string
		s, err = ToCSV(expandSlice(obj)...)
		content = []byte(s)
	default:
		return cerrors.InvalidArgumentf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
			return cerrors.Wrapf(mkErr, "cannot create directory for %s", path)
		}
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return cerrors.Wrapf(err, "failed to save file %s", path)
	}
	return nil
}

// LoadFile reads a model (or slice) from a file. FormatAuto detects the
// format from the extension.
func LoadFile(path string, out any, format Format) error {
	format, err := resolveFormat(path, format)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cerrors.NotFoundf("file not found: %s", path)
		}
		return cerrors.Wrapf(err, "failed to read file %s", path)
	}

	switch format {
	case FormatJSON:
		return FromJSON(content, out)
	case FormatCSV:
		return FromCSV(string(content), out)
	default:
		return cerrors.InvalidArgumentf("unsupported format: %s", format)
	}
}

// formatCell renders one flattened value as CSV text. Missing fields
// become empty cells.
func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func resolveFormat(path string, format Format) (Format, error) {
	if format != FormatAuto && format != "" {
		return format, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", cerrors.InvalidArgumentf("cannot detect format for file: %s", path)
	}
}

// toMap round-trips a model through JSON to get a generic map, keeping
// integer values as json.Number so CSV cells print without exponents.
func toMap(obj any) (map[string]any, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, cerrors.Wrap(err, "failed to serialize model")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, cerrors.Wrap(err, "failed to decode model map")
	}
	return m, nil
}

// expandSlice turns a slice argument into its elements so each becomes
// one CSV row; anything else is a single row.
func expandSlice(obj any) []any {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice {
		return []any{obj}
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// decodeWeak maps generic row data onto a typed model, coercing string
// cells into numbers, booleans, and timestamps as the fields require.
func decodeWeak(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(", "),
		),
	})
	if err != nil {
		return cerrors.Wrap(err, "failed to build decoder")
	}
	if err := dec.Decode(input); err != nil {
		return cerrors.Wrap(err, "failed to decode CSV data")
	}
	return nil
}
