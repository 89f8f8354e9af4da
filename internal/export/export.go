// Package export writes the rows the user currently sees (the filtered
// collection, not the raw source) to CSV or XLSX.
package export

import (
	"fmt"
	"reflect"
	"strings"
)

// headers derives column names from a row struct: the json tag base name
// when present, the field name otherwise. Nested structs, slices and maps
// are skipped; exports are flat tables.
func headers(t reflect.Type) ([]string, []int) {
	names := make([]string, 0, t.NumField())
	indices := make([]int, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !flatKind(f.Type) {
			continue
		}
		name := f.Name
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			name = tag
		}
		names = append(names, name)
		indices = append(indices, i)
	}
	return names, indices
}

// flatKind reports whether a field renders as a single cell
func flatKind(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// records flattens rows into string cells using the header field indices
func records[T any](rows []T, indices []int) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		v := reflect.ValueOf(row)
		record := make([]string, len(indices))
		for i, idx := range indices {
			record[i] = cell(v.Field(idx))
		}
		out = append(out, record)
	}
	return out
}

func cell(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return fmt.Sprintf("%t", v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

// Table derives the header row and data records for a row type
func Table[T any](rows []T) ([]string, [][]string) {
	var zero T
	names, indices := headers(reflect.TypeOf(zero))
	return names, records(rows, indices)
}
