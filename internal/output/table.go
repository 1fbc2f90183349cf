package output

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

var timeType = reflect.TypeFor[time.Time]()

// tableEmitter prints scalars as they arrive and buffers structured values until Flush.
// Consecutive lists of the same element type, such as the pages of one list operation,
// end up in a single table.
type tableEmitter struct {
	w      io.Writer
	tables []*pendingTable
}

type pendingTable struct {
	elem   reflect.Type
	header []string
	rows   [][]string
}

func (e *tableEmitter) Emit(v any) error {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil
	}

	switch {
	case isScalar(rv.Type()):
		return e.println(cell(rv))

	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		elem := derefType(rv.Type().Elem())
		if elem.Kind() == reflect.Struct && elem != timeType && !isKeyValue(elem) {
			e.appendRows(elem, rv)
			return nil
		}
		if isKeyValue(elem) {
			e.tables = append(e.tables, keyValueTable(rv))
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := e.println(cell(rv.Index(i))); err != nil {
				return err
			}
		}
		return nil

	case rv.Kind() == reflect.Map:
		t := &pendingTable{header: []string{"Key", "Value"}}
		for _, k := range sortedKeys(rv) {
			t.rows = append(t.rows, []string{cell(k), cell(rv.MapIndex(k))})
		}
		e.tables = append(e.tables, t)
		return nil

	case rv.Kind() == reflect.Struct:
		t := &pendingTable{header: []string{"Property", "Value"}}
		for _, f := range exportedFields(rv.Type()) {
			t.rows = append(t.rows, []string{f.Name, cell(rv.FieldByIndex(f.Index))})
		}
		e.tables = append(e.tables, t)
		return nil
	}

	return e.println(fmt.Sprint(rv.Interface()))
}

func (e *tableEmitter) Flush() error {
	for i, t := range e.tables {
		if i > 0 {
			if err := e.println(""); err != nil {
				return err
			}
		}

		if len(t.rows) == 0 {
			if err := e.println("No items found"); err != nil {
				return err
			}
			continue
		}

		table := tablewriter.NewWriter(e.w)
		header := make([]any, len(t.header))
		for j, h := range t.header {
			header[j] = h
		}
		table.Header(header...)
		for _, row := range t.rows {
			if err := table.Append(row); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}
	e.tables = nil
	return nil
}

func (e *tableEmitter) println(s string) error {
	if _, err := io.WriteString(e.w, s+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (e *tableEmitter) appendRows(elem reflect.Type, list reflect.Value) {
	var t *pendingTable
	if n := len(e.tables); n > 0 && e.tables[n-1].elem == elem {
		t = e.tables[n-1]
	} else {
		t = &pendingTable{elem: elem}
		for _, f := range columns(elem) {
			t.header = append(t.header, f.Name)
		}
		e.tables = append(e.tables, t)
	}

	cols := columns(elem)
	for i := 0; i < list.Len(); i++ {
		item := indirect(list.Index(i))
		row := make([]string, len(cols))
		if item.IsValid() {
			for j, f := range cols {
				row[j] = cell(item.FieldByIndex(f.Index))
			}
		}
		t.rows = append(t.rows, row)
	}
}

func keyValueTable(list reflect.Value) *pendingTable {
	t := &pendingTable{header: []string{"Key", "Value"}}
	for i := 0; i < list.Len(); i++ {
		item := indirect(list.Index(i))
		if !item.IsValid() {
			continue
		}
		t.rows = append(t.rows, []string{
			cell(item.FieldByName("Key")),
			cell(item.FieldByName("Value")),
		})
	}
	return t
}

// columns picks the fields shown in list tables: scalars only, nested values are left to the
// json and yaml formats. A struct without scalar fields shows all of them.
func columns(t reflect.Type) []reflect.StructField {
	var cols []reflect.StructField
	fields := exportedFields(t)
	for _, f := range fields {
		if isScalar(derefType(f.Type)) {
			cols = append(cols, f)
		}
	}
	if len(cols) == 0 {
		return fields
	}
	return cols
}

func exportedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); f.IsExported() && !f.Anonymous {
			fields = append(fields, f)
		}
	}
	return fields
}

func isScalar(t reflect.Type) bool {
	if t == timeType {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// isKeyValue matches tag-like structs with Key and Value fields.
func isKeyValue(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	_, key := t.FieldByName("Key")
	_, value := t.FieldByName("Value")
	return key && value
}

func cell(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return ""
	}

	if v.Type() == timeType {
		return v.Interface().(time.Time).Format(time.RFC3339)
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)

	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			return ""
		}
		elem := derefType(v.Type().Elem())
		switch {
		case isScalar(elem):
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = cell(v.Index(i))
			}
			return strings.Join(parts, ", ")
		case isKeyValue(elem):
			parts := make([]string, 0, v.Len())
			for i := 0; i < v.Len(); i++ {
				if item := indirect(v.Index(i)); item.IsValid() {
					parts = append(parts, cell(item.FieldByName("Key"))+"="+cell(item.FieldByName("Value")))
				}
			}
			return strings.Join(parts, ", ")
		}
		return fmt.Sprintf("%d items", v.Len())

	case reflect.Map:
		keys := sortedKeys(v)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = cell(k) + "=" + cell(v.MapIndex(k))
		}
		return strings.Join(parts, ", ")

	case reflect.Struct:
		data, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprint(v.Interface())
		}
		return string(data)
	}

	return fmt.Sprint(v.Interface())
}

func sortedKeys(m reflect.Value) []reflect.Value {
	keys := m.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return cell(keys[i]) < cell(keys[j])
	})
	return keys
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
