// Package tabular serializa registros clave/valor a CSV en memoria.
package tabular

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Field par clave/valor de un registro.
type Field struct {
	Key   string
	Value any
}

// Record lista ordenada de campos.
type Record []Field

// Get devuelve el valor de la clave y si estaba presente.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// ToCSV arma el CSV: cabecera con las claves del primer registro y una fila por registro en
// ese mismo orden de claves. Sin registros devuelve "". Líneas unidas con "\n", sin salto final.
func ToCSV(records []Record) string {
	if len(records) == 0 {
		return ""
	}
	header := make([]string, 0, len(records[0]))
	for _, f := range records[0] {
		header = append(header, f.Key)
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, key := range header {
			v, _ := rec.Get(key)
			row[i] = formatValue(v)
		}
		lines = append(lines, joinEscaped(row))
	}
	return strings.Join(lines, "\n")
}

func joinEscaped(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = escape(c)
	}
	return strings.Join(escaped, ",")
}

// escape entrecomilla si hay coma, comilla o salto de línea; las comillas internas se duplican.
func escape(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatValue: nil y punteros nulos de cualquier tipo son campo vacío; los demás punteros
// se formatean por su valor.
func formatValue(v any) string {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return formatValue(rv.Elem().Interface())
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// EncodeWindows1252 convierte el CSV a Windows-1252 para planillas que no abren UTF-8.
// Un carácter sin equivalente es un error.
func EncodeWindows1252(csv string) ([]byte, error) {
	out, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(csv))
	if err != nil {
		return nil, fmt.Errorf("tabular: codificar windows-1252: %w", err)
	}
	return out, nil
}
