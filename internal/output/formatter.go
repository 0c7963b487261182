package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

type Formatter interface {
	Format(data any) (string, error)
}

// NewFormatter returns the formatter for "table" (default), "json" or "yaml".
func NewFormatter(format string) Formatter {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONFormatter{}
	case "yaml", "yml":
		return YAMLFormatter{}
	default:
		return TableFormatter{}
	}
}

// TableFormatter renders a slice of structs as aligned columns and a single
// struct as key/value rows. Column names come from the json tag when set.
type TableFormatter struct{}

func (TableFormatter) Format(data any) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice:
		if v.Len() == 0 {
			return "", nil
		}
		elem := v.Type().Elem()
		if elem.Kind() != reflect.Struct {
			for i := 0; i < v.Len(); i++ {
				fmt.Fprintln(w, v.Index(i).Interface())
			}
			break
		}
		headers := make([]string, elem.NumField())
		for i := range headers {
			headers[i] = strings.ToUpper(columnName(elem.Field(i)))
		}
		fmt.Fprintln(w, strings.Join(headers, "\t"))
		for i := 0; i < v.Len(); i++ {
			row := v.Index(i)
			cells := make([]string, row.NumField())
			for j := range cells {
				cells[j] = fmt.Sprintf("%v", row.Field(j).Interface())
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			fmt.Fprintf(w, "%s:\t%v\n", columnName(t.Field(i)), v.Field(i).Interface())
		}
	default:
		fmt.Fprintln(w, data)
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func columnName(f reflect.StructField) string {
	if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" && tag != "-" {
		return tag
	}
	return f.Name
}

type JSONFormatter struct{}

func (JSONFormatter) Format(data any) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("format json: %w", err)
	}
	return string(b) + "\n", nil
}

type YAMLFormatter struct{}

func (YAMLFormatter) Format(data any) (string, error) {
	b, err := yaml.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("format yaml: %w", err)
	}
	return string(b), nil
}
