// Package diagnostic builds uniform diagnostic records and renders reports.
package diagnostic

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// Params carries every input of one diagnostic. Message and Response are derived.
type Params struct {
	Title             string
	Parent            string
	ParentID          string
	ParentArticleType string
	ParentLang        string
	Item              string
	SubItem           string
	ValidationType    jatsmeta.ValidationType
	IsValid           bool
	Expected          any
	Obtained          any
	Advice            string
	Data              any
	ErrorLevel        jatsmeta.Severity
}

// Format builds the diagnostic record. It performs no validation.
func Format(p Params) jatsmeta.Diagnostic {
	level := p.ErrorLevel
	if level == "" {
		level = jatsmeta.DefaultSeverity
	}
	d := jatsmeta.Diagnostic{
		Title:             p.Title,
		Parent:            p.Parent,
		ParentID:          p.ParentID,
		ParentArticleType: p.ParentArticleType,
		ParentLang:        p.ParentLang,
		Item:              p.Item,
		SubItem:           p.SubItem,
		ValidationType:    p.ValidationType,
		IsValid:           p.IsValid,
		Response:          string(level),
		Expected:          p.Expected,
		Obtained:          p.Obtained,
		Message:           fmt.Sprintf("Got %s, expected %s", Render(p.Obtained), Render(p.Expected)),
		Advice:            p.Advice,
		Data:              p.Data,
		ErrorLevel:        level,
	}
	if p.IsValid {
		d.Response = jatsmeta.ResponseOK
		d.Advice = ""
	}
	return d
}

// Render turns a compared value into message text. Absent values read "none".
func Render(v any) string {
	if v == nil {
		return "none"
	}
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return "[" + strings.Join(x, ", ") + "]"
	case fmt.Stringer:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "none"
		}
		return x.String()
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "none"
	}
	return fmt.Sprint(v)
}
