package tui

import (
	"strings"

	"github.com/MKhiriev/go-field-validator/internal/validators"
)

// RenderReport renders a result tree as plain text, one node per line,
// children indented under their parent:
//
//	[ERROR]
//	  [OK] name
//	  [ERROR] age
//	    [OK] age
//	    [ERROR] age: Value 12a should be a int8 number!
//
// A nil result renders as an empty string.
func RenderReport(result *validators.Result) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	writeReportNode(&b, result, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeReportNode(b *strings.Builder, r *validators.Result, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("[")
	b.WriteString(r.Status().String())
	b.WriteString("]")

	if f := r.Field(); f != nil {
		b.WriteString(" ")
		b.WriteString(f.Name())
	}
	if msg := r.Message(); msg != "" {
		if r.Field() != nil {
			b.WriteString(":")
		}
		b.WriteString(" ")
		b.WriteString(msg)
	}
	b.WriteString("\n")

	for _, child := range r.Children() {
		writeReportNode(b, child, depth+1)
	}
}
