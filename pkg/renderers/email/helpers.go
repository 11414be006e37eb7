package email

import (
	"html"
	"strings"
)

// styles joins "property:value" declarations, skipping entries with an empty
// value, into a single inline style attribute body.
func styles(decls ...[2]string) string {
	var builder strings.Builder
	for _, decl := range decls {
		value := strings.TrimSpace(decl[1])
		if value == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte(';')
		}
		builder.WriteString(decl[0])
		builder.WriteByte(':')
		builder.WriteString(value)
	}
	return builder.String()
}

func decl(property, value string) [2]string {
	return [2]string{property, value}
}

// writeAttr appends name="value" with attribute escaping. Empty values write
// nothing.
func writeAttr(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}

// px normalizes a numeric property value to a pixel length; values already
// carrying a unit pass through untouched.
func px(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	for _, r := range trimmed {
		if (r < '0' || r > '9') && r != '.' {
			return trimmed
		}
	}
	return trimmed + "px"
}

func esc(s string) string {
	return html.EscapeString(s)
}
