package email

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want to
// use the built-in document shell out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
