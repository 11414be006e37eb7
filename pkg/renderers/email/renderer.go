// Package email renders resolved components into email-client-safe table
// markup and wraps the concatenated fragments in a self-contained document
// shell (inline styles plus one <style> block carrying the mobile media
// query, no external references).
package email

import (
	"bytes"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/goliatone/go-mailgen/pkg/render"
	rendertemplate "github.com/goliatone/go-mailgen/pkg/render/template"
	gotemplate "github.com/goliatone/go-mailgen/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	registry         *render.Registry
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithComponentRegistry injects a custom component renderer registry.
func WithComponentRegistry(registry *render.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTemplatesFS supplies an alternate shell template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer turns resolved components into fragments and fragments into a
// complete document.
type Renderer struct {
	registry  *render.Registry
	templates rendertemplate.TemplateRenderer
}

// New constructs the email renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = DefaultComponentRegistry()
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("email renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{registry: cfg.registry, templates: renderer}, nil
}

// Registry exposes the component renderer registry so callers can register
// custom component types.
func (r *Renderer) Registry() *render.Registry {
	return r.registry
}

// Fragment renders the markup fragment for one resolved component. The second
// return is false when no renderer is registered for the component type; the
// compiler treats that as an instruction to omit the instance.
func (r *Renderer) Fragment(comp render.ResolvedComponent, rc render.Context) (string, bool, error) {
	renderer, ok := r.registry.Get(comp.TypeName)
	if !ok {
		return "", false, nil
	}
	if rc.Templates == nil {
		rc.Templates = r.templates
	}

	var buf bytes.Buffer
	if err := renderer(&buf, comp, rc); err != nil {
		return "", true, fmt.Errorf("email renderer: render component %q: %w", comp.TypeName, err)
	}
	return buf.String(), true, nil
}

// ShellData carries everything the document shell template needs.
type ShellData struct {
	Title     string
	Preheader string
	Body      string
	Theme     render.Tokens
}

// Shell wraps the concatenated component fragments in the document shell.
func (r *Renderer) Shell(data ShellData) (string, error) {
	if r.templates == nil {
		return "", fmt.Errorf("email renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/shell.tmpl", map[string]any{
		"title":      data.Title,
		"preheader":  data.Preheader,
		"body":       data.Body,
		"width":      strconv.Itoa(ContainerWidth),
		"breakpoint": MobileBreakpoint,
		"background": data.Theme.Get(tokenBackground, defaultBackground),
		"surface":    data.Theme.Get(tokenSurface, defaultSurface),
		"text":       data.Theme.Get(tokenText, defaultText),
		"accent":     data.Theme.Get(tokenAccent, defaultAccent),
		"font":       data.Theme.Get(tokenFont, defaultFont),
	})
	if err != nil {
		return "", fmt.Errorf("email renderer: render shell: %w", err)
	}
	return result, nil
}
