// Package render defines the contracts between the template compiler and the
// per-type markup renderers: the resolved component value set renderers
// consume, the rendering context they receive, and the registry they are
// looked up in.
package render

import (
	"bytes"
	"strconv"
	"strings"

	rendertemplate "github.com/goliatone/go-mailgen/pkg/render/template"
)

// Mode selects the rendering context a compile targets.
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeMobile  Mode = "mobile"
)

// Tokens carries resolved theme design tokens (colors, font stacks) keyed by
// dotted token name.
type Tokens map[string]string

// Get returns the token value, or fallback when the token is unset or blank.
func (t Tokens) Get(name, fallback string) string {
	if t == nil {
		return fallback
	}
	if value := strings.TrimSpace(t[name]); value != "" {
		return value
	}
	return fallback
}

// ResolvedItem is one expanded repeatable-group item: its 1-based index and
// the member values resolved for that index, keyed by the expanded member key.
type ResolvedItem struct {
	Index  int
	Values map[string]string
}

// ResolvedComponent is the fully resolved value set for one component
// instance: defaults applied, variables substituted, conditionals evaluated,
// responsive overrides selected. Renderers must not re-resolve anything.
type ResolvedComponent struct {
	TypeName string
	Values   map[string]string
	Items    map[string][]ResolvedItem
}

// Get returns the resolved value for key, or "" when absent.
func (c ResolvedComponent) Get(key string) string {
	if c.Values == nil {
		return ""
	}
	return c.Values[key]
}

// GetOr returns the resolved value for key, or fallback when empty.
func (c ResolvedComponent) GetOr(key, fallback string) string {
	if value := c.Get(key); value != "" {
		return value
	}
	return fallback
}

// Int parses the resolved value for key as an integer, returning fallback on
// absence or malformed input.
func (c ResolvedComponent) Int(key string, fallback int) int {
	raw := strings.TrimSpace(c.Get(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

// Context carries the rendering mode, theme tokens, and the template engine a
// component renderer may use.
type Context struct {
	Mode      Mode
	Theme     Tokens
	Templates rendertemplate.TemplateRenderer
}

// ComponentRenderer writes the markup fragment for one resolved component.
// Implementations receive a fully resolved value set and must emit fragments
// free of unresolved tokens.
type ComponentRenderer func(buf *bytes.Buffer, comp ResolvedComponent, rc Context) error
