// Package responsive rewrites compiled email markup so clients without CSS
// media-query support still display a usable single-column layout. The pass
// operates on a parsed document tree, never on the HTML string, because it
// needs structural queries string manipulation cannot do reliably.
//
// Callers own one Handle per tree: the mobile pass returns it, and passing it
// back in restores the pristine markup before anything is re-applied, so
// toggling between modes never accumulates stale forced styling.
package responsive

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/goliatone/go-mailgen/pkg/renderers/email"
)

// Mode selects the normalization state for one pass.
type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeMobile  Mode = "mobile"
)

// Marker classes shared with the markup renderers; see the email package for
// the authoring contract.
const (
	containerMarkerClass       = email.ClassEmailContainer
	buttonRowMarkerClass       = email.ClassButtonRow
	buttonGapMarkerClass       = email.ClassButtonGap
	buttonPrimaryMarkerClass   = email.ClassButtonPrimary
	buttonSecondaryMarkerClass = email.ClassButtonSecondary
	headlineMarkerClass        = email.ClassHeadline
	subheadlineMarkerClass     = email.ClassSubheadline
)

// mobileBreakpoint is the max-width condition value harvested from media
// rules and matched against inline max-width declarations.
const mobileBreakpoint = email.MobileBreakpoint

// Stable identifiers for the injected style blocks. Harvesting excludes them
// and re-application replaces them in place of accumulating duplicates.
const (
	forcedStyleID   = "mg-forced-mobile-styles"
	baselineStyleID = "mg-mobile-baseline-styles"
)

// baselineCSS is the fixed normalization block attached on every mobile
// pass, independent of the rules the source template ships.
const baselineCSS = `html, body { overflow-x: hidden !important; width: 100% !important; max-width: 100% !important; }
table, td, th { min-width: 0 !important; }
h1, h2, h3, h4, p, a, span, div, td, li { overflow-wrap: anywhere !important; word-break: break-word !important; }
.` + containerMarkerClass + ` { width: 100% !important; max-width: 100% !important; table-layout: fixed !important; }`

type attrSnapshot struct {
	node  *html.Node
	attrs []html.Attribute
}

// Handle records everything one mobile pass changed: the injected style
// elements and the pre-mutation attributes of every touched node. It is
// owned by the caller and scoped to a single tree.
type Handle struct {
	injected []*html.Node
	saved    []attrSnapshot
	seen     map[*html.Node]struct{}
}

func newHandle() *Handle {
	return &Handle{seen: make(map[*html.Node]struct{})}
}

// snapshot saves a node's attributes the first time the pass touches it.
func (h *Handle) snapshot(node *html.Node) {
	if h == nil || node == nil {
		return
	}
	if _, done := h.seen[node]; done {
		return
	}
	h.seen[node] = struct{}{}
	h.saved = append(h.saved, attrSnapshot{
		node:  node,
		attrs: append([]html.Attribute(nil), node.Attr...),
	})
}

// restore detaches the injected style blocks and puts every touched node's
// attributes back, returning the tree to its pre-normalization state.
func (h *Handle) restore() {
	if h == nil {
		return
	}
	for _, style := range h.injected {
		detach(style)
	}
	for _, snap := range h.saved {
		snap.node.Attr = append([]html.Attribute(nil), snap.attrs...)
	}
	h.injected = nil
	h.saved = nil
	h.seen = make(map[*html.Node]struct{})
}

// Apply runs the normalization pass over the tree for the requested mode.
//
// Pass the handle returned by the previous Apply on the same tree (nil for
// the first call). A mobile pass restores any prior forced styling before
// re-applying, so repeated application converges; a desktop pass restores
// and returns nil. Every step tolerates missing structure (no head, no
// stylesheets, zero matching elements) by doing nothing for that step.
func Apply(doc *html.Node, mode Mode, handle *Handle) *Handle {
	if doc == nil {
		return nil
	}

	handle.restore()
	detachInjectedStyles(doc)

	if mode != ModeMobile {
		return nil
	}

	fresh := newHandle()

	rules := harvestMobileRules(doc)
	if attach := styleAttachPoint(doc); attach != nil {
		if len(rules) > 0 {
			forced := newStyleElement(forcedStyleID, strings.Join(rules, "\n"))
			attach.AppendChild(forced)
			fresh.injected = append(fresh.injected, forced)
		}
		baseline := newStyleElement(baselineStyleID, baselineCSS)
		attach.AppendChild(baseline)
		fresh.injected = append(fresh.injected, baseline)
	}

	coerceTables(doc, fresh)
	coerceImages(doc, fresh)
	flattenButtonRows(doc, fresh)
	forceButtons(doc, fresh)

	return fresh
}

// detachInjectedStyles removes any forced/baseline block left over from a
// pass whose handle the caller lost, keyed by the stable ids. The handle path
// already detaches its own blocks; this keeps re-application on a string
// round trip from stacking duplicates.
func detachInjectedStyles(root *html.Node) {
	for _, style := range elementsByAtom(root, atom.Style) {
		if isInjectedStyle(style) {
			detach(style)
		}
	}
}

// NormalizeHTML parses a compiled document, applies the pass for the given
// mode, and re-serializes. Convenience for callers holding strings rather
// than a live tree; tree-holding callers should use Apply so toggling can
// restore.
func NormalizeHTML(compiled string, mode Mode) (string, error) {
	doc, err := html.Parse(strings.NewReader(compiled))
	if err != nil {
		return "", err
	}

	Apply(doc, mode, nil)

	var builder strings.Builder
	if err := html.Render(&builder, doc); err != nil {
		return "", err
	}
	return builder.String(), nil
}
