package responsive

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// desktopWidthThreshold is the attribute width, in pixels, at or above which
// a table or image is classified as authored for the fixed desktop layout.
const desktopWidthThreshold = 500

type styleOverride struct {
	property string
	value    string
}

var (
	fluidTableStyle = []styleOverride{
		{"width", "100%"},
		{"max-width", "100%"},
		{"min-width", "0"},
	}
	fluidImageStyle = []styleOverride{
		{"max-width", "100%"},
		{"width", "100%"},
		{"height", "auto"},
	}
	stackedCellStyle = []styleOverride{
		{"display", "block"},
		{"width", "100%"},
		{"padding-right", "0"},
	}
	blockButtonStyle = []styleOverride{
		{"display", "block"},
		{"width", "100%"},
		{"max-width", "100%"},
		{"box-sizing", "border-box"},
		{"text-align", "center"},
	}
	wrapTextStyle = []styleOverride{
		{"overflow-wrap", "anywhere"},
		{"word-break", "break-word"},
	}
)

// stackedCellSpacing replaces the horizontal gap between buttons once cells
// stack vertically.
const stackedCellSpacing = "12px"

// coerceTables rewrites every table classified as a desktop container to a
// fluid width. The width attribute is rewritten as well as the inline style
// because email renderers let the HTML attribute win over stylesheet rules.
func coerceTables(root *html.Node, handle *Handle) {
	for _, table := range elementsByAtom(root, atom.Table) {
		if !isDesktopContainer(table) {
			continue
		}
		handle.snapshot(table)
		setAttr(table, "width", "100%")
		forceStyles(table, fluidTableStyle)
	}
}

func isDesktopContainer(table *html.Node) bool {
	if width, ok := parseWidth(attrValue(table, "width")); ok && width >= desktopWidthThreshold {
		return true
	}
	if hasMaxWidth600(attrValue(table, "style")) {
		return true
	}
	return hasClass(table, containerMarkerClass)
}

// coerceImages forces any image authored at desktop width into fluid
// scaling.
func coerceImages(root *html.Node, handle *Handle) {
	for _, img := range elementsByAtom(root, atom.Img) {
		width, ok := parseWidth(attrValue(img, "width"))
		if !ok || width < desktopWidthThreshold {
			continue
		}
		handle.snapshot(img)
		forceStyles(img, fluidImageStyle)
	}
}

// flattenButtonRows stacks button-row cells into a single column. Gap cells
// resolve to their parent row so rows located through either marker flatten
// exactly once.
func flattenButtonRows(root *html.Node, handle *Handle) {
	seen := make(map[*html.Node]struct{})

	rows := elementsByClass(root, buttonRowMarkerClass)
	for _, gap := range elementsByClass(root, buttonGapMarkerClass) {
		row := closestAncestor(gap, func(n *html.Node) bool {
			return n.DataAtom == atom.Table || hasClass(n, buttonRowMarkerClass)
		})
		if row != nil {
			rows = append(rows, row)
		}
	}

	for _, row := range rows {
		if _, done := seen[row]; done {
			continue
		}
		seen[row] = struct{}{}
		flattenRowCells(row, handle)
	}
}

func flattenRowCells(row *html.Node, handle *Handle) {
	first := true
	for _, cell := range rowCells(row) {
		handle.snapshot(cell)
		overrides := stackedCellStyle
		if !first {
			overrides = append(append([]styleOverride(nil), stackedCellStyle...), styleOverride{"padding-top", stackedCellSpacing})
		}
		forceStyles(cell, overrides)
		first = false
	}
}

// rowCells collects the cell descendants belonging to this row container,
// excluding cells owned by a table nested deeper in the tree.
func rowCells(row *html.Node) []*html.Node {
	var cells []*html.Node
	walk(row, func(node *html.Node) {
		if node.Type != html.ElementNode || (node.DataAtom != atom.Td && node.DataAtom != atom.Th) {
			return
		}
		owner := closestAncestor(node, func(n *html.Node) bool {
			return n.DataAtom == atom.Table
		})
		if owner == nil || owner == row || !isWithin(owner, row) {
			cells = append(cells, node)
		}
	})
	return cells
}

func isWithin(node, root *html.Node) bool {
	for cursor := node; cursor != nil; cursor = cursor.Parent {
		if cursor == root {
			return true
		}
	}
	return false
}

// forceButtons blocks out primary/secondary buttons and enables word
// wrapping on headline text.
func forceButtons(root *html.Node, handle *Handle) {
	for _, class := range []string{buttonPrimaryMarkerClass, buttonSecondaryMarkerClass} {
		for _, button := range elementsByClass(root, class) {
			handle.snapshot(button)
			forceStyles(button, blockButtonStyle)
		}
	}
	for _, class := range []string{headlineMarkerClass, subheadlineMarkerClass} {
		for _, heading := range elementsByClass(root, class) {
			handle.snapshot(heading)
			forceStyles(heading, wrapTextStyle)
		}
	}
}

// forceStyles merges overrides into the node's inline style: original
// declarations keep their order, overridden properties take the forced value
// in place, and remaining overrides append in order. The output is
// deterministic so repeated passes produce byte-identical markup.
func forceStyles(node *html.Node, overrides []styleOverride) {
	existing := attrValue(node, "style")
	decls := parseInlineStyle(existing)

	var parts []string
	applied := make(map[string]bool, len(overrides))

	if decls == nil && strings.TrimSpace(existing) != "" {
		// Unparseable style: keep the raw text and append the forced
		// declarations after it.
		parts = append(parts, strings.TrimRight(strings.TrimSpace(existing), ";"))
	} else {
		for _, decl := range decls {
			property := strings.ToLower(strings.TrimSpace(decl.Property))
			if value, ok := overrideFor(overrides, property); ok {
				parts = append(parts, property+":"+value)
				applied[property] = true
				continue
			}
			parts = append(parts, property+":"+strings.TrimSpace(decl.Value))
		}
	}

	for _, override := range overrides {
		if applied[override.property] {
			continue
		}
		parts = append(parts, override.property+":"+override.value)
	}

	setAttr(node, "style", strings.Join(parts, ";"))
}

func overrideFor(overrides []styleOverride, property string) (string, bool) {
	for _, override := range overrides {
		if override.property == property {
			return override.value, true
		}
	}
	return "", false
}

// parseWidth parses a width attribute that may carry a px suffix.
func parseWidth(raw string) (int, bool) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "px"))
	if trimmed == "" {
		return 0, false
	}
	width, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return width, true
}
