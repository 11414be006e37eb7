package responsive

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/gorilla/css/scanner"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mobileCondition matches a "narrow viewport" media condition: max-width
// followed by the breakpoint, case-insensitive, whitespace-tolerant around
// the colon.
var mobileCondition = regexp.MustCompile(`(?i)max-width\s*:\s*` + regexp.QuoteMeta(mobileBreakpoint))

// harvestMobileRules collects the textual form of every rule nested inside a
// mobile-breakpoint media rule, in source order, across every introspectable
// style element in the tree. No deduplication: later rules legitimately
// override earlier ones by cascade. Style blocks injected by a previous
// normalization pass are excluded so the synthesized block never feeds back
// into itself.
func harvestMobileRules(root *html.Node) []string {
	var rules []string
	for _, style := range elementsByAtom(root, atom.Style) {
		if isInjectedStyle(style) {
			continue
		}
		sheet, err := parser.Parse(textContent(style))
		if err != nil {
			// Uninspectable stylesheet: skip, not an error.
			continue
		}
		rules = append(rules, mobileRulesIn(sheet.Rules)...)
	}
	return rules
}

func mobileRulesIn(topLevel []*css.Rule) []string {
	var out []string
	for _, rule := range topLevel {
		if rule.Kind != css.AtRule || !strings.EqualFold(rule.Name, "@media") {
			continue
		}
		if !mobileCondition.MatchString(rule.Prelude) {
			continue
		}
		for _, nested := range rule.Rules {
			text := nested.String()
			if strings.TrimSpace(text) == "" || unsafeRuleText(text) {
				continue
			}
			out = append(out, text)
		}
	}
	return out
}

// unsafeRuleText scans rule text for constructs that must not be replayed
// into a forced stylesheet: IE expression() bindings, behavior properties,
// and javascript: URLs.
func unsafeRuleText(text string) bool {
	s := scanner.New(text)
	for {
		token := s.Next()
		switch token.Type {
		case scanner.TokenEOF, scanner.TokenError:
			return false
		case scanner.TokenFunction:
			if strings.HasPrefix(strings.ToLower(token.Value), "expression") {
				return true
			}
		case scanner.TokenURI:
			if strings.Contains(strings.ToLower(token.Value), "javascript:") {
				return true
			}
		case scanner.TokenIdent:
			if strings.EqualFold(token.Value, "behavior") {
				return true
			}
		}
	}
}

func isInjectedStyle(style *html.Node) bool {
	switch attrValue(style, "id") {
	case forcedStyleID, baselineStyleID:
		return true
	}
	return false
}

// parseInlineStyle decodes an inline style attribute into declarations.
// Malformed input yields nil rather than an error; the caller treats that as
// "no declarations to inspect".
func parseInlineStyle(style string) []*css.Declaration {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil
	}
	return decls
}

// hasMaxWidth600 reports whether the inline style carries a max-width
// declaration of 600px. Whitespace inside the value is ignored, so the
// spaced-unit form "600 px" classifies the same as "600px".
func hasMaxWidth600(style string) bool {
	for _, decl := range parseInlineStyle(style) {
		value := strings.Join(strings.Fields(decl.Value), "")
		if strings.EqualFold(strings.TrimSpace(decl.Property), "max-width") &&
			strings.EqualFold(value, mobileBreakpoint) {
			return true
		}
	}
	return false
}
