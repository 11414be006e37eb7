// Package variables substitutes {{namespace.key}} tokens embedded in property
// values with concrete strings. Resolution is pure: identical inputs always
// produce identical output, and unresolved tokens collapse to the empty string
// rather than leaking template syntax into customer-facing markup.
package variables

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map holds resolved variables keyed by dotted path, e.g. "contact.fullName"
// or "custom_values.sales_phone". Values are plain strings, already safe for
// the destination context; the resolver substitutes them verbatim.
type Map map[string]string

var tokenPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_.-]+)+)\s*\}\}`)

// Resolve substitutes every token in raw using vars. Tokens without an entry
// become the empty string. Multiple tokens in one value are substituted
// independently; tokens may repeat.
func Resolve(raw string, vars Map) string {
	if raw == "" || !strings.Contains(raw, "{{") {
		return raw
	}
	return tokenPattern.ReplaceAllStringFunc(raw, func(match string) string {
		token := strings.TrimSpace(match[2 : len(match)-2])
		return vars[token]
	})
}

// Tokens returns the dotted paths referenced by raw, in order of appearance,
// without deduplication.
func Tokens(raw string) []string {
	matches := tokenPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		out = append(out, match[1])
	}
	return out
}

// Missing reports the tokens referenced by the given raw values that have no
// entry in vars, deduplicated in order of first appearance.
func Missing(vars Map, raws ...string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, raw := range raws {
		for _, token := range Tokens(raw) {
			if _, ok := vars[token]; ok {
				continue
			}
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}

// ParseMap decodes a variable map from YAML or JSON, flattening nested
// mappings into dotted paths. Scalar leaves are stringified; sequences and
// other non-scalar leaves violate the string-valued contract and error.
func ParseMap(data []byte) (Map, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("variables: parse map: %w", err)
	}
	out := make(Map)
	if err := flatten("", raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(prefix string, value any, dest Map) error {
	switch v := value.(type) {
	case map[string]any:
		for key, nested := range v {
			if err := flatten(joinPath(prefix, key), nested, dest); err != nil {
				return err
			}
		}
		return nil
	case string:
		dest[prefix] = v
		return nil
	case bool:
		dest[prefix] = strconv.FormatBool(v)
		return nil
	case int:
		dest[prefix] = strconv.Itoa(v)
		return nil
	case int64:
		dest[prefix] = strconv.FormatInt(v, 10)
		return nil
	case float64:
		dest[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
		return nil
	case nil:
		dest[prefix] = ""
		return nil
	default:
		return fmt.Errorf("variables: entry %q is not string-valued (%T)", prefix, value)
	}
}

func joinPath(parent, child string) string {
	parent = strings.TrimSpace(parent)
	child = strings.TrimSpace(child)
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}
