package compile

import (
	"strings"

	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/schema"
	mailtemplate "github.com/goliatone/go-mailgen/pkg/template"
	"github.com/goliatone/go-mailgen/pkg/variables"
)

// resolveComponent produces the fully resolved value set for one component
// instance: defaults applied, variables substituted, conditional visibility
// evaluated on substituted values, repeatable groups expanded, and mobile
// overrides selected when compiling for the mobile context.
func resolveComponent(s schema.ComponentSchema, instance mailtemplate.ComponentInstance, vars variables.Map, mode render.Mode) render.ResolvedComponent {
	resolved := render.ResolvedComponent{
		TypeName: s.TypeName,
		Values:   make(map[string]string, len(s.Properties)),
	}

	for _, prop := range s.Properties {
		if prop.RepeatableGroupKey != "" {
			continue
		}
		resolved.Values[prop.Key] = propertyValue(s, instance, prop, vars, mode)
	}

	for _, group := range s.RepeatableGroups {
		items := expandGroup(s, instance, group, vars, mode)
		if len(items) == 0 {
			continue
		}
		if resolved.Items == nil {
			resolved.Items = make(map[string][]render.ResolvedItem, len(s.RepeatableGroups))
		}
		resolved.Items[group.Key] = items
	}

	return resolved
}

// propertyValue applies the full per-property rule set: effective value,
// substitution, mobile override, then conditional suppression.
func propertyValue(s schema.ComponentSchema, instance mailtemplate.ComponentInstance, prop schema.PropertyDefinition, vars variables.Map, mode render.Mode) string {
	value := effectiveValue(instance, prop, vars, mode)

	if prop.ConditionalOnKey != "" && !conditionSatisfied(s, instance, prop.ConditionalOnKey, vars, mode) {
		return ""
	}
	return value
}

// effectiveValue resolves a single property without conditional suppression:
// explicit non-empty value, else schema default, else empty; variables
// substituted in every branch. In the mobile context a non-empty substituted
// mobile-scoped value wins; on desktop mobile-scoped values are ignored
// entirely.
func effectiveValue(instance mailtemplate.ComponentInstance, prop schema.PropertyDefinition, vars variables.Map, mode render.Mode) string {
	if mode == render.ModeMobile && prop.ResponsiveEligible {
		override := variables.Resolve(instance.Value(schema.MobileKeyPrefix+prop.Key), vars)
		if strings.TrimSpace(override) != "" {
			return override
		}
	}

	raw := instance.Value(prop.Key)
	if raw == "" {
		raw = prop.Default
	}
	return variables.Resolve(raw, vars)
}

// conditionSatisfied evaluates the referenced key's substituted value. The
// source resolves with the same effective-value rule as any other property,
// so a variable-valued or responsive source behaves like a literal one. Empty
// string, "false" and "0" are falsy.
func conditionSatisfied(s schema.ComponentSchema, instance mailtemplate.ComponentInstance, sourceKey string, vars variables.Map, mode render.Mode) bool {
	var source string
	if prop, ok := s.Property(sourceKey); ok {
		source = effectiveValue(instance, prop, vars, mode)
	} else {
		source = variables.Resolve(instance.Value(sourceKey), vars)
	}
	return truthy(source)
}

func truthy(value string) bool {
	switch strings.TrimSpace(value) {
	case "", "false", "0":
		return false
	default:
		return true
	}
}

// expandGroup renders repeatable items in index order. An item materializes
// only when at least one member property at that index resolves non-empty;
// empty indices are skipped wherever they fall, so trailing all-empty indices
// never leave empty slots and indices remain independent rather than a
// contiguous prefix. Indices past MaxItems are never consulted.
func expandGroup(s schema.ComponentSchema, instance mailtemplate.ComponentInstance, group schema.RepeatableGroupDefinition, vars variables.Map, mode render.Mode) []render.ResolvedItem {
	var items []render.ResolvedItem
	for index := 1; index <= group.MaxItems; index++ {
		members := s.GroupMembers(group, index)
		if len(members) == 0 {
			continue
		}

		values := make(map[string]string, len(members))
		any := false
		for _, member := range members {
			value := propertyValue(s, instance, member, vars, mode)
			values[member.Key] = value
			if value != "" {
				any = true
			}
		}
		if !any {
			continue
		}
		items = append(items, render.ResolvedItem{Index: index, Values: values})
	}
	return items
}
