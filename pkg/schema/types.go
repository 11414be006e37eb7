package schema

// ValueType is the simplified enum for property value kinds. Every value is
// stored as a string regardless of logical type; renderers parse at the point
// of consumption.
type ValueType string

const (
	ValueTypeText       ValueType = "text"
	ValueTypeLongText   ValueType = "longText"
	ValueTypeColor      ValueType = "color"
	ValueTypeURL        ValueType = "url"
	ValueTypeImage      ValueType = "image"
	ValueTypeSelect     ValueType = "select"
	ValueTypeBoolean    ValueType = "boolean"
	ValueTypeNumber     ValueType = "number"
	ValueTypePadding    ValueType = "padding"
	ValueTypeRadius     ValueType = "radius"
	ValueTypeLengthUnit ValueType = "lengthUnit"
)

// ButtonSet distinguishes primary/secondary button property clusters so
// renderers and the responsive pass can target them independently.
type ButtonSet string

const (
	ButtonSetPrimary   ButtonSet = "primary"
	ButtonSetSecondary ButtonSet = "secondary"
)

// MobileKeyPrefix is the namespace prefix that scopes a property value to the
// mobile rendering context. A value stored under "mobile:headline" overrides
// "headline" when compiling for mobile and is ignored on desktop.
const MobileKeyPrefix = "mobile:"

// SelectOption is one entry in a select property's option list.
type SelectOption struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// PropertyDefinition describes a single editable property of a component
// type. Struct fields are annotated so catalogs can be serialised directly
// when needed.
type PropertyDefinition struct {
	Key                string         `json:"key" yaml:"key"`
	Label              string         `json:"label" yaml:"label"`
	Type               ValueType      `json:"type" yaml:"type"`
	Default            string         `json:"default,omitempty" yaml:"default,omitempty"`
	Options            []SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
	Group              string         `json:"group,omitempty" yaml:"group,omitempty"`
	Required           bool           `json:"required,omitempty" yaml:"required,omitempty"`
	Half               bool           `json:"half,omitempty" yaml:"half,omitempty"`
	RepeatableGroupKey string         `json:"repeatableGroupKey,omitempty" yaml:"repeatableGroupKey,omitempty"`
	Placeholder        string         `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	ConditionalOnKey   string         `json:"conditionalOnKey,omitempty" yaml:"conditionalOnKey,omitempty"`
	ButtonSet          ButtonSet      `json:"buttonSet,omitempty" yaml:"buttonSet,omitempty"`
	ResponsiveEligible bool           `json:"responsiveEligible,omitempty" yaml:"responsiveEligible,omitempty"`
	SeparatorBefore    bool           `json:"separatorBefore,omitempty" yaml:"separatorBefore,omitempty"`
}

// RepeatableGroupDefinition describes a bounded, indexed set of properties
// (e.g. up to four "features"). MemberKeyPatterns contain the IndexPlaceholder
// which expands to the 1-based item index.
type RepeatableGroupDefinition struct {
	Key               string   `json:"key" yaml:"key"`
	Label             string   `json:"label" yaml:"label"`
	MaxItems          int      `json:"maxItems" yaml:"maxItems"`
	MemberKeyPatterns []string `json:"memberKeyPatterns" yaml:"memberKeyPatterns"`
}

// IndexPlaceholder is the token inside a member key pattern replaced with the
// 1-based item index during repeatable group expansion.
const IndexPlaceholder = "{n}"

// ComponentSchema is the typed catalog entry for one component type. Schemas
// are owned by the Registry and treated as immutable after registration.
type ComponentSchema struct {
	TypeName         string                      `json:"typeName" yaml:"typeName"`
	DisplayLabel     string                      `json:"displayLabel" yaml:"displayLabel"`
	Properties       []PropertyDefinition        `json:"properties" yaml:"properties"`
	RepeatableGroups []RepeatableGroupDefinition `json:"repeatableGroups,omitempty" yaml:"repeatableGroups,omitempty"`
}

// Property returns the definition for key, if present.
func (s ComponentSchema) Property(key string) (PropertyDefinition, bool) {
	for _, prop := range s.Properties {
		if prop.Key == key {
			return prop, true
		}
	}
	return PropertyDefinition{}, false
}

// GroupMembers resolves the member property definitions for one index of a
// repeatable group, in pattern order. Patterns that expand to a key missing
// from the schema are skipped.
func (s ComponentSchema) GroupMembers(group RepeatableGroupDefinition, index int) []PropertyDefinition {
	members := make([]PropertyDefinition, 0, len(group.MemberKeyPatterns))
	for _, pattern := range group.MemberKeyPatterns {
		key := ExpandMemberKey(pattern, index)
		prop, ok := s.Property(key)
		if !ok || prop.RepeatableGroupKey != group.Key {
			continue
		}
		members = append(members, prop)
	}
	return members
}
