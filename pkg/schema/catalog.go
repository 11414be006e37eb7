package schema

// Built-in component catalog. These are the types the template editor offers
// out of the box; callers can register additional types on their own registry.

// DefaultRegistry constructs a registry pre-populated with the built-in email
// component types.
func DefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.MustRegister(headerSchema())
	registry.MustRegister(heroSchema())
	registry.MustRegister(textSchema())
	registry.MustRegister(imageSchema())
	registry.MustRegister(buttonRowSchema())
	registry.MustRegister(featuresSchema())
	registry.MustRegister(testimonialSchema())
	registry.MustRegister(dividerSchema())
	registry.MustRegister(footerSchema())

	return registry
}

func headerSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "header",
		DisplayLabel: "Header",
		Properties: []PropertyDefinition{
			{Key: "logoUrl", Label: "Logo URL", Type: ValueTypeImage, Placeholder: "https://..."},
			{Key: "logoAlt", Label: "Logo alt text", Type: ValueTypeText, Default: "Logo", Half: true},
			{Key: "logoWidth", Label: "Logo width", Type: ValueTypeNumber, Default: "160", Half: true},
			{Key: "align", Label: "Alignment", Type: ValueTypeSelect, Default: "center", Options: alignOptions(), Group: "layout"},
			{Key: "backgroundColor", Label: "Background", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "24px 24px", Group: "layout", Half: true},
		},
	}
}

func heroSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "hero",
		DisplayLabel: "Hero",
		Properties: []PropertyDefinition{
			{Key: "headline", Label: "Headline", Type: ValueTypeText, Required: true, ResponsiveEligible: true, Placeholder: "Welcome, {{contact.firstName}}"},
			{Key: "subheadline", Label: "Subheadline", Type: ValueTypeText, ResponsiveEligible: true},
			{Key: "bodyText", Label: "Body", Type: ValueTypeLongText},
			{Key: "imageUrl", Label: "Image URL", Type: ValueTypeImage, SeparatorBefore: true},
			{Key: "imageAlt", Label: "Image alt text", Type: ValueTypeText, ConditionalOnKey: "imageUrl"},
			{Key: "buttonText", Label: "Button text", Type: ValueTypeText, ButtonSet: ButtonSetPrimary, SeparatorBefore: true},
			{Key: "buttonUrl", Label: "Button URL", Type: ValueTypeURL, ConditionalOnKey: "buttonText", ButtonSet: ButtonSetPrimary},
			{Key: "align", Label: "Alignment", Type: ValueTypeSelect, Default: "center", Options: alignOptions(), Group: "layout"},
			{Key: "textColor", Label: "Text color", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "backgroundColor", Label: "Background", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "40px 24px", Group: "layout"},
		},
	}
}

func textSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "text",
		DisplayLabel: "Text",
		Properties: []PropertyDefinition{
			{Key: "bodyText", Label: "Body", Type: ValueTypeLongText, Required: true},
			{Key: "fontSize", Label: "Font size", Type: ValueTypeNumber, Default: "16", ResponsiveEligible: true, Half: true},
			{Key: "lineHeight", Label: "Line height", Type: ValueTypeLengthUnit, Default: "1.5", Half: true},
			{Key: "align", Label: "Alignment", Type: ValueTypeSelect, Default: "left", Options: alignOptions(), Group: "layout"},
			{Key: "textColor", Label: "Text color", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "16px 24px", Group: "layout", Half: true},
		},
	}
}

func imageSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "image",
		DisplayLabel: "Image",
		Properties: []PropertyDefinition{
			{Key: "imageUrl", Label: "Image URL", Type: ValueTypeImage, Required: true},
			{Key: "imageAlt", Label: "Alt text", Type: ValueTypeText},
			{Key: "linkUrl", Label: "Link URL", Type: ValueTypeURL},
			{Key: "width", Label: "Width", Type: ValueTypeNumber, Default: "600", Half: true},
			{Key: "radius", Label: "Corner radius", Type: ValueTypeRadius, Default: "0", Half: true},
			{Key: "caption", Label: "Caption", Type: ValueTypeText},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "0", Group: "layout"},
		},
	}
}

func buttonRowSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "buttonRow",
		DisplayLabel: "Buttons",
		Properties: []PropertyDefinition{
			{Key: "primaryButtonText", Label: "Primary label", Type: ValueTypeText, Required: true, Default: "Learn more", ButtonSet: ButtonSetPrimary},
			{Key: "primaryButtonUrl", Label: "Primary URL", Type: ValueTypeURL, ConditionalOnKey: "primaryButtonText", ButtonSet: ButtonSetPrimary},
			{Key: "primaryColor", Label: "Primary color", Type: ValueTypeColor, ButtonSet: ButtonSetPrimary, Half: true},
			{Key: "primaryTextColor", Label: "Primary text color", Type: ValueTypeColor, Default: "#ffffff", ButtonSet: ButtonSetPrimary, Half: true},
			{Key: "secondaryButtonText", Label: "Secondary label", Type: ValueTypeText, ButtonSet: ButtonSetSecondary, SeparatorBefore: true},
			{Key: "secondaryButtonUrl", Label: "Secondary URL", Type: ValueTypeURL, ConditionalOnKey: "secondaryButtonText", ButtonSet: ButtonSetSecondary},
			{Key: "secondaryColor", Label: "Secondary color", Type: ValueTypeColor, ButtonSet: ButtonSetSecondary, Half: true},
			{Key: "secondaryTextColor", Label: "Secondary text color", Type: ValueTypeColor, ButtonSet: ButtonSetSecondary, Half: true},
			{Key: "radius", Label: "Corner radius", Type: ValueTypeRadius, Default: "4px", Group: "layout", Half: true},
			{Key: "align", Label: "Alignment", Type: ValueTypeSelect, Default: "center", Options: alignOptions(), Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "24px 24px", Group: "layout"},
		},
	}
}

func featuresSchema() ComponentSchema {
	properties := []PropertyDefinition{
		{Key: "heading", Label: "Heading", Type: ValueTypeText, ResponsiveEligible: true},
		{Key: "align", Label: "Alignment", Type: ValueTypeSelect, Default: "left", Options: alignOptions(), Group: "layout"},
		{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "24px 24px", Group: "layout"},
	}
	for index := 1; index <= 4; index++ {
		for _, member := range []struct {
			pattern string
			label   string
			kind    ValueType
		}{
			{"feature{n}Title", "Feature title", ValueTypeText},
			{"feature{n}Body", "Feature body", ValueTypeLongText},
			{"feature{n}IconUrl", "Feature icon URL", ValueTypeImage},
		} {
			properties = append(properties, PropertyDefinition{
				Key:                ExpandMemberKey(member.pattern, index),
				Label:              member.label,
				Type:               member.kind,
				Group:              "features",
				RepeatableGroupKey: "features",
			})
		}
	}

	return ComponentSchema{
		TypeName:     "features",
		DisplayLabel: "Feature list",
		Properties:   properties,
		RepeatableGroups: []RepeatableGroupDefinition{
			{
				Key:      "features",
				Label:    "Features",
				MaxItems: 4,
				MemberKeyPatterns: []string{
					"feature{n}Title",
					"feature{n}Body",
					"feature{n}IconUrl",
				},
			},
		},
	}
}

func testimonialSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "testimonial",
		DisplayLabel: "Testimonial",
		Properties: []PropertyDefinition{
			{Key: "quote", Label: "Quote", Type: ValueTypeLongText, Required: true},
			{Key: "attribution", Label: "Attribution", Type: ValueTypeText},
			{Key: "attributionTitle", Label: "Attribution title", Type: ValueTypeText, ConditionalOnKey: "attribution"},
			{Key: "avatarUrl", Label: "Avatar URL", Type: ValueTypeImage},
			{Key: "backgroundColor", Label: "Background", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "32px 24px", Group: "layout", Half: true},
		},
	}
}

func dividerSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "divider",
		DisplayLabel: "Divider",
		Properties: []PropertyDefinition{
			{Key: "style", Label: "Style", Type: ValueTypeSelect, Default: "line", Options: []SelectOption{
				{Label: "Line", Value: "line"},
				{Label: "Space", Value: "space"},
			}},
			{Key: "color", Label: "Line color", Type: ValueTypeColor, Default: "#e2e8f0", Half: true},
			{Key: "spacing", Label: "Spacing", Type: ValueTypeNumber, Default: "24", Half: true},
		},
	}
}

func footerSchema() ComponentSchema {
	return ComponentSchema{
		TypeName:     "footer",
		DisplayLabel: "Footer",
		Properties: []PropertyDefinition{
			{Key: "companyName", Label: "Company name", Type: ValueTypeText, Default: "{{account.companyName}}"},
			{Key: "addressLine", Label: "Address", Type: ValueTypeText, Default: "{{account.address}}"},
			{Key: "unsubscribeText", Label: "Unsubscribe label", Type: ValueTypeText, Default: "Unsubscribe"},
			{Key: "unsubscribeUrl", Label: "Unsubscribe URL", Type: ValueTypeURL, Default: "{{system.unsubscribeUrl}}"},
			{Key: "fontSize", Label: "Font size", Type: ValueTypeNumber, Default: "12", Half: true},
			{Key: "textColor", Label: "Text color", Type: ValueTypeColor, Default: "#64748b", Half: true},
			{Key: "backgroundColor", Label: "Background", Type: ValueTypeColor, Group: "layout", Half: true},
			{Key: "padding", Label: "Padding", Type: ValueTypePadding, Default: "32px 24px", Group: "layout", Half: true},
		},
	}
}

func alignOptions() []SelectOption {
	return []SelectOption{
		{Label: "Left", Value: "left"},
		{Label: "Center", Value: "center"},
		{Label: "Right", Value: "right"},
	}
}
