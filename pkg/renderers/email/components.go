package email

import (
	"bytes"
	"strings"

	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/schema"
)

// Theme token names the built-in renderers consult, with their fallbacks.
const (
	tokenBackground = "email.background"
	tokenSurface    = "email.surface"
	tokenText       = "email.text"
	tokenAccent     = "email.accent"
	tokenFont       = "email.font"
)

const (
	defaultBackground = "#f1f5f9"
	defaultSurface    = "#ffffff"
	defaultText       = "#1e293b"
	defaultAccent     = "#2563eb"
	defaultFont       = "Helvetica, Arial, sans-serif"
)

// DefaultComponentRegistry constructs a registry pre-populated with the
// built-in component markup renderers. Every fragment is a <tr> row emitted
// into the email container table.
func DefaultComponentRegistry() *render.Registry {
	registry := render.NewRegistry()

	registry.MustRegister("header", renderHeader)
	registry.MustRegister("hero", renderHero)
	registry.MustRegister("text", renderText)
	registry.MustRegister("image", renderImage)
	registry.MustRegister("buttonRow", renderButtonRow)
	registry.MustRegister("features", renderFeatures)
	registry.MustRegister("testimonial", renderTestimonial)
	registry.MustRegister("divider", renderDivider)
	registry.MustRegister("footer", renderFooter)

	return registry
}

func renderHeader(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	var builder strings.Builder

	openRow(&builder, comp.GetOr("padding", "24px 24px"), comp.GetOr("align", "center"), comp.Get("backgroundColor"))

	if src := comp.Get("logoUrl"); src != "" {
		builder.WriteString(`<img`)
		writeAttr(&builder, "src", src)
		writeAttr(&builder, "alt", comp.Get("logoAlt"))
		writeAttr(&builder, "width", comp.GetOr("logoWidth", "160"))
		writeAttr(&builder, "style", styles(
			decl("display", "inline-block"),
			decl("max-width", "100%"),
			decl("height", "auto"),
			decl("border", "0"),
		))
		builder.WriteString(`>`)
	} else if alt := comp.Get("logoAlt"); alt != "" {
		builder.WriteString(`<span style="font-size:20px;font-weight:bold;color:`)
		builder.WriteString(esc(rc.Theme.Get(tokenText, defaultText)))
		builder.WriteString(`">`)
		builder.WriteString(esc(alt))
		builder.WriteString(`</span>`)
	}

	closeRow(&builder)
	buf.WriteString(builder.String())
	return nil
}

func renderHero(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	var builder strings.Builder

	align := comp.GetOr("align", "center")
	textColor := comp.GetOr("textColor", rc.Theme.Get(tokenText, defaultText))

	openRow(&builder, comp.GetOr("padding", "40px 24px"), align, comp.Get("backgroundColor"))

	if headline := comp.Get("headline"); headline != "" {
		builder.WriteString(`<h1 class="` + ClassHeadline + `"`)
		writeAttr(&builder, "style", styles(
			decl("margin", "0 0 12px"),
			decl("font-size", "32px"),
			decl("line-height", "1.2"),
			decl("color", textColor),
		))
		builder.WriteString(`>`)
		builder.WriteString(esc(headline))
		builder.WriteString(`</h1>`)
	}

	if subheadline := comp.Get("subheadline"); subheadline != "" {
		builder.WriteString(`<h2 class="` + ClassSubheadline + `"`)
		writeAttr(&builder, "style", styles(
			decl("margin", "0 0 16px"),
			decl("font-size", "20px"),
			decl("font-weight", "normal"),
			decl("line-height", "1.35"),
			decl("color", textColor),
		))
		builder.WriteString(`>`)
		builder.WriteString(esc(subheadline))
		builder.WriteString(`</h2>`)
	}

	if body := sanitizeRichText(comp.Get("bodyText")); body != "" {
		builder.WriteString(`<div`)
		writeAttr(&builder, "style", styles(
			decl("font-size", "16px"),
			decl("line-height", "1.5"),
			decl("color", textColor),
		))
		builder.WriteString(`>`)
		builder.WriteString(body)
		builder.WriteString(`</div>`)
	}

	if src := comp.Get("imageUrl"); src != "" {
		builder.WriteString(`<img`)
		writeAttr(&builder, "src", src)
		writeAttr(&builder, "alt", comp.Get("imageAlt"))
		writeAttr(&builder, "width", "552")
		writeAttr(&builder, "style", styles(
			decl("display", "block"),
			decl("width", "100%"),
			decl("max-width", "552px"),
			decl("height", "auto"),
			decl("margin", "16px auto 0"),
			decl("border", "0"),
		))
		builder.WriteString(`>`)
	}

	if text := comp.Get("buttonText"); text != "" {
		builder.WriteString(`<div style="margin-top:24px">`)
		writeButton(&builder, ClassButtonPrimary, text, comp.Get("buttonUrl"),
			rc.Theme.Get(tokenAccent, defaultAccent), "#ffffff", "4px")
		builder.WriteString(`</div>`)
	}

	closeRow(&builder)
	buf.WriteString(builder.String())
	return nil
}

func renderText(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	body := sanitizeRichText(comp.Get("bodyText"))
	if body == "" {
		return nil
	}

	var builder strings.Builder

	openRow(&builder, comp.GetOr("padding", "16px 24px"), comp.GetOr("align", "left"), "")
	builder.WriteString(`<div`)
	writeAttr(&builder, "style", styles(
		decl("font-size", px(comp.GetOr("fontSize", "16"))),
		decl("line-height", comp.GetOr("lineHeight", "1.5")),
		decl("color", comp.GetOr("textColor", rc.Theme.Get(tokenText, defaultText))),
	))
	builder.WriteString(`>`)
	builder.WriteString(body)
	builder.WriteString(`</div>`)
	closeRow(&builder)

	buf.WriteString(builder.String())
	return nil
}

func renderImage(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	src := comp.Get("imageUrl")
	if src == "" {
		return nil
	}

	var builder strings.Builder

	openRow(&builder, comp.GetOr("padding", "0"), "center", "")

	link := comp.Get("linkUrl")
	if link != "" {
		builder.WriteString(`<a`)
		writeAttr(&builder, "href", link)
		builder.WriteString(`>`)
	}

	width := comp.GetOr("width", "600")
	builder.WriteString(`<img`)
	writeAttr(&builder, "src", src)
	writeAttr(&builder, "alt", comp.Get("imageAlt"))
	writeAttr(&builder, "width", width)
	writeAttr(&builder, "style", styles(
		decl("display", "block"),
		decl("width", "100%"),
		decl("max-width", px(width)),
		decl("height", "auto"),
		decl("margin", "0 auto"),
		decl("border", "0"),
		decl("border-radius", comp.Get("radius")),
	))
	builder.WriteString(`>`)

	if link != "" {
		builder.WriteString(`</a>`)
	}

	if caption := comp.Get("caption"); caption != "" {
		builder.WriteString(`<p`)
		writeAttr(&builder, "style", styles(
			decl("margin", "8px 0 0"),
			decl("font-size", "13px"),
			decl("color", rc.Theme.Get(tokenText, defaultText)),
		))
		builder.WriteString(`>`)
		builder.WriteString(esc(caption))
		builder.WriteString(`</p>`)
	}

	closeRow(&builder)
	buf.WriteString(builder.String())
	return nil
}

func renderButtonRow(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	primaryText := comp.Get("primaryButtonText")
	secondaryText := comp.Get("secondaryButtonText")
	if primaryText == "" && secondaryText == "" {
		return nil
	}

	var builder strings.Builder

	radius := comp.GetOr("radius", "4px")
	align := comp.GetOr("align", "center")

	openRow(&builder, comp.GetOr("padding", "24px 24px"), align, "")

	builder.WriteString(`<table class="` + ClassButtonRow + `" cellpadding="0" cellspacing="0" role="presentation"`)
	writeAttr(&builder, "align", align)
	builder.WriteString(`><tr>`)

	if primaryText != "" {
		builder.WriteString(`<td`)
		writeAttr(&builder, "style", styles(decl("padding-right", "8px")))
		builder.WriteString(`>`)
		writeButton(&builder, ClassButtonPrimary, primaryText, comp.Get("primaryButtonUrl"),
			comp.GetOr("primaryColor", rc.Theme.Get(tokenAccent, defaultAccent)),
			comp.GetOr("primaryTextColor", "#ffffff"), radius)
		builder.WriteString(`</td>`)
	}

	if primaryText != "" && secondaryText != "" {
		builder.WriteString(`<td class="` + ClassButtonGap + `" width="8" style="width:8px">&nbsp;</td>`)
	}

	if secondaryText != "" {
		builder.WriteString(`<td>`)
		writeButton(&builder, ClassButtonSecondary, secondaryText, comp.Get("secondaryButtonUrl"),
			comp.GetOr("secondaryColor", "transparent"),
			comp.GetOr("secondaryTextColor", rc.Theme.Get(tokenAccent, defaultAccent)), radius)
		builder.WriteString(`</td>`)
	}

	builder.WriteString(`</tr></table>`)
	closeRow(&builder)

	buf.WriteString(builder.String())
	return nil
}

func renderFeatures(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	items := comp.Items["features"]
	heading := comp.Get("heading")
	if heading == "" && len(items) == 0 {
		return nil
	}

	var builder strings.Builder

	textColor := rc.Theme.Get(tokenText, defaultText)

	openRow(&builder, comp.GetOr("padding", "24px 24px"), comp.GetOr("align", "left"), "")

	if heading != "" {
		builder.WriteString(`<h2 class="` + ClassSubheadline + `"`)
		writeAttr(&builder, "style", styles(
			decl("margin", "0 0 16px"),
			decl("font-size", "22px"),
			decl("color", textColor),
		))
		builder.WriteString(`>`)
		builder.WriteString(esc(heading))
		builder.WriteString(`</h2>`)
	}

	for _, item := range items {
		title := item.Values[featureKey("feature{n}Title", item.Index)]
		body := sanitizeRichText(item.Values[featureKey("feature{n}Body", item.Index)])
		icon := item.Values[featureKey("feature{n}IconUrl", item.Index)]

		builder.WriteString(`<table width="100%" cellpadding="0" cellspacing="0" role="presentation"><tr>`)
		if icon != "" {
			builder.WriteString(`<td width="40" valign="top" style="width:40px;padding:8px 12px 8px 0"><img`)
			writeAttr(&builder, "src", icon)
			writeAttr(&builder, "alt", "")
			writeAttr(&builder, "width", "40")
			writeAttr(&builder, "style", styles(
				decl("display", "block"),
				decl("height", "auto"),
				decl("border", "0"),
			))
			builder.WriteString(`></td>`)
		}
		builder.WriteString(`<td valign="top" style="padding:8px 0">`)
		if title != "" {
			builder.WriteString(`<strong style="color:` + esc(textColor) + `">`)
			builder.WriteString(esc(title))
			builder.WriteString(`</strong>`)
		}
		if body != "" {
			builder.WriteString(`<div style="font-size:14px;line-height:1.5;color:` + esc(textColor) + `">`)
			builder.WriteString(body)
			builder.WriteString(`</div>`)
		}
		builder.WriteString(`</td></tr></table>`)
	}

	closeRow(&builder)
	buf.WriteString(builder.String())
	return nil
}

func renderTestimonial(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	quote := sanitizeRichText(comp.Get("quote"))
	if quote == "" {
		return nil
	}

	var builder strings.Builder

	textColor := rc.Theme.Get(tokenText, defaultText)

	openRow(&builder, comp.GetOr("padding", "32px 24px"), "center", comp.Get("backgroundColor"))

	builder.WriteString(`<blockquote`)
	writeAttr(&builder, "style", styles(
		decl("margin", "0"),
		decl("font-size", "18px"),
		decl("font-style", "italic"),
		decl("line-height", "1.5"),
		decl("color", textColor),
	))
	builder.WriteString(`>`)
	builder.WriteString(quote)
	builder.WriteString(`</blockquote>`)

	if avatar := comp.Get("avatarUrl"); avatar != "" {
		builder.WriteString(`<img`)
		writeAttr(&builder, "src", avatar)
		writeAttr(&builder, "alt", comp.Get("attribution"))
		writeAttr(&builder, "width", "48")
		writeAttr(&builder, "style", styles(
			decl("display", "inline-block"),
			decl("margin-top", "16px"),
			decl("border-radius", "50%"),
			decl("border", "0"),
		))
		builder.WriteString(`>`)
	}

	if attribution := comp.Get("attribution"); attribution != "" {
		builder.WriteString(`<div style="margin-top:8px;font-size:14px;font-weight:bold;color:` + esc(textColor) + `">`)
		builder.WriteString(esc(attribution))
		builder.WriteString(`</div>`)
		if title := comp.Get("attributionTitle"); title != "" {
			builder.WriteString(`<div style="font-size:13px;color:` + esc(textColor) + `">`)
			builder.WriteString(esc(title))
			builder.WriteString(`</div>`)
		}
	}

	closeRow(&builder)
	buf.WriteString(builder.String())
	return nil
}

func renderDivider(buf *bytes.Buffer, comp render.ResolvedComponent, _ render.Context) error {
	var builder strings.Builder

	spacing := px(comp.GetOr("spacing", "24"))

	builder.WriteString(`<tr><td`)
	writeAttr(&builder, "style", styles(
		decl("padding", spacing+" 24px"),
	))
	builder.WriteString(`>`)
	if comp.GetOr("style", "line") == "line" {
		builder.WriteString(`<hr`)
		writeAttr(&builder, "style", styles(
			decl("border", "none"),
			decl("border-top", "1px solid "+comp.GetOr("color", "#e2e8f0")),
			decl("margin", "0"),
		))
		builder.WriteString(`>`)
	} else {
		builder.WriteString(`&nbsp;`)
	}
	builder.WriteString(`</td></tr>`)

	buf.WriteString(builder.String())
	return nil
}

func renderFooter(buf *bytes.Buffer, comp render.ResolvedComponent, rc render.Context) error {
	var builder strings.Builder

	fontSize := px(comp.GetOr("fontSize", "12"))
	textColor := comp.GetOr("textColor", "#64748b")

	openRow(&builder, comp.GetOr("padding", "32px 24px"), "center", comp.Get("backgroundColor"))

	builder.WriteString(`<div`)
	writeAttr(&builder, "style", styles(
		decl("font-size", fontSize),
		decl("line-height", "1.6"),
		decl("color", textColor),
	))
	builder.WriteString(`>`)

	if company := comp.Get("companyName"); company != "" {
		builder.WriteString(`<div>`)
		builder.WriteString(esc(company))
		builder.WriteString(`</div>`)
	}
	if address := comp.Get("addressLine"); address != "" {
		builder.WriteString(`<div>`)
		builder.WriteString(esc(address))
		builder.WriteString(`</div>`)
	}
	if text := comp.Get("unsubscribeText"); text != "" {
		builder.WriteString(`<div style="margin-top:8px"><a`)
		writeAttr(&builder, "href", comp.Get("unsubscribeUrl"))
		writeAttr(&builder, "style", styles(
			decl("color", textColor),
			decl("text-decoration", "underline"),
		))
		builder.WriteString(`>`)
		builder.WriteString(esc(text))
		builder.WriteString(`</a></div>`)
	}

	builder.WriteString(`</div>`)
	closeRow(&builder)

	buf.WriteString(builder.String())
	return nil
}

// openRow starts a container-table row with the shared cell styling.
func openRow(builder *strings.Builder, padding, align, background string) {
	builder.WriteString(`<tr><td`)
	writeAttr(builder, "align", align)
	writeAttr(builder, "style", styles(
		decl("padding", padding),
		decl("text-align", align),
		decl("background-color", background),
	))
	builder.WriteString(`>`)
}

func closeRow(builder *strings.Builder) {
	builder.WriteString(`</td></tr>`)
}

func writeButton(builder *strings.Builder, class, text, href, background, color, radius string) {
	builder.WriteString(`<a class="`)
	builder.WriteString(class)
	builder.WriteString(`"`)
	writeAttr(builder, "href", href)
	writeAttr(builder, "style", styles(
		decl("display", "inline-block"),
		decl("padding", "12px 24px"),
		decl("font-size", "16px"),
		decl("font-weight", "bold"),
		decl("text-decoration", "none"),
		decl("background-color", background),
		decl("color", color),
		decl("border-radius", radius),
	))
	builder.WriteString(`>`)
	builder.WriteString(esc(text))
	builder.WriteString(`</a>`)
}

func featureKey(pattern string, index int) string {
	return schema.ExpandMemberKey(pattern, index)
}
