package compile_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-mailgen/pkg/compile"
	"github.com/goliatone/go-mailgen/pkg/render"
	"github.com/goliatone/go-mailgen/pkg/template"
	"github.com/goliatone/go-mailgen/pkg/variables"
)

func compileDocument(t *testing.T, doc template.Document, vars variables.Map, mode render.Mode) string {
	t.Helper()

	compiler := compile.New()
	html, err := compiler.Compile(context.Background(), compile.Request{
		Document:  doc,
		Variables: vars,
		Mode:      mode,
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	return html
}

func TestCompileProducesSelfContainedDocument(t *testing.T) {
	doc := template.Document{
		Subject: "Welcome, {{contact.firstName}}",
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{
				"headline": "Hello {{contact.firstName}}",
			}},
			{TypeName: "footer"},
		},
	}
	vars := variables.Map{
		"contact.firstName":     "Sam",
		"account.companyName":   "Acme",
		"account.address":       "1 Main St",
		"system.unsubscribeUrl": "https://example.com/u/1",
	}

	html := compileDocument(t, doc, vars, render.ModeDesktop)

	if !strings.Contains(html, "<title>Welcome, Sam</title>") {
		t.Fatalf("expected substituted subject as title, got:\n%s", html)
	}
	if !strings.Contains(html, "Hello Sam") {
		t.Fatalf("expected substituted headline, got:\n%s", html)
	}
	if !strings.Contains(html, "mg-email-container") {
		t.Fatalf("expected container marker class, got:\n%s", html)
	}
	if !strings.Contains(html, "Acme") || !strings.Contains(html, "https://example.com/u/1") {
		t.Fatalf("expected footer defaults to resolve from variables, got:\n%s", html)
	}
	if strings.Contains(html, "{{") {
		t.Fatalf("expected no unresolved tokens in output, got:\n%s", html)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	doc := template.Document{
		Subject: "Hi",
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{"headline": "Hello"}},
			{TypeName: "features", PropertyValues: map[string]string{
				"feature1Title": "One",
				"feature3Title": "Three",
			}},
			{TypeName: "footer"},
		},
	}

	first := compileDocument(t, doc, nil, render.ModeDesktop)
	for i := 0; i < 5; i++ {
		if got := compileDocument(t, doc, nil, render.ModeDesktop); got != first {
			t.Fatalf("expected identical output across compiles, diverged on run %d", i)
		}
	}
}

func TestCompileSkipsUnknownComponentTypes(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{"headline": "Kept"}},
			{TypeName: "carousel", PropertyValues: map[string]string{"headline": "Dropped"}},
			{TypeName: "text", PropertyValues: map[string]string{"bodyText": "Still here"}},
		},
	}

	html := compileDocument(t, doc, nil, render.ModeDesktop)

	if !strings.Contains(html, "Kept") || !strings.Contains(html, "Still here") {
		t.Fatalf("expected known components to render, got:\n%s", html)
	}
	if strings.Contains(html, "Dropped") {
		t.Fatalf("expected unknown component to be omitted, got:\n%s", html)
	}
}

func TestCompileRejectsInvalidDocument(t *testing.T) {
	compiler := compile.New()

	_, err := compiler.Compile(context.Background(), compile.Request{
		Document: template.Document{},
	})
	if !errors.Is(err, template.ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument, got %v", err)
	}
}

func TestCompileHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	compiler := compile.New()
	_, err := compiler.Compile(ctx, compile.Request{
		Document: template.Document{Instances: []template.ComponentInstance{}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCompileTitleOverridesSubject(t *testing.T) {
	doc := template.Document{
		Subject:   "Subject line",
		Instances: []template.ComponentInstance{},
	}

	compiler := compile.New()
	html, err := compiler.Compile(context.Background(), compile.Request{
		Document: doc,
		Title:    "Preview",
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if !strings.Contains(html, "<title>Preview</title>") {
		t.Fatalf("expected explicit title to win, got:\n%s", html)
	}
}

func TestCompileConditionalSuppression(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "buttonRow", PropertyValues: map[string]string{
				"primaryButtonText":  "Go",
				"primaryButtonUrl":   "https://example.com/go",
				"secondaryButtonUrl": "https://example.com/hidden",
			}},
		},
	}

	html := compileDocument(t, doc, nil, render.ModeDesktop)

	if !strings.Contains(html, "https://example.com/go") {
		t.Fatalf("expected primary URL to render, got:\n%s", html)
	}
	if strings.Contains(html, "https://example.com/hidden") {
		t.Fatalf("expected secondary URL suppressed while its label is empty, got:\n%s", html)
	}
}

func TestCompileConditionalFalsyValues(t *testing.T) {
	for _, falsy := range []string{"", "false", "0"} {
		doc := template.Document{
			Instances: []template.ComponentInstance{
				{TypeName: "testimonial", PropertyValues: map[string]string{
					"quote":            "Great product",
					"attribution":      falsy,
					"attributionTitle": "CEO",
				}},
			},
		}

		html := compileDocument(t, doc, nil, render.ModeDesktop)
		if strings.Contains(html, "CEO") {
			t.Fatalf("expected attribution title suppressed for source %q, got:\n%s", falsy, html)
		}
	}
}

func TestCompileConditionalSourceResolvesVariables(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "buttonRow", PropertyValues: map[string]string{
				"primaryButtonText": "{{cta.label}}",
				"primaryButtonUrl":  "https://example.com/cta",
			}},
		},
	}

	withLabel := compileDocument(t, doc, variables.Map{"cta.label": "Buy now"}, render.ModeDesktop)
	if !strings.Contains(withLabel, "https://example.com/cta") {
		t.Fatalf("expected URL rendered when label variable resolves, got:\n%s", withLabel)
	}

	withoutLabel := compileDocument(t, doc, nil, render.ModeDesktop)
	if strings.Contains(withoutLabel, "https://example.com/cta") {
		t.Fatalf("expected URL suppressed when label variable is unresolved, got:\n%s", withoutLabel)
	}
}

func TestCompileRepeatableGroupBounds(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "features", PropertyValues: map[string]string{
				"feature1Title": "First",
				"feature4Title": "Fourth",
				"feature5Title": "Beyond the cap",
			}},
		},
	}

	html := compileDocument(t, doc, nil, render.ModeDesktop)

	if !strings.Contains(html, "First") || !strings.Contains(html, "Fourth") {
		t.Fatalf("expected in-range items to render, got:\n%s", html)
	}
	if strings.Contains(html, "Beyond the cap") {
		t.Fatalf("expected index past maxItems to be ignored, got:\n%s", html)
	}
}

func TestCompileRepeatableItemsAreIndependent(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "features", PropertyValues: map[string]string{
				"feature2Body": "Only the middle item has content",
			}},
		},
	}

	html := compileDocument(t, doc, nil, render.ModeDesktop)
	if !strings.Contains(html, "Only the middle item has content") {
		t.Fatalf("expected item 2 to render without item 1, got:\n%s", html)
	}
}

func TestCompileMobileOverride(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{
				"headline":        "Long desktop headline",
				"mobile:headline": "Short",
			}},
		},
	}

	desktop := compileDocument(t, doc, nil, render.ModeDesktop)
	if !strings.Contains(desktop, "Long desktop headline") || strings.Contains(desktop, ">Short<") {
		t.Fatalf("expected desktop compile to ignore the mobile override, got:\n%s", desktop)
	}

	mobile := compileDocument(t, doc, nil, render.ModeMobile)
	if !strings.Contains(mobile, "Short") || strings.Contains(mobile, "Long desktop headline") {
		t.Fatalf("expected mobile compile to use the override, got:\n%s", mobile)
	}
}

func TestCompileMobileOverrideFallsBackWhenEmpty(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{
				"headline":        "Shared headline",
				"mobile:headline": "{{missing.var}}",
			}},
		},
	}

	mobile := compileDocument(t, doc, nil, render.ModeMobile)
	if !strings.Contains(mobile, "Shared headline") {
		t.Fatalf("expected fallback to base value when override resolves empty, got:\n%s", mobile)
	}
}

func TestCompileMobileOverrideRequiresEligibility(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{
				"bodyText":        "Base body",
				"mobile:bodyText": "Mobile body",
			}},
		},
	}

	mobile := compileDocument(t, doc, nil, render.ModeMobile)
	if strings.Contains(mobile, "Mobile body") {
		t.Fatalf("expected override ignored for non-eligible property, got:\n%s", mobile)
	}
	if !strings.Contains(mobile, "Base body") {
		t.Fatalf("expected base value to render, got:\n%s", mobile)
	}
}

func TestCompileThemeTokensReachShellAndFragments(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "hero", PropertyValues: map[string]string{
				"headline":   "Hi",
				"buttonText": "Go",
			}},
		},
	}

	compiler := compile.New(compile.WithThemeTokens(render.Tokens{
		"email.accent": "#ff3366",
	}))
	html, err := compiler.Compile(context.Background(), compile.Request{Document: doc})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	if !strings.Contains(html, "#ff3366") {
		t.Fatalf("expected accent token in output, got:\n%s", html)
	}
}

func TestCompileDefaultsApplied(t *testing.T) {
	doc := template.Document{
		Instances: []template.ComponentInstance{
			{TypeName: "text", PropertyValues: map[string]string{"bodyText": "Copy"}},
		},
	}

	html := compileDocument(t, doc, nil, render.ModeDesktop)
	if !strings.Contains(html, "font-size:16px") {
		t.Fatalf("expected schema default font size, got:\n%s", html)
	}
}
