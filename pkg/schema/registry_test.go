package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mailgen/pkg/schema"
)

func TestRegisterAndGet(t *testing.T) {
	registry := schema.NewRegistry()

	err := registry.Register(schema.ComponentSchema{
		TypeName:     "banner",
		DisplayLabel: "Banner",
		Properties: []schema.PropertyDefinition{
			{Key: "message", Label: "Message", Type: schema.ValueTypeText},
		},
	})
	if err != nil {
		t.Fatalf("expected registration to succeed, got %v", err)
	}

	got, ok := registry.Get("banner")
	if !ok {
		t.Fatalf("expected banner schema to be registered")
	}
	if got.DisplayLabel != "Banner" {
		t.Fatalf("expected display label Banner, got %q", got.DisplayLabel)
	}
	if !registry.Has("banner") {
		t.Fatalf("expected Has to report banner")
	}
	if registry.Has("missing") {
		t.Fatalf("expected Has to reject unregistered type")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	registry := schema.NewRegistry()

	entry := schema.ComponentSchema{TypeName: "banner"}
	if err := registry.Register(entry); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	err := registry.Register(entry)
	if err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegisterRejectsEmptyTypeName(t *testing.T) {
	registry := schema.NewRegistry()

	if err := registry.Register(schema.ComponentSchema{TypeName: "  "}); err == nil {
		t.Fatalf("expected blank type name to be rejected")
	}
}

func TestRegisterValidatesRepeatableGroups(t *testing.T) {
	cases := []struct {
		name    string
		entry   schema.ComponentSchema
		wantErr string
	}{
		{
			name: "max items below one",
			entry: schema.ComponentSchema{
				TypeName: "list",
				RepeatableGroups: []schema.RepeatableGroupDefinition{
					{Key: "items", MaxItems: 0, MemberKeyPatterns: []string{"item{n}Title"}},
				},
			},
			wantErr: "maxItems must be >= 1",
		},
		{
			name: "pattern without placeholder",
			entry: schema.ComponentSchema{
				TypeName: "list",
				Properties: []schema.PropertyDefinition{
					{Key: "itemTitle", RepeatableGroupKey: "items"},
				},
				RepeatableGroups: []schema.RepeatableGroupDefinition{
					{Key: "items", MaxItems: 2, MemberKeyPatterns: []string{"itemTitle"}},
				},
			},
			wantErr: "missing the {n} placeholder",
		},
		{
			name: "pattern expands to unknown property",
			entry: schema.ComponentSchema{
				TypeName: "list",
				Properties: []schema.PropertyDefinition{
					{Key: "item1Title", RepeatableGroupKey: "items"},
				},
				RepeatableGroups: []schema.RepeatableGroupDefinition{
					{Key: "items", MaxItems: 2, MemberKeyPatterns: []string{"item{n}Title"}},
				},
			},
			wantErr: "unknown property \"item2Title\"",
		},
		{
			name: "member not attached to group",
			entry: schema.ComponentSchema{
				TypeName: "list",
				Properties: []schema.PropertyDefinition{
					{Key: "item1Title"},
				},
				RepeatableGroups: []schema.RepeatableGroupDefinition{
					{Key: "items", MaxItems: 1, MemberKeyPatterns: []string{"item{n}Title"}},
				},
			},
			wantErr: "not attached to the group",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry := schema.NewRegistry()
			err := registry.Register(tc.entry)
			if err == nil {
				t.Fatalf("expected registration to fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestNamesPreservesRegistrationOrder(t *testing.T) {
	registry := schema.NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		registry.MustRegister(schema.ComponentSchema{TypeName: name})
	}

	want := []string{"zeta", "alpha", "mid"}
	if diff := cmp.Diff(want, registry.Names()); diff != "" {
		t.Fatalf("unexpected name order (-want +got):\n%s", diff)
	}
}

func TestExpandMemberKey(t *testing.T) {
	if got := schema.ExpandMemberKey("feature{n}Title", 3); got != "feature3Title" {
		t.Fatalf("expected feature3Title, got %q", got)
	}
	if got := schema.ExpandMemberKey("plain", 2); got != "plain" {
		t.Fatalf("expected pattern without placeholder to pass through, got %q", got)
	}
}

func TestGroupMembers(t *testing.T) {
	registry := schema.DefaultRegistry()
	features, ok := registry.Get("features")
	if !ok {
		t.Fatalf("expected features schema in default registry")
	}
	group := features.RepeatableGroups[0]

	members := features.GroupMembers(group, 2)
	if len(members) != 3 {
		t.Fatalf("expected 3 member definitions, got %d", len(members))
	}
	if members[0].Key != "feature2Title" {
		t.Fatalf("expected feature2Title first, got %q", members[0].Key)
	}
}
