package schema_test

import (
	"testing"

	"telebuddy/backend/internal/schema"
)

func TestExport_CoversAllKinds(t *testing.T) {
	t.Parallel()

	out := schema.Export()
	if len(out) != 10 {
		t.Fatalf("Export() returned %d models, want 10", len(out))
	}
	for _, name := range []string{"Bot", "Fan", "MediaItem", "ScriptStep", "Script", "Conversation", "Message", "Team", "TeamMember", "AnalyticsDaily"} {
		ms, ok := out[name]
		if !ok {
			t.Errorf("Export() is missing %q", name)
			continue
		}
		if ms.Title != name {
			t.Errorf("%s: Title = %q, want %q", name, ms.Title, name)
		}
		if ms.Type != "object" {
			t.Errorf("%s: Type = %q, want \"object\"", name, ms.Type)
		}
	}
}

func TestExport_MediaItem(t *testing.T) {
	t.Parallel()

	ms := schema.Export()["MediaItem"]

	required := make(map[string]bool)
	for _, f := range ms.Required {
		required[f] = true
	}
	if !required["bot_id"] || !required["type"] {
		t.Errorf("MediaItem required = %v, want bot_id and type", ms.Required)
	}
	if required["caption"] || required["price"] {
		t.Errorf("MediaItem required = %v, optional fields must not be listed", ms.Required)
	}

	typ := ms.Properties["type"]
	if typ.Type != "string" {
		t.Errorf("type field: Type = %q, want \"string\"", typ.Type)
	}
	if len(typ.Enum) != 3 {
		t.Fatalf("type field: Enum = %v, want the three media types", typ.Enum)
	}
	want := map[string]bool{"photo": true, "video": true, "document": true}
	for _, v := range typ.Enum {
		if !want[v] {
			t.Errorf("type field: unexpected enum value %q", v)
		}
	}

	price := ms.Properties["price"]
	if price.Type != "number" {
		t.Errorf("price field: Type = %q, want \"number\"", price.Type)
	}
	if price.Minimum == nil || *price.Minimum != 0 {
		t.Errorf("price field: Minimum = %v, want 0", price.Minimum)
	}

	tags := ms.Properties["tags"]
	if tags.Type != "array" {
		t.Fatalf("tags field: Type = %q, want \"array\"", tags.Type)
	}
	if tags.Items == nil || tags.Items.Type != "string" {
		t.Errorf("tags field: Items = %+v, want string items", tags.Items)
	}
}

func TestExport_Defaults(t *testing.T) {
	t.Parallel()

	out := schema.Export()

	isActive := out["Bot"].Properties["is_active"]
	if isActive.Type != "boolean" {
		t.Errorf("is_active: Type = %q, want \"boolean\"", isActive.Type)
	}
	if v, ok := isActive.Default.(bool); !ok || !v {
		t.Errorf("is_active: Default = %v, want true", isActive.Default)
	}

	role := out["TeamMember"].Properties["role"]
	if v, ok := role.Default.(string); !ok || v != "agent" {
		t.Errorf("role: Default = %v, want \"agent\"", role.Default)
	}
	if len(role.Enum) != 4 {
		t.Errorf("role: Enum = %v, want the four roles", role.Enum)
	}

	delay := out["ScriptStep"].Properties["delay_minutes"]
	if delay.Type != "integer" {
		t.Errorf("delay_minutes: Type = %q, want \"integer\"", delay.Type)
	}
	if v, ok := delay.Default.(int); !ok || v != 0 {
		t.Errorf("delay_minutes: Default = %v, want 0", delay.Default)
	}
}

func TestExport_NestedSteps(t *testing.T) {
	t.Parallel()

	steps := schema.Export()["Script"].Properties["steps"]
	if steps.Type != "array" {
		t.Fatalf("steps: Type = %q, want \"array\"", steps.Type)
	}
	if steps.Items == nil || steps.Items.Ref != "#/ScriptStep" {
		t.Errorf("steps: Items = %+v, want $ref to ScriptStep", steps.Items)
	}
}

func TestExport_Descriptions(t *testing.T) {
	t.Parallel()

	name := schema.Export()["Bot"].Properties["name"]
	if name.Description == "" {
		t.Error("Bot name field has no description")
	}

	total := schema.Export()["Fan"].Properties["total_spend"]
	if total.Type != "number" {
		t.Errorf("total_spend: Type = %q, want \"number\"", total.Type)
	}
}
