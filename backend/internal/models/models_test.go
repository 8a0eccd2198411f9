package models_test

import (
	"errors"
	"strings"
	"testing"

	"telebuddy/backend/internal/models"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestValidate_AllKindsWithRequiredFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		record any
	}{
		{"Bot", models.Bot{Name: "Main Bot", IsActive: true}},
		{"Fan", models.Fan{BotID: "bot1", TgUserID: "42"}},
		{"MediaItem", models.MediaItem{BotID: "bot1", Type: models.MediaTypePhoto, Tags: []string{}}},
		{"ScriptStep", models.ScriptStep{DelayMinutes: 0}},
		{"Script", models.Script{BotID: "bot1", Name: "Welcome flow", Steps: []models.ScriptStep{{DelayMinutes: 5}}}},
		{"Conversation", models.Conversation{BotID: "bot1", FanID: "fan1"}},
		{"Message", models.Message{ConversationID: "conv1", Direction: models.DirectionInbound}},
		{"Team", models.Team{Name: "Support"}},
		{"TeamMember", models.TeamMember{TeamID: "team1", UserID: "user1", Role: models.RoleAgent}},
		{"AnalyticsDaily", models.AnalyticsDaily{BotID: "bot1", Date: "2025-01-31"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := models.Validate(tc.record); err != nil {
				t.Fatalf("Validate(%s) = %v, want nil", tc.name, err)
			}
		})
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		record    any
		wantField string
	}{
		{"Bot without name", models.Bot{IsActive: true}, "name"},
		{"Team without name", models.Team{}, "name"},
		{"Fan without tg_user_id", models.Fan{BotID: "bot1"}, "tg_user_id"},
		{"MediaItem without bot_id", models.MediaItem{Type: models.MediaTypePhoto}, "bot_id"},
		{"Script without name", models.Script{BotID: "bot1"}, "name"},
		{"Conversation without fan_id", models.Conversation{BotID: "bot1"}, "fan_id"},
		{"Message without conversation_id", models.Message{Direction: models.DirectionInbound}, "conversation_id"},
		{"TeamMember without user_id", models.TeamMember{TeamID: "team1"}, "user_id"},
		{"AnalyticsDaily without date", models.AnalyticsDaily{BotID: "bot1"}, "date"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := models.Validate(tc.record)
			if err == nil {
				t.Fatalf("Validate(%s) = nil, want ValidationError", tc.name)
			}
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate(%s) returned %T, want *models.ValidationError", tc.name, err)
			}
			if !strings.Contains(verr.Reason, tc.wantField) {
				t.Errorf("ValidationError reason %q does not mention field %q", verr.Reason, tc.wantField)
			}
		})
	}
}

func TestValidate_MediaItemConstraints(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		item    models.MediaItem
		wantErr bool
	}{
		{
			name:    "valid photo",
			item:    models.MediaItem{BotID: "bot1", Type: models.MediaTypePhoto},
			wantErr: false,
		},
		{
			name:    "audio is not a valid type",
			item:    models.MediaItem{BotID: "bot1", Type: models.MediaType("audio")},
			wantErr: true,
		},
		{
			name:    "negative price",
			item:    models.MediaItem{BotID: "bot1", Type: models.MediaTypeVideo, Price: floatPtr(-1)},
			wantErr: true,
		},
		{
			name:    "zero price is allowed",
			item:    models.MediaItem{BotID: "bot1", Type: models.MediaTypeDocument, Price: floatPtr(0)},
			wantErr: false,
		},
		{
			name:    "nil price is allowed",
			item:    models.MediaItem{BotID: "bot1", Type: models.MediaTypePhoto, Price: nil},
			wantErr: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := models.Validate(tc.item)
			if tc.wantErr && err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidate_MessageDirection(t *testing.T) {
	t.Parallel()

	sideways := models.Message{ConversationID: "conv1", Direction: models.Direction("sideways")}
	if err := models.Validate(sideways); err == nil {
		t.Fatal("Validate() accepted direction \"sideways\", want ValidationError")
	}

	inbound := models.Message{ConversationID: "conv1", Direction: models.DirectionInbound, Text: strPtr("hi")}
	if err := models.Validate(inbound); err != nil {
		t.Fatalf("Validate(inbound message) = %v, want nil", err)
	}
	if inbound.Paid {
		t.Error("Paid should default to false")
	}
}

func TestValidate_ScriptStepDelay(t *testing.T) {
	t.Parallel()

	if err := models.Validate(models.ScriptStep{DelayMinutes: -1}); err == nil {
		t.Fatal("Validate() accepted negative delay_minutes, want ValidationError")
	}

	// Dive validation rejects a bad nested step.
	script := models.Script{
		BotID: "bot1",
		Name:  "drip",
		Steps: []models.ScriptStep{{DelayMinutes: -5}},
	}
	if err := models.Validate(script); err == nil {
		t.Fatal("Validate() accepted script with negative step delay, want ValidationError")
	}
}

func TestValidate_TeamMemberRole(t *testing.T) {
	t.Parallel()

	bad := models.TeamMember{TeamID: "team1", UserID: "user1", Role: models.Role("boss")}
	if err := models.Validate(bad); err == nil {
		t.Fatal("Validate() accepted role \"boss\", want ValidationError")
	}

	// Empty role is fine: the default (agent) applies downstream.
	empty := models.TeamMember{TeamID: "team1", UserID: "user1"}
	if err := models.Validate(empty); err != nil {
		t.Fatalf("Validate(member with empty role) = %v, want nil", err)
	}
}

func TestCollectionName(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		kind string
		want string
	}{
		{"Bot", "bot"},
		{"MediaItem", "mediaitem"},
		{"AnalyticsDaily", "analyticsdaily"},
	}
	for _, tc := range testCases {
		if got := models.CollectionName(tc.kind); got != tc.want {
			t.Errorf("CollectionName(%q) = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestAll_ContainsTenKinds(t *testing.T) {
	t.Parallel()

	if len(models.All) != 10 {
		t.Fatalf("len(models.All) = %d, want 10", len(models.All))
	}
	seen := make(map[string]bool)
	for _, def := range models.All {
		if seen[def.Name] {
			t.Errorf("duplicate definition %q", def.Name)
		}
		seen[def.Name] = true
	}
	for _, name := range []string{"Bot", "Fan", "MediaItem", "ScriptStep", "Script", "Conversation", "Message", "Team", "TeamMember", "AnalyticsDaily"} {
		if !seen[name] {
			t.Errorf("models.All is missing %q", name)
		}
	}
}
