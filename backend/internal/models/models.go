// Package models holds the record definitions backing the TeleBuddy API.
//
// Each record maps to a MongoDB collection using the lowercase kind name
// (e.g. MediaItem -> collection "mediaitem"). The same tagged structs drive
// both construction-time validation and the /schema export, so the two can
// never drift.
package models

import "strings"

// MediaType is the Telegram media kind a MediaItem carries.
type MediaType string

const (
	MediaTypePhoto    MediaType = "photo"
	MediaTypeVideo    MediaType = "video"
	MediaTypeDocument MediaType = "document"
)

// Direction marks whether a message was received from or sent to a fan.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// Role is a team member's permission level.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleAgent  Role = "agent"
	RoleViewer Role = "viewer"
)

type Bot struct {
	Name           string  `bson:"name" json:"name" validate:"required" description:"Display name for this bot"`
	Username       *string `bson:"username" json:"username" description:"Telegram @username of the bot"`
	Token          *string `bson:"token" json:"token" description:"Telegram Bot API token (stored encrypted in production)"`
	TeamID         *string `bson:"team_id" json:"team_id" description:"Team/Workspace this bot belongs to"`
	WelcomeMessage *string `bson:"welcome_message" json:"welcome_message" description:"Auto DM for join requests to private groups/channels"`
	IsActive       bool    `bson:"is_active" json:"is_active" default:"true" description:"Whether bot is currently active"`
}

type Fan struct {
	BotID      string  `bson:"bot_id" json:"bot_id" validate:"required" description:"Bot this fan is associated with"`
	TgUserID   string  `bson:"tg_user_id" json:"tg_user_id" validate:"required" description:"Telegram user id"`
	Username   *string `bson:"username" json:"username" description:"Telegram username"`
	FirstName  *string `bson:"first_name" json:"first_name" description:"First name"`
	LastName   *string `bson:"last_name" json:"last_name" description:"Last name"`
	Timezone   *string `bson:"timezone" json:"timezone" description:"IANA timezone string if known"`
	TotalSpend float64 `bson:"total_spend" json:"total_spend" default:"0" description:"Total Stars revenue associated with this fan"`
}

type MediaItem struct {
	BotID          string    `bson:"bot_id" json:"bot_id" validate:"required" description:"Bot that owns this media item"`
	Type           MediaType `bson:"type" json:"type" validate:"required,oneof=photo video document" description:"Telegram media type"`
	Caption        *string   `bson:"caption" json:"caption" description:"Default caption to send with media"`
	Price          *float64  `bson:"price" json:"price" validate:"omitempty,gte=0" description:"Price in Stars or currency equivalent"`
	ExternalURL    *string   `bson:"external_url" json:"external_url" description:"External URL to fetch the file from (for demos)"`
	TelegramFileID *string   `bson:"telegram_file_id" json:"telegram_file_id" description:"Telegram file_id for instant reuse"`
	Tags           []string  `bson:"tags" json:"tags" default:"[]" description:"Tags for quick filtering"`
	ThumbnailURL   *string   `bson:"thumbnail_url" json:"thumbnail_url" description:"Optional thumbnail url"`
}

type ScriptStep struct {
	MediaItemID  *string  `bson:"media_item_id" json:"media_item_id" description:"Reference to a media item"`
	Caption      *string  `bson:"caption" json:"caption" description:"Override caption for this step"`
	Price        *float64 `bson:"price" json:"price" description:"Override price for this step"`
	DelayMinutes int      `bson:"delay_minutes" json:"delay_minutes" validate:"gte=0" default:"0" description:"Delay before sending this step in minutes"`
}

type Script struct {
	BotID string       `bson:"bot_id" json:"bot_id" validate:"required" description:"Owning bot"`
	Name  string       `bson:"name" json:"name" validate:"required" description:"Name of the sales script"`
	Steps []ScriptStep `bson:"steps" json:"steps" validate:"dive" default:"[]" description:"Sequence of steps"`
}

type Conversation struct {
	BotID              string  `bson:"bot_id" json:"bot_id" validate:"required" description:"Owning bot"`
	FanID              string  `bson:"fan_id" json:"fan_id" validate:"required" description:"Fan in this conversation"`
	LastMessagePreview *string `bson:"last_message_preview" json:"last_message_preview" description:"Preview text for list view"`
	LastMessageAt      *string `bson:"last_message_at" json:"last_message_at" description:"ISO time of last message"`
	Unread             int     `bson:"unread" json:"unread" default:"0" description:"Unread count for agent side"`
}

type Message struct {
	ConversationID    string    `bson:"conversation_id" json:"conversation_id" validate:"required" description:"Conversation this message belongs to"`
	Direction         Direction `bson:"direction" json:"direction" validate:"required,oneof=inbound outbound" description:"Message direction"`
	Text              *string   `bson:"text" json:"text" description:"Text body"`
	MediaItemID       *string   `bson:"media_item_id" json:"media_item_id" description:"If message sent a media item"`
	Price             *float64  `bson:"price" json:"price" description:"Price charged for paid media"`
	Paid              bool      `bson:"paid" json:"paid" default:"false" description:"Whether this was paid content"`
	TelegramMessageID *int64    `bson:"telegram_message_id" json:"telegram_message_id" description:"Telegram message id if delivered"`
	TelegramFileID    *string   `bson:"telegram_file_id" json:"telegram_file_id" description:"file_id used for instant delivery if any"`
}

type Team struct {
	Name string `bson:"name" json:"name" validate:"required" description:"Team name"`
}

type TeamMember struct {
	TeamID string `bson:"team_id" json:"team_id" validate:"required"`
	UserID string `bson:"user_id" json:"user_id" validate:"required"`
	Role   Role   `bson:"role" json:"role" validate:"omitempty,oneof=owner admin agent viewer" default:"agent"`
}

type AnalyticsDaily struct {
	BotID        string  `bson:"bot_id" json:"bot_id" validate:"required"`
	Date         string  `bson:"date" json:"date" validate:"required" description:"YYYY-MM-DD"`
	Revenue      float64 `bson:"revenue" json:"revenue" default:"0"`
	PaidMessages int     `bson:"paid_messages" json:"paid_messages" default:"0"`
	UniqueFans   int     `bson:"unique_fans" json:"unique_fans" default:"0"`
}

// Definition pairs a kind name with a prototype instance carrying defaults.
type Definition struct {
	Name      string
	Prototype any
}

// All lists every record definition in a stable order. It is the single
// source of truth consumed by the validator call sites and the /schema
// exporter.
var All = []Definition{
	{"Bot", Bot{IsActive: true}},
	{"Fan", Fan{}},
	{"MediaItem", MediaItem{Tags: []string{}}},
	{"ScriptStep", ScriptStep{}},
	{"Script", Script{Steps: []ScriptStep{}}},
	{"Conversation", Conversation{}},
	{"Message", Message{}},
	{"Team", Team{}},
	{"TeamMember", TeamMember{Role: RoleAgent}},
	{"AnalyticsDaily", AnalyticsDaily{}},
}

// CollectionName maps a kind name to its MongoDB collection.
func CollectionName(kind string) string {
	return strings.ToLower(kind)
}
