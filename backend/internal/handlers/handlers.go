package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"telebuddy/backend/database"
	"telebuddy/backend/internal/models"
	"telebuddy/backend/internal/schema"
	"telebuddy/shared/env"
	"telebuddy/shared/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// placeholderTelegramMessageID stands in for a real delivery id; the demo
// never calls the Telegram send API.
const placeholderTelegramMessageID int64 = 123456

func RegisterRoutes(router *gin.Engine, appLogger *logger.Logger) {
	router.GET("/", func(c *gin.Context) {
		appLogger.Info("Root endpoint accessed")
		c.JSON(http.StatusOK, gin.H{"message": "TeleBuddy backend running"})
	})
}

// RegisterAPIRoutes wires the schema, diagnostics, and CRUD endpoints. The
// gateway is injected here; a degraded (nil) store is acceptable.
func RegisterAPIRoutes(router *gin.Engine, appLogger *logger.Logger, db database.Gateway) {
	router.GET("/schema", func(c *gin.Context) {
		c.JSON(http.StatusOK, schema.Export())
	})

	router.GET("/test", handleTestDatabase(appLogger, db))

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/media", handleListMedia(appLogger, db))
		apiGroup.POST("/media", handleCreateMedia(appLogger, db))

		apiGroup.GET("/conversations", handleListConversations(appLogger, db))
		apiGroup.POST("/conversations", handleCreateConversation(appLogger, db))

		apiGroup.GET("/messages", handleListMessages(appLogger, db))
		apiGroup.POST("/messages", handleSendMessage(appLogger, db))

		apiGroup.GET("/bots", handleListBots(appLogger, db))
		apiGroup.POST("/bots", handleCreateBot(appLogger, db))
	}
	appLogger.Info("API routes registered under /api")
}

func handleTestDatabase(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		appLogger.Info("Database diagnostics endpoint called")

		response := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"database_url":      "❌ Not Set",
			"database_name":     "❌ Not Set",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}
		if env.DatabaseURL != "" {
			response["database_url"] = "✅ Set"
		}
		if env.DatabaseName != "" {
			response["database_name"] = "✅ Set"
		}
		if db != nil && db.Available() {
			response["database"] = "✅ Connected & Working"
			response["connection_status"] = "Connected"
			response["collections"] = db.Collections(c.Request.Context())
		}
		c.JSON(http.StatusOK, response)
	}
}

// parseLimit reads the limit query parameter, falling back to def for
// missing or unusable values.
func parseLimit(c *gin.Context, def int64) int64 {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

// writeRecord validates and stores a record, translating failures into the
// right HTTP status. Returns the new identifier and whether it succeeded.
func writeRecord(c *gin.Context, appLogger *logger.Logger, db database.Gateway, kind string, record any) (string, bool) {
	if err := models.Validate(record); err != nil {
		appLogger.Warn("Record validation failed", "kind", kind, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	id, err := db.Create(c.Request.Context(), kind, record)
	if err != nil {
		if errors.Is(err, database.ErrStorageUnavailable) {
			appLogger.Warn("Write rejected, storage unavailable", "kind", kind)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not available"})
			return "", false
		}
		appLogger.Error("Insert failed", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store record"})
		return "", false
	}
	return id, true
}

type CreateMediaRequest struct {
	BotID       string   `json:"bot_id"`
	Type        string   `json:"type"`
	Caption     *string  `json:"caption"`
	Price       *float64 `json:"price"`
	ExternalURL *string  `json:"external_url"`
}

func handleListMedia(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}
		if botID := c.Query("bot_id"); botID != "" {
			filter["bot_id"] = botID
		}
		items := db.Query(c.Request.Context(), "MediaItem", filter, parseLimit(c, 50))
		c.JSON(http.StatusOK, items)
	}
}

func handleCreateMedia(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMediaRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appLogger.Warn("Invalid request body for /api/media", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		item := models.MediaItem{
			BotID:       req.BotID,
			Type:        models.MediaType(req.Type),
			Caption:     req.Caption,
			Price:       req.Price,
			ExternalURL: req.ExternalURL,
			Tags:        []string{},
		}
		id, ok := writeRecord(c, appLogger, db, "MediaItem", item)
		if !ok {
			return
		}
		appLogger.Info("Media item created", "id", id, "botID", req.BotID)
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

type CreateConversationRequest struct {
	BotID              string  `json:"bot_id"`
	FanID              string  `json:"fan_id"`
	LastMessagePreview *string `json:"last_message_preview"`
}

func handleListConversations(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		botID := c.Query("bot_id")
		if botID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bot_id query parameter is required"})
			return
		}
		items := db.Query(c.Request.Context(), "Conversation", bson.M{"bot_id": botID}, parseLimit(c, 50))
		c.JSON(http.StatusOK, items)
	}
}

func handleCreateConversation(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateConversationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appLogger.Warn("Invalid request body for /api/conversations", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		conv := models.Conversation{
			BotID:              req.BotID,
			FanID:              req.FanID,
			LastMessagePreview: req.LastMessagePreview,
		}
		id, ok := writeRecord(c, appLogger, db, "Conversation", conv)
		if !ok {
			return
		}
		appLogger.Info("Conversation created", "id", id, "botID", req.BotID)
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

type SendMessageRequest struct {
	ConversationID string   `json:"conversation_id"`
	Text           *string  `json:"text"`
	MediaItemID    *string  `json:"media_item_id"`
	Paid           bool     `json:"paid"`
	Price          *float64 `json:"price"`
}

func handleListMessages(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		conversationID := c.Query("conversation_id")
		if conversationID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "conversation_id query parameter is required"})
			return
		}
		items := db.Query(c.Request.Context(), "Message", bson.M{"conversation_id": conversationID}, parseLimit(c, 100))
		c.JSON(http.StatusOK, items)
	}
}

func handleSendMessage(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appLogger.Warn("Invalid request body for /api/messages", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		// In a real integration, this is where the Telegram send call would
		// happen. The demo stores the message and mimics an instant
		// telegram_message_id.
		deliveryID := placeholderTelegramMessageID
		msg := models.Message{
			ConversationID:    req.ConversationID,
			Direction:         models.DirectionOutbound,
			Text:              req.Text,
			MediaItemID:       req.MediaItemID,
			Paid:              req.Paid,
			Price:             req.Price,
			TelegramMessageID: &deliveryID,
		}
		id, ok := writeRecord(c, appLogger, db, "Message", msg)
		if !ok {
			return
		}
		appLogger.Info("Message stored", "id", id, "conversationID", req.ConversationID)
		c.JSON(http.StatusOK, gin.H{"id": id, "telegram_message_id": deliveryID})
	}
}

type CreateBotRequest struct {
	Name     string  `json:"name"`
	Username *string `json:"username"`
}

func handleListBots(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := db.Query(c.Request.Context(), "Bot", bson.M{}, parseLimit(c, 20))
		c.JSON(http.StatusOK, items)
	}
}

func handleCreateBot(appLogger *logger.Logger, db database.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateBotRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			appLogger.Warn("Invalid request body for /api/bots", "error", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
			return
		}

		bot := models.Bot{
			Name:     req.Name,
			Username: req.Username,
			IsActive: true,
		}
		id, ok := writeRecord(c, appLogger, db, "Bot", bot)
		if !ok {
			return
		}
		appLogger.Info("Bot created", "id", id, "name", req.Name)
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
