package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ezeflt/horizon-ai/errs"
	"github.com/ezeflt/horizon-ai/logic"
	"github.com/ezeflt/horizon-ai/middleware"
)

// ChatController handles chat HTTP requests.
type ChatController struct {
	chatLogic *logic.ChatLogic
}

func NewChatController(chatLogic *logic.ChatLogic) *ChatController {
	return &ChatController{chatLogic: chatLogic}
}

// SendMessage handles POST /api/chat/message
func (c *ChatController) SendMessage(ctx *gin.Context) {
	type Request struct {
		Message string `json:"message" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "the message field is required and must be a non-empty string"})
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "the message field is required and must be a non-empty string"})
		return
	}

	userID, ok := middleware.ExtractUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	result, err := c.chatLogic.SendChatMessage(ctx.Request.Context(), message, userID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetHistory handles GET /api/chat/history
func (c *ChatController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.ExtractUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	messages, err := c.chatLogic.GetChatHistory(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"messages": messages})
}

// statusForError maps classified errors to HTTP statuses so the
// boundary never parses message text.
func statusForError(err error) int {
	switch errs.KindOf(err) {
	case errs.KindServiceOverloaded:
		return http.StatusServiceUnavailable
	case errs.KindRemote, errs.KindMalformedResponse:
		return http.StatusBadGateway
	case errs.KindStorage, errs.KindConfiguration, errs.KindInvalidRole:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
