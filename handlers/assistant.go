package handlers

import (
	"net/http"

	"commuterhub/models"
	"commuterhub/services/assistant"
	"commuterhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AssistantHandler exposes the conversational assistant over HTTP.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// OpenSession starts a new conversation and returns its session ID along with
// the assistant's greeting.
func (h *AssistantHandler) OpenSession(c *gin.Context) {
	sessionID := uuid.New().String()
	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"greeting":  assistant.Greeting,
	})
}

// Chat submits one line to the assistant and returns exactly one reply. Any
// store mutation and toast emission have happened by the time the response is
// written.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.Submit(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		h.Logger.Error("assistant turn failed", zap.String("sessionID", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "assistant unavailable", "Please try again shortly.")
		return
	}

	c.JSON(http.StatusOK, resp)
}
