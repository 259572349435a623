package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alshifa/clinic-system/internal/agent"
	"github.com/alshifa/clinic-system/internal/api/metrics"
)

// AgentHandler exposes the AI assistant over a single chat endpoint.
type AgentHandler struct {
	router *agent.Router
	log    zerolog.Logger
}

func NewAgentHandler(router *agent.Router, log zerolog.Logger) *AgentHandler {
	return &AgentHandler{router: router, log: log}
}

type chatRequest struct {
	Message   string            `json:"message" validate:"required"`
	AgentType string            `json:"agent_type,omitempty" validate:"omitempty,oneof=appointment inventory finance case"`
	Context   map[string]string `json:"context,omitempty"`
}

// Chat godoc
// @Summary  Talk to the clinic assistant
// @Tags     agent
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    request body chatRequest true "Chat message"
// @Success  200 {object} agent.ChatReply
// @Failure  400 {object} errorResponse
// @Router   /agent/chat [post]
func (h *AgentHandler) Chat(c echo.Context) error {
	cl, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	reply, err := h.router.Chat(c.Request().Context(), agent.ChatInput{
		UserID:    cl.UserID,
		Role:      cl.Role,
		ProfileID: cl.ProfileID,
		Message:   req.Message,
		AgentType: req.AgentType,
		Context:   req.Context,
	})
	if err != nil {
		return err
	}

	agentLabel := req.AgentType
	if agentLabel == "" {
		agentLabel = "auto"
	}
	metrics.AgentRequestsTotal.WithLabelValues(agentLabel).Inc()
	return c.JSON(http.StatusOK, reply)
}
