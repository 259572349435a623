package agent

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Agent type selectors accepted from the client.
const (
	TypeAppointment = "appointment"
	TypeInventory   = "inventory"
	TypeFinance     = "finance"
	TypeCase        = "case"
)

// ChatInput is one user turn addressed to the assistant.
type ChatInput struct {
	UserID    string
	Role      string
	ProfileID string
	Message   string
	// AgentType selects an agent explicitly; empty means keyword routing.
	AgentType string
	Context   map[string]string
}

// ChatReply is the assistant's answer. Data carries structured payloads
// (slots, stock rows) for the client to render.
type ChatReply struct {
	SessionID   string      `json:"session_id"`
	Response    string      `json:"response"`
	ActionTaken string      `json:"action_taken,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

// Handler is one specialized agent behind the router.
type Handler interface {
	Handle(ctx context.Context, in ChatInput) (*ChatReply, error)
}

// Keyword tables for implicit routing, checked in order.
var (
	appointmentKeywords = []string{
		"book", "appointment", "schedule", "slot", "visit", "consult",
		"reservation", "booking", "availability", "available", "calendar",
		"see a doctor", "reschedule", "doctor",
	}
	inventoryKeywords = []string{
		"stock", "inventory", "supply", "item", "material", "quantity",
		"shortage", "restock", "glove", "mask", "syringe", "do we have",
	}
	financeKeywords = []string{
		"revenue", "profit", "invoice", "earning", "income", "sales",
		"finance", "money", "payment", "collection", "forecast",
	}
	caseKeywords = []string{
		"treatment", "pain", "swelling", "diagnosis", "symptom", "tooth",
		"teeth", "molar", "cavity", "filling", "root canal", "extraction",
		"hurt", "ache",
	}
)

// emergencyKeywords trip the safety guardrail before any agent runs.
var emergencyKeywords = []string{
	"bleeding heavily", "unconscious", "heart attack", "stroke",
	"can't breathe", "suicide", "overdose",
}

// Router dispatches chat turns to specialized agents, with Gemini as the
// general-conversation fallback.
type Router struct {
	appointment Handler
	inventory   Handler
	finance     Handler
	caseAgent   Handler
	llm         LLMClient
	log         zerolog.Logger
}

func NewRouter(appointment, inventory, finance, caseAgent Handler, llm LLMClient, log zerolog.Logger) *Router {
	return &Router{
		appointment: appointment,
		inventory:   inventory,
		finance:     finance,
		caseAgent:   caseAgent,
		llm:         llm,
		log:         log,
	}
}

// Chat routes one turn: safety guardrail, explicit selection, keyword match,
// then the general LLM fallback.
func (r *Router) Chat(ctx context.Context, in ChatInput) (*ChatReply, error) {
	sessionID := uuid.NewString()
	query := strings.ToLower(in.Message)

	if matchesAny(query, emergencyKeywords) {
		r.log.Warn().Str("session_id", sessionID).Str("user_id", in.UserID).Msg("agent chat escalated")
		return &ChatReply{
			SessionID:   sessionID,
			Response:    "This sounds like a medical emergency. Please call emergency services immediately; I cannot handle life-threatening situations.",
			ActionTaken: "escalate_to_human",
		}, nil
	}

	handler := r.pick(in.AgentType, query)
	if handler != nil {
		reply, err := handler.Handle(ctx, in)
		if err != nil {
			return nil, err
		}
		reply.SessionID = sessionID
		r.log.Info().
			Str("session_id", sessionID).
			Str("user_id", in.UserID).
			Str("action", reply.ActionTaken).
			Msg("agent chat handled")
		return reply, nil
	}

	return r.fallback(ctx, sessionID, in)
}

func (r *Router) pick(agentType, query string) Handler {
	switch agentType {
	case TypeAppointment:
		return r.appointment
	case TypeInventory:
		return r.inventory
	case TypeFinance:
		return r.finance
	case TypeCase:
		return r.caseAgent
	}

	switch {
	case matchesAny(query, appointmentKeywords):
		return r.appointment
	case matchesAny(query, inventoryKeywords):
		return r.inventory
	case matchesAny(query, financeKeywords):
		return r.finance
	case matchesAny(query, caseKeywords):
		return r.caseAgent
	}
	return nil
}

func (r *Router) fallback(ctx context.Context, sessionID string, in ChatInput) (*ChatReply, error) {
	if r.llm == nil {
		return &ChatReply{
			SessionID: sessionID,
			Response:  "I can help with appointments, inventory, finance, or treatment questions. Could you rephrase your request?",
		}, nil
	}

	text, err := r.llm.Reply(ctx,
		"You are a helpful dental clinic assistant. Keep answers short and practical.",
		in.Message)
	if err != nil {
		r.log.Warn().Err(err).Str("session_id", sessionID).Msg("llm fallback failed")
		return &ChatReply{
			SessionID: sessionID,
			Response:  "I could not process that right now. Please try again in a moment.",
		}, nil
	}
	return &ChatReply{SessionID: sessionID, Response: text, ActionTaken: "chat"}, nil
}

func matchesAny(query string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(query, k) {
			return true
		}
	}
	return false
}
