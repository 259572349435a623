package agent

import (
	"context"
)

const caseSystemPrompt = "You are a dental case assistant. Explain dental " +
	"conditions and treatments in plain language. Never prescribe medication " +
	"or give a diagnosis; always advise confirming with the treating doctor."

const caseDisclaimer = "\n\nNote: this is general information, not a " +
	"diagnosis. Please confirm with your doctor."

// CaseAgent answers treatment and symptom questions with the LLM, always
// appending a medical disclaimer. It has no access to clinical records.
type CaseAgent struct {
	llm LLMClient
}

func NewCaseAgent(llm LLMClient) *CaseAgent {
	return &CaseAgent{llm: llm}
}

func (a *CaseAgent) Handle(ctx context.Context, in ChatInput) (*ChatReply, error) {
	if a.llm == nil {
		return &ChatReply{
			Response:    "I can't answer treatment questions right now. Please ask your doctor directly." + caseDisclaimer,
			ActionTaken: "case_info",
		}, nil
	}

	text, err := a.llm.Reply(ctx, caseSystemPrompt, in.Message)
	if err != nil {
		return &ChatReply{
			Response:    "I could not process that right now. For anything urgent, please contact the clinic." + caseDisclaimer,
			ActionTaken: "case_info",
		}, nil
	}
	return &ChatReply{
		Response:    text + caseDisclaimer,
		ActionTaken: "case_info",
	}, nil
}
