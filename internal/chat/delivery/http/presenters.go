package http

import (
	"multilingual-chat/internal/chat"
	"multilingual-chat/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message        string `json:"message"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
	SessionID      string `json:"session_id"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:        r.Message,
		TargetLanguage: r.TargetLanguage,
		SourceLanguage: r.SourceLanguage,
		SessionID:      r.SessionID,
	}
}

type speechReq struct {
	Text string `json:"text"`
}

// --- Response DTOs ---

type chatResp struct {
	Response       string `json:"response"`
	SessionID      string `json:"session_id"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		SessionID:      out.SessionID,
		SourceLanguage: out.SourceLanguage,
		TargetLanguage: out.TargetLanguage,
	}
}

type historyRecordResp struct {
	SessionID      string `json:"session_id"`
	UserInput      string `json:"user_input"`
	BotResponse    string `json:"bot_response"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

func (h *handler) newHistoryResp(records []model.HistoryRecord) []historyRecordResp {
	resp := make([]historyRecordResp, len(records))
	for i, r := range records {
		resp[i] = historyRecordResp{
			SessionID:      r.SessionID,
			UserInput:      r.UserInput,
			BotResponse:    r.BotResponse,
			SourceLanguage: r.SourceLanguage,
			TargetLanguage: r.TargetLanguage,
		}
	}
	return resp
}

type resetResp struct {
	SessionID string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

func (h *handler) newResetResp(out chat.ResetOutput) resetResp {
	return resetResp{SessionID: out.SessionID, Cleared: out.Cleared}
}
