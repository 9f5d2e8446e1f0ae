package http

import (
	"strings"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
)

const maxSessionIDLength = 128

// --- Request DTOs ---

type turnReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required,max=4096"`
}

func (r turnReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return conversation.ErrEmptyMessage
	}
	if len(r.SessionID) > maxSessionIDLength {
		return errSessionIDTooLong
	}
	return nil
}

// --- Response DTOs ---

type pendingActionResp struct {
	Type         conversation.PendingType `json:"type"`
	Tasks        []model.TaskSummary      `json:"tasks,omitempty"`
	SelectedTask *model.TaskSummary       `json:"selected_task,omitempty"`
}

type messageResp struct {
	Role    conversation.Role `json:"role"`
	Content string            `json:"content"`
}

type sessionResp struct {
	SessionID     string             `json:"session_id"`
	PendingAction *pendingActionResp `json:"pending_action,omitempty"`
	LastTaskID    string             `json:"last_task_id,omitempty"`
	LastTaskTitle string             `json:"last_task_title,omitempty"`
	History       []messageResp      `json:"history"`
}

type turnResp struct {
	SessionID     string             `json:"session_id"`
	Response      string             `json:"response"`
	PendingAction *pendingActionResp `json:"pending_action,omitempty"`
}

func newPendingActionResp(pa *conversation.PendingAction) *pendingActionResp {
	if pa == nil {
		return nil
	}
	return &pendingActionResp{
		Type:         pa.Type,
		Tasks:        pa.Tasks,
		SelectedTask: pa.SelectedTask,
	}
}

func (h *handler) newTurnResp(sessionID string, out conversation.TurnOutput) turnResp {
	return turnResp{
		SessionID:     sessionID,
		Response:      out.Response,
		PendingAction: newPendingActionResp(out.Context.PendingAction),
	}
}

func (h *handler) newSessionResp(sessionID string, cc conversation.Context) sessionResp {
	history := make([]messageResp, len(cc.History))
	for i, m := range cc.History {
		history[i] = messageResp{Role: m.Role, Content: m.Content}
	}
	return sessionResp{
		SessionID:     sessionID,
		PendingAction: newPendingActionResp(cc.PendingAction),
		LastTaskID:    cc.LastTaskID,
		LastTaskTitle: cc.LastTaskTitle,
		History:       history,
	}
}
