package usecase

import "task-assistant/internal/conversation"

// appendHistory records one user/assistant exchange and keeps the last limit
// messages. The input slice is never modified.
func appendHistory(history []conversation.Message, limit int, user, assistant string) []conversation.Message {
	out := make([]conversation.Message, 0, len(history)+2)
	out = append(out, history...)
	out = append(out,
		conversation.Message{Role: conversation.RoleUser, Content: user},
		conversation.Message{Role: conversation.RoleAssistant, Content: assistant},
	)
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}
