package usecase

import (
	"fmt"
	"regexp"

	"task-assistant/internal/conversation"
)

var reHelp = regexp.MustCompile(`(?i)\bhelp\b`)

// chat answers the conversation intent without touching the task store.
func (uc *implUseCase) chat(text string, it conversation.Intent, cc conversation.Context) string {
	switch {
	case it.IsGreeting:
		reply := greetingPool[uc.pick(len(greetingPool))]
		if cc.LastTaskTitle != "" {
			reply += fmt.Sprintf(msgLastTask, cc.LastTaskTitle)
		}
		return reply
	case reHelp.MatchString(text):
		return msgHelp
	default:
		return msgCapabilities
	}
}
