package telegram

import "time"

const (
	defaultTurnTimeout = 30 * time.Second
	sendTimeout        = 10 * time.Second

	cmdStart = "/start"
	cmdHelp  = "/help"
	cmdReset = "/reset"

	msgWelcome = "👋 Welcome! I keep track of your tasks.\n\n" +
		"Try \"create task buy milk tomorrow\", \"show my tasks\" or \"stats\".\n" +
		"Send /help for more examples and /reset to start over."
	msgHelp = "Examples:\n" +
		"• create task call Bob friday\n" +
		"• add high priority task renew passport by 25/12/2025\n" +
		"• show urgent tasks / show overdue tasks\n" +
		"• mark task 2 as done\n" +
		"• change priority of report to low\n" +
		"• delete task 3\n" +
		"• stats"
	msgReset = "🧹 Conversation reset."
)
