package usecase

const (
	msgEmptyMessage    = "Please type a message."
	msgUnexpectedError = "❌ Something went wrong while handling your message. Please try again."

	msgCreateFailed = "❌ Failed to create task. Please try again."
	msgFetchFailed  = "❌ Failed to fetch tasks. Please try again."
	msgUpdateFailed = "❌ Failed to update task. Please try again."
	msgDeleteFailed = "❌ Failed to delete task. Please try again."
	msgStatsFailed  = "❌ Failed to fetch statistics. Please try again."

	msgNoTasksYet = "📋 You have no tasks yet. Try \"create task buy milk tomorrow\"."
	msgNoMatches  = "📋 No %s tasks found."
	msgCancelled  = "👌 Cancelled."

	msgSelectTaskDelete   = "🗑️ Which task do you want to delete?"
	msgSelectTaskStatus   = "Which task do you want to update?"
	msgSelectTaskPriority = "Which task should get a new priority?"
	msgSelectTaskHint     = "Reply with its number or part of its title, or \"cancel\"."
	msgSelectTaskInvalid  = "❌ I couldn't find that task. Reply with a number from 1 to %d or part of the title, or \"cancel\"."

	msgSelectStatus          = "What is the new status of \"%s\"?\n1. pending\n2. in-progress\n3. completed"
	msgSelectStatusInvalid   = "❌ Please reply with 1 (pending), 2 (in-progress) or 3 (completed), or \"cancel\"."
	msgSelectPriority        = "What is the new priority of \"%s\"?\n1. high\n2. medium\n3. low"
	msgSelectPriorityInvalid = "❌ Please reply with 1 (high), 2 (medium) or 3 (low), or \"cancel\"."

	msgTaskCreated = "✅ Task created: \"%s\"\nPriority: %s"
	msgTaskDue     = "\nDue: %s"
	msgTaskUpdated = "✅ Task updated: \"%s\" is now %s."
	msgTaskDeleted = "🗑️ Task deleted: \"%s\""

	msgStats = "📊 Task statistics\n" +
		"Total: %d\n" +
		"Pending: %d\n" +
		"In progress: %d\n" +
		"Completed: %d\n" +
		"Overdue: %d\n\n" +
		"Priority: %d high, %d medium, %d low"

	msgHelp = "Here is what you can say:\n" +
		"• \"create task buy milk tomorrow\" or \"add high priority task call Bob\"\n" +
		"• \"show my tasks\", \"show urgent tasks\", \"show overdue tasks\"\n" +
		"• \"mark task 1 as done\", \"change priority of report to high\"\n" +
		"• \"delete task 2\"\n" +
		"• \"stats\"\n" +
		"Reply \"cancel\" to abandon a question I asked."

	msgCapabilities = "I can create, list, update and delete your tasks, and summarize how you're doing. Type \"help\" for examples."

	msgLastTask = " Last time we worked on \"%s\"."

	dueDateLayout = "Monday, January 2, 2006"
	shortDate     = "Jan 2"
)

var greetingPool = []string{
	"👋 Hi! What would you like to get done today?",
	"👋 Hello! Need to add or check a task?",
	"👋 Hey there! Tell me what's on your plate.",
	"👋 Good to see you! How can I help with your tasks?",
}
