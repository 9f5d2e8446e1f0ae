package conversation

// IntentKind is the classified user goal for one utterance.
type IntentKind string

const (
	IntentCreateTask    IntentKind = "create_task"
	IntentFilterTasks   IntentKind = "filter_tasks"
	IntentUpdateTask    IntentKind = "update_task"
	IntentDeleteTask    IntentKind = "delete_task"
	IntentGetStatistics IntentKind = "get_statistics"
	IntentConversation  IntentKind = "conversation"
)

// FilterType selects the predicate of a filter_tasks intent.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterPriority FilterType = "priority"
	FilterStatus   FilterType = "status"
	FilterDueDate  FilterType = "dueDate"
)

// Due-date filter values.
const (
	DueOverdue = "overdue"
	DueToday   = "today"
)

// UpdateAction is the kind of change an update_task intent requests.
type UpdateAction string

const (
	ActionChangeStatus   UpdateAction = "change_status"
	ActionChangePriority UpdateAction = "change_priority"
)

// PendingType is the disambiguation step awaiting the user's next reply.
type PendingType string

const (
	PendingSelectTask     PendingType = "select_task"
	PendingSelectStatus   PendingType = "select_status"
	PendingSelectPriority PendingType = "select_priority"
)

// Role of a history message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Source tells where a classification came from.
type Source string

const (
	SourceGreeting Source = "greeting"
	SourceRule     Source = "rule"
	SourceFallback Source = "fallback"
	SourceDegraded Source = "degraded"
)

const (
	// MaxListedTasks caps every rendered task list and disambiguation prompt.
	MaxListedTasks = 10

	// DefaultHistoryLimit bounds the history ring buffer when no limit is configured.
	DefaultHistoryLimit = 20
)
