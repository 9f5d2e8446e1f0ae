package intent

import (
	"fmt"
	"time"
)

const systemInstructionTemplate = `You classify messages sent to a task management assistant.
Today is %s (%s).

Reply with exactly one JSON object and nothing else. The "intent" field is required and must be one of:
- "create_task": fields "taskTitle" (string), "priority" ("high"|"medium"|"low"), optional "dueDate" (ISO-8601 date)
- "filter_tasks": fields "filterType" ("all"|"priority"|"status"|"dueDate"), "filterValue" (priority, status, "overdue" or "today")
- "update_task": fields "action" ("change_status"|"change_priority"), optional "taskIdentifier" (list number or part of the title), "newValue" (status or priority)
- "delete_task": optional field "taskIdentifier"
- "get_statistics": no fields
- "conversation": field "isGreeting" (boolean)

Statuses are "pending", "in-progress" and "completed". Fix obvious spelling mistakes.

Examples:
"remind me to pay the electricity bill friday" -> {"intent":"create_task","taskTitle":"pay the electricity bill","priority":"medium","dueDate":"%s"}
"what's still open?" -> {"intent":"filter_tasks","filterType":"status","filterValue":"pending"}
"whats late" -> {"intent":"filter_tasks","filterType":"dueDate","filterValue":"overdue"}
"set the report to high priority" -> {"intent":"update_task","action":"change_priority","taskIdentifier":"report","newValue":"high"}
"i finished task 3" -> {"intent":"update_task","action":"change_status","taskIdentifier":"3","newValue":"completed"}
"get rid of the gym task" -> {"intent":"delete_task","taskIdentifier":"gym"}
"how am i doing" -> {"intent":"get_statistics"}
"thanks!" -> {"intent":"conversation","isGreeting":false}`

const isoDate = "2006-01-02"

// systemInstruction renders the fixed schema text for the given day.
func systemInstruction(today time.Time) string {
	friday := today.AddDate(0, 0, int((time.Friday-today.Weekday()+7)%7))
	if !friday.After(today) {
		friday = friday.AddDate(0, 0, 7)
	}
	return fmt.Sprintf(systemInstructionTemplate, today.Format(isoDate), today.Weekday(), friday.Format(isoDate))
}
