package intent

import (
	"regexp"
	"strings"
	"time"

	"task-assistant/internal/conversation"
	"task-assistant/internal/model"
	"task-assistant/pkg/datemath"
)

// input is the utterance as seen by every rule.
type input struct {
	text  string
	lower string
	now   time.Time
	cc    conversation.Context
	dates *datemath.Parser
}

// rule pairs a keyword gate with an extractor. The extractor may reject the
// utterance, in which case the next rule is tried.
type rule struct {
	name    string
	gate    *regexp.Regexp
	extract func(in input) (conversation.Intent, bool)
}

func defaultRules() []rule {
	return []rule{
		{name: "create", gate: reCreateGate, extract: extractCreate},
		{name: "filter", gate: reFilterGate, extract: extractFilter},
		{name: "update", gate: reUpdateGate, extract: extractUpdate},
		{name: "delete", gate: reDeleteGate, extract: extractDelete},
		{name: "statistics", gate: reStatsGate, extract: extractStats},
	}
}

var (
	reCreateGate = regexp.MustCompile(`\b(create|add)\b|\bnew\s+task\b`)
	reFilterGate = regexp.MustCompile(`\b(show|list|view|display)\b`)
	reUpdateGate = regexp.MustCompile(`\b(mark|complete|finish|done|update|change)\b`)
	reDeleteGate = regexp.MustCompile(`\b(delete|remove)\b`)
	reStatsGate  = regexp.MustCompile(`\b(stats|statistics|summary)\b`)

	reCreateTitle = regexp.MustCompile(`(?i)\b(?:create|add|new)\b\s*(?:an?\s+)?(?:new\s+)?(?:task\b\s*)?(?::\s*)?(.*)`)

	reHigh   = regexp.MustCompile(`\b(high|urgent|important)\b`)
	reMedium = regexp.MustCompile(`\b(medium|normal)\b`)
	reLow    = regexp.MustCompile(`\blow\b`)

	rePending    = regexp.MustCompile(`\b(pending|todo|to\s+do|not\s+started)\b`)
	reInProgress = regexp.MustCompile(`\b(progress|ongoing|started|working)\b`)
	reCompleted  = regexp.MustCompile(`\b(completed|complete|done|finished)\b`)
	reOverdue    = regexp.MustCompile(`\b(overdue|late|past\s+due)\b`)
	reDueToday   = regexp.MustCompile(`\b(today|due\s+today)\b`)
	reAllTasks   = regexp.MustCompile(`\b(tasks?|todos?|all|everything)\b|^\s*(show|list|view|display)\s*(me\s*)?[.!?]*$`)

	reStatusWord    = regexp.MustCompile(`\b(status|mark|complete|finish)\b`)
	rePriorityWord  = regexp.MustCompile(`\bpriority\b`)
	reStatusFor     = regexp.MustCompile(`(?i)\b(?:status|mark|complete)\s+(?:for|of)\s+(.+)`)
	reTaskNumber    = regexp.MustCompile(`(?i)(?:\btask\s*#?\s*|#\s*)?\b(\d+)\b`)
	reMarkAs        = regexp.MustCompile(`(?i)\b(?:mark|complete)\s+(.+?)\s+(?:as|to)\b`)
	reCompleteName  = regexp.MustCompile(`(?i)\b(?:complete|finish)\s+(.+)$`)
	reTrailingState = regexp.MustCompile(`(?i)\s+(?:to|as)\s+.*$`)
	rePriorityFor   = regexp.MustCompile(`(?i)\bpriority\s+(?:for|of|on)\s+(.+)`)
	rePriorityTask  = regexp.MustCompile(`(?i)\btask\s*#?\s*(\d+)\b`)
	reDeleteTarget  = regexp.MustCompile(`(?i)\b(?:delete|remove)\b\s*(.*)$`)

	rePronoun = regexp.MustCompile(`^(it|this|that|this one|that one|this task|that task|the last one|last one|the last task|last task)$`)
)

func extractCreate(in input) (conversation.Intent, bool) {
	m := reCreateTitle.FindStringSubmatch(in.text)
	if m == nil {
		return conversation.Intent{}, false
	}
	title := cleanTitle(m[1])
	if title == "" {
		return conversation.Intent{}, false
	}

	it := conversation.Intent{
		Kind:      conversation.IntentCreateTask,
		TaskTitle: title,
		Priority:  inferPriority(in.lower),
	}
	if due, ok := in.dates.Parse(in.text, in.now); ok {
		it.DueDate = &due
	}
	return it, true
}

func extractFilter(in input) (conversation.Intent, bool) {
	it := conversation.Intent{Kind: conversation.IntentFilterTasks}

	switch {
	case reHigh.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterPriority, string(model.PriorityHigh)
	case reMedium.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterPriority, string(model.PriorityMedium)
	case reLow.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterPriority, string(model.PriorityLow)
	case rePending.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterStatus, string(model.StatusPending)
	case reInProgress.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterStatus, string(model.StatusInProgress)
	case reCompleted.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterStatus, string(model.StatusCompleted)
	case reOverdue.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterDueDate, conversation.DueOverdue
	case reDueToday.MatchString(in.lower):
		it.FilterType, it.FilterValue = conversation.FilterDueDate, conversation.DueToday
	case reAllTasks.MatchString(in.lower):
		it.FilterType = conversation.FilterAll
	default:
		return conversation.Intent{}, false
	}
	return it, true
}

func extractUpdate(in input) (conversation.Intent, bool) {
	switch {
	case rePriorityWord.MatchString(in.lower):
		return conversation.Intent{
			Kind:           conversation.IntentUpdateTask,
			Action:         conversation.ActionChangePriority,
			TaskIdentifier: resolvePronoun(priorityTarget(in.text), in.cc),
			NewValue:       string(inferPriority(stripTarget(in.lower))),
		}, true
	case reStatusWord.MatchString(in.lower):
		return conversation.Intent{
			Kind:           conversation.IntentUpdateTask,
			Action:         conversation.ActionChangeStatus,
			TaskIdentifier: resolvePronoun(statusTarget(in.text), in.cc),
			NewValue:       string(inferStatus(in.lower)),
		}, true
	}
	return conversation.Intent{}, false
}

func extractDelete(in input) (conversation.Intent, bool) {
	var identifier string
	if m := reDeleteTarget.FindStringSubmatch(in.text); m != nil {
		identifier = cleanIdentifier(m[1])
	}
	return conversation.Intent{
		Kind:           conversation.IntentDeleteTask,
		TaskIdentifier: resolvePronoun(identifier, in.cc),
	}, true
}

func extractStats(in input) (conversation.Intent, bool) {
	return conversation.Intent{Kind: conversation.IntentGetStatistics}, true
}

// statusTarget applies the reference heuristics in order: "<verb> for/of
// <name>", a task number, "mark <name> as", then "complete <name>".
func statusTarget(text string) string {
	if m := reStatusFor.FindStringSubmatch(text); m != nil {
		if id := cleanIdentifier(reTrailingState.ReplaceAllString(m[1], "")); id != "" {
			return id
		}
	}
	if m := reTaskNumber.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := reMarkAs.FindStringSubmatch(text); m != nil {
		if id := cleanIdentifier(m[1]); id != "" {
			return id
		}
	}
	if m := reCompleteName.FindStringSubmatch(text); m != nil {
		return cleanIdentifier(m[1])
	}
	return ""
}

func priorityTarget(text string) string {
	if m := rePriorityFor.FindStringSubmatch(text); m != nil {
		if id := cleanIdentifier(reTrailingState.ReplaceAllString(m[1], "")); id != "" {
			return id
		}
	}
	if m := rePriorityTask.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// stripTarget drops the "for/of <name>" part so a task title such as
// "low-hanging fruit" does not decide the new priority.
func stripTarget(lower string) string {
	if i := strings.Index(lower, " to "); i >= 0 {
		return lower[i:]
	}
	return lower
}

func inferPriority(lower string) model.Priority {
	switch {
	case reHigh.MatchString(lower):
		return model.PriorityHigh
	case reLow.MatchString(lower):
		return model.PriorityLow
	}
	return model.PriorityMedium
}

func inferStatus(lower string) model.Status {
	switch {
	case rePending.MatchString(lower):
		return model.StatusPending
	case reInProgress.MatchString(lower):
		return model.StatusInProgress
	}
	return model.StatusCompleted
}

// resolvePronoun replaces "it"/"that task" with the last task the
// conversation touched.
func resolvePronoun(identifier string, cc conversation.Context) string {
	if cc.LastTaskTitle != "" && rePronoun.MatchString(strings.ToLower(identifier)) {
		return cc.LastTaskTitle
	}
	return identifier
}
