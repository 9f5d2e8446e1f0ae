package intent

import (
	"regexp"
	"strings"

	"task-assistant/pkg/datemath"
)

// step is one text transform of a cleanup pipeline.
type step func(string) string

var (
	rePriorityPhrase = regexp.MustCompile(`(?i)\s*\b(?:with\s+|as\s+)?(?:a\s+)?(?:high|medium|low|urgent)(?:\s*-?\s*priority)\b|\s*\b(?:with\s+)?priority\s+(?:high|medium|low)\b|\s*\b(?:urgent|urgently)\b`)
	reLeadingFiller  = regexp.MustCompile(`(?i)^\s*(?:called|named|titled|to)\b\s*`)
	reTrailingTask   = regexp.MustCompile(`(?i)\s*\btask\s*$`)
	reLeadingArticle = regexp.MustCompile(`(?i)^\s*(?:the|a|an)\s+`)
	reLeadingTask    = regexp.MustCompile(`(?i)^\s*task\b\s*#?\s*`)
	reSpaces         = regexp.MustCompile(`\s+`)
	reEdgePunct      = regexp.MustCompile(`^[\s"'“”:,.;-]+|[\s"'“”:,.;!?-]+$`)
)

func pipeline(steps ...step) step {
	return func(s string) string {
		for _, fn := range steps {
			s = fn(s)
		}
		return s
	}
}

func stripDatePhrases(s string) string     { return datemath.StripExpressions(s) }
func stripPriorityPhrases(s string) string { return rePriorityPhrase.ReplaceAllString(s, "") }
func stripFillerWords(s string) string     { return reLeadingFiller.ReplaceAllString(s, "") }
func stripTrailingTask(s string) string    { return reTrailingTask.ReplaceAllString(s, "") }
func stripLeadingArticle(s string) string  { return reLeadingArticle.ReplaceAllString(s, "") }
func stripLeadingTask(s string) string     { return reLeadingTask.ReplaceAllString(s, "") }

func tidy(s string) string {
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(reEdgePunct.ReplaceAllString(s, ""))
}

var (
	// cleanTitle turns the raw capture after "create/add" into a task title.
	cleanTitle = pipeline(stripDatePhrases, stripPriorityPhrases, tidy, stripLeadingTask, stripFillerWords, stripTrailingTask, tidy)

	// cleanIdentifier normalizes a captured task reference.
	cleanIdentifier = pipeline(tidy, stripLeadingArticle, stripLeadingTask, stripTrailingTask, tidy)
)
