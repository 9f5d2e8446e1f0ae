package intent

import "regexp"

var greetingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(hi|hello|hey|hiya|howdy|greetings|yo)(\s+(there|everyone|bot|assistant))?[\s!.,?]*$`),
	regexp.MustCompile(`(?i)^\s*good\s+(morning|afternoon|evening)\b`),
	regexp.MustCompile(`(?i)\bhow\s+are\s+you\b`),
	regexp.MustCompile(`(?i)\bwhat'?s\s+up\b|\bwhat\s+is\s+up\b`),
}

// IsGreeting reports whether text is a greeting.
func IsGreeting(text string) bool {
	for _, re := range greetingPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
