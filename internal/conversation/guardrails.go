package conversation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Guardrails validates inbound messages before any model call and scrubs
// sensitive data from outbound text.
type Guardrails struct {
	maxInputChars int
}

// NewGuardrails creates a guard with the given input length cap. A
// non-positive cap uses the default of 2000 characters.
func NewGuardrails(maxInputChars int) *Guardrails {
	if maxInputChars <= 0 {
		maxInputChars = 2000
	}
	return &Guardrails{maxInputChars: maxInputChars}
}

// harmfulPatterns are injection markers that reject a message outright.
// Matching is case-insensitive.
var harmfulPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script.*?>.*?</script>`),
	regexp.MustCompile(`(?i)DROP TABLE`),
	regexp.MustCompile(`(?i)DELETE FROM`),
	regexp.MustCompile(`(?i)rm -rf`),
	regexp.MustCompile(`(?i)system\(`),
	regexp.MustCompile(`(?i)eval\(`),
}

var (
	creditCardPattern = regexp.MustCompile(`\b(?:\d{4}[ -]?){3}\d{4}\b`)
	passportPattern   = regexp.MustCompile(`\b[A-Z]{1,2}\d{6,9}\b`)
	passwordPattern   = regexp.MustCompile(`(?i)password\s*[=:]\s*\S+`)
)

// ValidateInput checks a user message against the length cap and the
// harmful-content blocklist. The returned error is an *InputRejectedError
// whose Reason is safe to show to the user.
func (g *Guardrails) ValidateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return &InputRejectedError{Reason: "Please enter a message."}
	}
	if utf8.RuneCountInString(input) > g.maxInputChars {
		return &InputRejectedError{Reason: fmt.Sprintf("Your message is too long. Please keep it under %d characters.", g.maxInputChars)}
	}
	for _, pattern := range harmfulPatterns {
		if pattern.MatchString(input) {
			return &InputRejectedError{Reason: "Your message contains harmful content. Please try again."}
		}
	}
	return nil
}

// RedactOutput masks credit card numbers, passport numbers, and password
// assignments in generated text. Redaction is idempotent: the replacement
// tokens contain nothing the patterns match.
func (g *Guardrails) RedactOutput(text string) string {
	text = creditCardPattern.ReplaceAllString(text, "[CREDIT CARD REDACTED]")
	text = passportPattern.ReplaceAllString(text, "[PASSPORT NUMBER REDACTED]")
	text = passwordPattern.ReplaceAllString(text, "password = [REDACTED]")
	return text
}
