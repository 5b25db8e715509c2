package settings

import "strings"

// Token sets matched against user input (config values and CLI answers),
// case-insensitively. "0" and "no" intentionally appear in more than one
// set: each set answers its own yes/no/none question, so no ambiguity
// arises in practice.
var (
	NoneOptions = []string{"none", "no", "null", "0"}
	NoOptions   = []string{"n", "no", "false", "0"}
	YesOptions  = []string{"y", "yes", "true", "1"}
)

func matchesOption(value string, options []string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, opt := range options {
		if value == opt {
			return true
		}
	}
	return false
}

// IsNone reports whether value spells an explicit absence, including the
// JavaUnavailable sentinel.
func IsNone(value string) bool { return matchesOption(value, NoneOptions) }

// IsNo reports whether value is a negative answer.
func IsNo(value string) bool { return matchesOption(value, NoOptions) }

// IsYes reports whether value is an affirmative answer.
func IsYes(value string) bool { return matchesOption(value, YesOptions) }
