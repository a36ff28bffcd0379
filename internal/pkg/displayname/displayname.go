package displayname

import (
	"regexp"
	"strings"
)

const maxLength = 30

var lettersAndSpaces = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Validate applies the display-name rules and returns every violated rule as
// a caller-facing message. An empty slice means the name is acceptable.
func Validate(name string) []string {
	var errs []string

	if len(strings.Fields(name)) != 2 {
		errs = append(errs, "Display name must consist of two words.")
	}

	if !lettersAndSpaces.MatchString(name) {
		errs = append(errs, "Display name must only contain letters.")
	}

	normalized := strings.ToLower(name)
	for _, word := range forbiddenWords {
		if strings.Contains(normalized, word) {
			errs = append(errs, "Display name is containing a forbidden word.")
			break
		}
	}

	if len(name) > maxLength {
		errs = append(errs, "Display name must not exceed 30 characters.")
	}

	return errs
}
