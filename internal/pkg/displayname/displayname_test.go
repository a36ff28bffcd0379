package displayname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, Validate("Jane Doe"))
}

func TestValidate_OneWord(t *testing.T) {
	errs := Validate("Jane")
	assert.Contains(t, errs, "Display name must consist of two words.")
}

func TestValidate_ThreeWords(t *testing.T) {
	errs := Validate("Jane Q Doe")
	assert.Contains(t, errs, "Display name must consist of two words.")
}

func TestValidate_NonLetters(t *testing.T) {
	errs := Validate("Jane D0e")
	assert.Contains(t, errs, "Display name must only contain letters.")
}

func TestValidate_ForbiddenWord(t *testing.T) {
	errs := Validate("Site Admin")
	assert.Contains(t, errs, "Display name is containing a forbidden word.")
}

func TestValidate_ForbiddenWordCaseInsensitive(t *testing.T) {
	errs := Validate("The CEO")
	assert.Contains(t, errs, "Display name is containing a forbidden word.")
}

func TestValidate_TooLong(t *testing.T) {
	errs := Validate("Janeabcdefghijklmn Doeabcdefghijklmn")
	assert.Contains(t, errs, "Display name must not exceed 30 characters.")
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	errs := Validate("admin1")
	assert.Len(t, errs, 3) // one word, non-letters, forbidden word
}
