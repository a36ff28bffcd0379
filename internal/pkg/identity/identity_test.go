package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjectID_Deterministic(t *testing.T) {
	assert.Equal(t, SubjectID("a@x.com"), SubjectID("a@x.com"))
}

func TestSubjectID_KnownDigest(t *testing.T) {
	// sha256("a@x.com") — pins the digest format so the storage key never drifts.
	assert.Equal(t, "478abec7430569163161dfea8513b8ce89d05f559456a26e945c66e1fe55a29d", SubjectID("a@x.com"))
}

func TestSubjectID_DistinctInputs(t *testing.T) {
	assert.NotEqual(t, SubjectID("a@x.com"), SubjectID("b@x.com"))
}

func TestSubjectID_HexLength(t *testing.T) {
	assert.Len(t, SubjectID("anyone@example.com"), 64)
}
