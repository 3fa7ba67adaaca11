package contacts

import (
	"testing"

	"underrated/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmissionRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		in   submissionInput
	}{
		{"missing name", submissionInput{Email: "a@b.c", Type: models.ContactTypeInquiry}},
		{"missing email", submissionInput{Name: "Asha", Type: models.ContactTypeInquiry}},
		{"missing type", submissionInput{Name: "Asha", Email: "a@b.c"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newSubmission(tc.in)
			assert.EqualError(t, err, "Name, Email, and Type are required.")
		})
	}
}

func TestNewSubmissionRejectsUnknownType(t *testing.T) {
	_, err := newSubmission(submissionInput{Name: "Asha", Email: "a@b.c", Type: "Complaint"})
	assert.Error(t, err)

	// Bug Report belongs to the legacy form, not this one.
	_, err = newSubmission(submissionInput{Name: "Asha", Email: "a@b.c", Type: models.ContactTypeBugReport})
	assert.Error(t, err)
}

func TestNewSubmissionStartsNew(t *testing.T) {
	s, err := newSubmission(submissionInput{
		Name:      "Asha",
		Email:     "a@b.c",
		Type:      models.ContactTypeSuggestion,
		PlaceName: "Hidden Falls",
		Location:  "Wayanad",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, s.Status)
	assert.Equal(t, "Hidden Falls", s.PlaceName)
	assert.NotNil(t, s.Images)
	assert.Empty(t, s.Images)
}

func TestSubmissionStatusEnum(t *testing.T) {
	for _, s := range []string{"New", "Read", "Accepted", "Rejected"} {
		assert.True(t, validStatus(s), s)
	}
	// Replied is UserContact vocabulary
	assert.False(t, validStatus("Replied"))
	assert.False(t, validStatus("read"))
}
