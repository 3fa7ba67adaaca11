package users

import (
	"testing"

	"underrated/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		in   contactInput
	}{
		{"missing name", contactInput{Email: "a@b.c", Message: "hi"}},
		{"missing email", contactInput{Name: "Asha", Message: "hi"}},
		{"missing message", contactInput{Name: "Asha", Email: "a@b.c"}},
		{"blank message", contactInput{Name: "Asha", Email: "a@b.c", Message: "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newContact(tc.in)
			assert.EqualError(t, err, "Please fill in all required fields")
		})
	}
}

func TestNewContactDefaultsTypeToInquiry(t *testing.T) {
	c, err := newContact(contactInput{Name: "Asha", Email: "a@b.c", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, models.ContactTypeInquiry, c.Type)
	assert.Equal(t, models.ContactStatusNew, c.Status)
}

func TestNewContactAcceptsBugReport(t *testing.T) {
	c, err := newContact(contactInput{Name: "Asha", Email: "a@b.c", Message: "broken map", Type: models.ContactTypeBugReport})
	require.NoError(t, err)
	assert.Equal(t, models.ContactTypeBugReport, c.Type)
}

func TestNewContactRejectsUnknownType(t *testing.T) {
	_, err := newContact(contactInput{Name: "Asha", Email: "a@b.c", Message: "hi", Type: "Telegram"})
	assert.Error(t, err)
}

func TestUserContactStatusEnum(t *testing.T) {
	for _, s := range []string{"New", "Read", "Replied"} {
		assert.True(t, validStatus(s), s)
	}
	// Accepted/Rejected belong to the newer submissions collection
	assert.False(t, validStatus("Accepted"))
	assert.False(t, validStatus("Rejected"))
}
