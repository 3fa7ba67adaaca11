package testimonials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestimonialRequiredFields(t *testing.T) {
	_, err := newTestimonial(testimonialInput{Message: "great site"})
	assert.Error(t, err)

	_, err = newTestimonial(testimonialInput{Name: "Ravi"})
	assert.Error(t, err)
}

func TestNewTestimonialDefaults(t *testing.T) {
	tm, err := newTestimonial(testimonialInput{Name: "Ravi", Message: "found three gems in a weekend"})
	require.NoError(t, err)
	assert.Equal(t, "Explorer", tm.Role)
	assert.Equal(t, 5.0, tm.Rating)
	assert.False(t, tm.Featured)
}

func TestNewTestimonialExplicitValues(t *testing.T) {
	rating := 4.0
	tm, err := newTestimonial(testimonialInput{
		Name:     "Ravi",
		Role:     "Travel Blogger",
		Message:  "hidden beaches galore",
		Featured: true,
		Rating:   &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, "Travel Blogger", tm.Role)
	assert.Equal(t, 4.0, tm.Rating)
	assert.True(t, tm.Featured)
}
