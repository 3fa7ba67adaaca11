package places

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) PlaceInput {
	t.Helper()
	in, err := DecodePlaceInput(strings.NewReader(body))
	require.NoError(t, err)
	return in
}

func TestNormalizeRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		body string
		msg  string
	}{
		{"missing name", `{"city":"Pune","desc":"quiet"}`, "Place name is required"},
		{"blank name", `{"name":"   ","city":"Pune","desc":"quiet"}`, "Place name is required"},
		{"missing city and location", `{"name":"Fort","desc":"quiet"}`, "City / location is required"},
		{"missing description", `{"name":"Fort","city":"Pune"}`, "Description is required"},
		{"blank description", `{"name":"Fort","city":"Pune","desc":"  "}`, "Description is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(decode(t, tc.body))
			require.Error(t, err)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestNormalizeLocationBackfillsCity(t *testing.T) {
	place, err := Normalize(decode(t, `{"name":"Fort","location":"Pune","desc":"quiet"}`))
	require.NoError(t, err)
	assert.Equal(t, "Pune", place.City)
	assert.Equal(t, "Pune", place.Location)
}

func TestNormalizeCityBackfillsLocation(t *testing.T) {
	place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"quiet"}`))
	require.NoError(t, err)
	assert.Equal(t, "Pune", place.City)
	assert.Equal(t, "Pune", place.Location)
}

func TestNormalizeDefaults(t *testing.T) {
	place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"quiet"}`))
	require.NoError(t, err)

	assert.Equal(t, "Hidden Gem", place.Category)
	assert.Equal(t, "Daily", place.OpenDays)
	assert.NotNil(t, place.Categories)
	assert.Empty(t, place.Categories)
	assert.NotNil(t, place.Images)
	assert.Empty(t, place.Images)
	assert.Equal(t, "", place.Image)
	assert.Equal(t, 0.0, place.Rating)
	assert.False(t, place.Verified)
	assert.Nil(t, place.Latitude)
	assert.Nil(t, place.Longitude)
}

func TestNormalizeImageDefaultsToFirstOfImages(t *testing.T) {
	place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"quiet","images":["a.jpg","b.jpg"]}`))
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", place.Image)

	place, err = Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"quiet","images":["a.jpg"],"image":"cover.jpg"}`))
	require.NoError(t, err)
	assert.Equal(t, "cover.jpg", place.Image)
}

func TestNormalizeCoordinates(t *testing.T) {
	t.Run("numeric", func(t *testing.T) {
		place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"q","latitude":18.52,"longitude":73.85}`))
		require.NoError(t, err)
		require.NotNil(t, place.Latitude)
		require.NotNil(t, place.Longitude)
		assert.Equal(t, 18.52, *place.Latitude)
		assert.Equal(t, 73.85, *place.Longitude)
	})

	t.Run("numeric strings", func(t *testing.T) {
		place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"q","latitude":"18.52","longitude":"73.85"}`))
		require.NoError(t, err)
		require.NotNil(t, place.Latitude)
		assert.Equal(t, 18.52, *place.Latitude)
	})

	t.Run("non-numeric latitude omitted", func(t *testing.T) {
		place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"q","latitude":"abc"}`))
		require.NoError(t, err)
		assert.Nil(t, place.Latitude)
	})

	t.Run("empty string omitted", func(t *testing.T) {
		place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"q","latitude":""}`))
		require.NoError(t, err)
		assert.Nil(t, place.Latitude)
	})

	t.Run("null omitted", func(t *testing.T) {
		place, err := Normalize(decode(t, `{"name":"Fort","city":"Pune","desc":"q","latitude":null}`))
		require.NoError(t, err)
		assert.Nil(t, place.Latitude)
	})
}

func TestNormalizeVerifiedTruthiness(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`"true"`, true},
		{`false`, false},
		{`"false"`, false},
		{`"yes"`, false},
		{`1`, false},
	}
	for _, tc := range cases {
		place, err := Normalize(decode(t, `{"name":"F","city":"P","desc":"q","verified":`+tc.raw+`}`))
		require.NoError(t, err)
		assert.Equal(t, tc.want, place.Verified, "verified=%s", tc.raw)
	}
}

func TestNormalizeRatingCoercion(t *testing.T) {
	place, err := Normalize(decode(t, `{"name":"F","city":"P","desc":"q","rating":4.5}`))
	assert.NoError(t, err)
	assert.Equal(t, 4.5, place.Rating)

	place, err = Normalize(decode(t, `{"name":"F","city":"P","desc":"q","rating":"oops"}`))
	assert.NoError(t, err)
	assert.Equal(t, 0.0, place.Rating)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := DecodePlaceInput(strings.NewReader(`{"name":"F","city":"P","desc":"q","capacity":50}`))
	assert.Error(t, err)
}

func TestUpdateFieldsPartialMerge(t *testing.T) {
	fields := updateFields(decode(t, `{"name":"New Name","verified":true}`))

	assert.Equal(t, "New Name", fields["name"])
	assert.Equal(t, true, fields["verified"])
	assert.Contains(t, fields, "updatedAt")
	assert.NotContains(t, fields, "desc")
	assert.NotContains(t, fields, "category")
	assert.NotContains(t, fields, "latitude")
}

func TestUpdateFieldsSyncsCityAndLocation(t *testing.T) {
	fields := updateFields(decode(t, `{"location":"Goa"}`))
	assert.Equal(t, "Goa", fields["city"])
	assert.Equal(t, "Goa", fields["location"])
}
