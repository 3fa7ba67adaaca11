package places

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"underrated/models"
)

// FlexFloat accepts a JSON number or a numeric string. Admin forms post
// coordinates as strings; anything unparseable is treated as absent rather
// than rejected, so a junk latitude never blocks a save.
type FlexFloat struct {
	Value float64
	Set   bool
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	s := string(data)
	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.Value = v
	f.Set = true
	return nil
}

// FlexBool is truthy only for boolean true and the literal string "true".
type FlexBool struct {
	Value bool
	Set   bool
}

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	b.Set = true
	switch string(data) {
	case "true", `"true"`:
		b.Value = true
	}
	return nil
}

// PlaceInput is the request shape shared by place create and update.
type PlaceInput struct {
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Location   string    `json:"location"`
	Desc       string    `json:"desc"`
	Categories []string  `json:"categories"`
	Category   string    `json:"category"`
	MapURL     string    `json:"mapUrl"`
	Latitude   FlexFloat `json:"latitude"`
	Longitude  FlexFloat `json:"longitude"`
	BestTime   string    `json:"bestTime"`
	OpenDays   string    `json:"openDays"`
	Images     []string  `json:"images"`
	Image      string    `json:"image"`
	Rating     FlexFloat `json:"rating"`
	Verified   FlexBool  `json:"verified"`
}

// DecodePlaceInput reads a place payload, rejecting fields outside the
// documented shape.
func DecodePlaceInput(r io.Reader) (PlaceInput, error) {
	var in PlaceInput
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return PlaceInput{}, fmt.Errorf("invalid place payload: %w", err)
	}
	return in, nil
}

// Normalize validates required fields and fills documented defaults,
// producing a persistable Place without an id.
func Normalize(in PlaceInput) (models.Place, error) {
	name := strings.TrimSpace(in.Name)
	// The frontend historically sent either field; accept both.
	city := strings.TrimSpace(in.City)
	if city == "" {
		city = strings.TrimSpace(in.Location)
	}
	desc := strings.TrimSpace(in.Desc)

	if name == "" {
		return models.Place{}, fmt.Errorf("Place name is required")
	}
	if city == "" {
		return models.Place{}, fmt.Errorf("City / location is required")
	}
	if desc == "" {
		return models.Place{}, fmt.Errorf("Description is required")
	}

	categories := in.Categories
	if categories == nil {
		categories = []string{}
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = models.DefaultCategory
	}
	openDays := strings.TrimSpace(in.OpenDays)
	if openDays == "" {
		openDays = models.DefaultOpenDays
	}

	images := in.Images
	if images == nil {
		images = []string{}
	}
	image := strings.TrimSpace(in.Image)
	if image == "" && len(images) > 0 {
		image = images[0]
	}

	now := time.Now()
	place := models.Place{
		Name:       name,
		City:       city,
		Location:   city,
		Desc:       desc,
		Categories: categories,
		Category:   category,
		MapURL:     strings.TrimSpace(in.MapURL),
		BestTime:   strings.TrimSpace(in.BestTime),
		OpenDays:   openDays,
		Images:     images,
		Image:      image,
		Rating:     in.Rating.Value,
		Verified:   in.Verified.Value,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Coordinates are stored only when they parsed as finite numbers;
	// otherwise the fields stay off the document entirely.
	if in.Latitude.Set {
		lat := in.Latitude.Value
		place.Latitude = &lat
	}
	if in.Longitude.Set {
		lng := in.Longitude.Value
		place.Longitude = &lng
	}

	return place, nil
}
