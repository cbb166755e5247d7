package artist

import (
	"strings"

	"github.com/taibuivan/fyyur/pkg/pointer"
	"github.com/taibuivan/fyyur/pkg/slice"
)

// Artist is a performer that can be booked at venues.
type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// CreateInput is the payload of the artist creation command.
type CreateInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name               *string   `json:"name"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Phone              *string   `json:"phone"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	Genres             *[]string `json:"genres"`
	Website            *string   `json:"website"`
	SeekingVenue       *bool     `json:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description"`
}

// Filter holds the parameters for an artist search.
type Filter struct {
	Query string // case-insensitive substring of name
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldGenres             = "genres"
	FieldWebsite            = "website"
	FieldSeekingDescription = "seeking_description"
)

// Artist builds the record described by input, trimmed.
func (input CreateInput) Artist() *Artist {
	return &Artist{
		Name:               strings.TrimSpace(input.Name),
		City:               strings.TrimSpace(input.City),
		State:              strings.TrimSpace(input.State),
		Phone:              strings.TrimSpace(input.Phone),
		ImageLink:          strings.TrimSpace(input.ImageLink),
		FacebookLink:       strings.TrimSpace(input.FacebookLink),
		Genres:             normalizeGenres(input.Genres),
		Website:            strings.TrimSpace(input.Website),
		SeekingVenue:       input.SeekingVenue,
		SeekingDescription: strings.TrimSpace(input.SeekingDescription),
	}
}

// Normalize trims every provided field.
func (input *UpdateInput) Normalize() {
	input.Name = pointer.Trim(input.Name)
	input.City = pointer.Trim(input.City)
	input.State = pointer.Trim(input.State)
	input.Phone = pointer.Trim(input.Phone)
	input.ImageLink = pointer.Trim(input.ImageLink)
	input.FacebookLink = pointer.Trim(input.FacebookLink)
	input.Website = pointer.Trim(input.Website)
	input.SeekingDescription = pointer.Trim(input.SeekingDescription)

	if input.Genres != nil {
		genres := normalizeGenres(*input.Genres)
		input.Genres = &genres
	}
}

// Apply copies the provided fields onto a and reports whether the image link changed.
func (input UpdateInput) Apply(a *Artist) (imageChanged bool) {
	imageChanged = input.ImageLink != nil && *input.ImageLink != a.ImageLink

	a.Name = pointer.Fallback(input.Name, a.Name)
	a.City = pointer.Fallback(input.City, a.City)
	a.State = pointer.Fallback(input.State, a.State)
	a.Phone = pointer.Fallback(input.Phone, a.Phone)
	a.ImageLink = pointer.Fallback(input.ImageLink, a.ImageLink)
	a.FacebookLink = pointer.Fallback(input.FacebookLink, a.FacebookLink)
	a.Genres = pointer.Fallback(input.Genres, a.Genres)
	a.Website = pointer.Fallback(input.Website, a.Website)
	a.SeekingVenue = pointer.Fallback(input.SeekingVenue, a.SeekingVenue)
	a.SeekingDescription = pointer.Fallback(input.SeekingDescription, a.SeekingDescription)

	return imageChanged
}

// normalizeGenres trims every entry and never returns nil.
func normalizeGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return slice.Map(genres, strings.TrimSpace)
}
