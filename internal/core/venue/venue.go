package venue

import (
	"cmp"
	"slices"
	"strings"

	"github.com/taibuivan/fyyur/pkg/pointer"
	"github.com/taibuivan/fyyur/pkg/slice"
	"github.com/taibuivan/fyyur/pkg/slug"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// CreateInput is the payload of the venue creation command.
type CreateInput struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	Genres             []string `json:"genres"`
	Website            string   `json:"website"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	Name               *string   `json:"name"`
	City               *string   `json:"city"`
	State              *string   `json:"state"`
	Address            *string   `json:"address"`
	Phone              *string   `json:"phone"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	Genres             *[]string `json:"genres"`
	Website            *string   `json:"website"`
	SeekingTalent      *bool     `json:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description"`
}

// Filter holds the parameters of a venue search.
type Filter struct {
	Query string // case-insensitive substring of name
}

// Location groups the venues sharing a city and state.
// VenueIDs and VenueNames are parallel and ordered by venue id.
type Location struct {
	City       string   `json:"city"`
	State      string   `json:"state"`
	Slug       string   `json:"slug"`
	VenueIDs   []int64  `json:"venue_ids"`
	VenueNames []string `json:"venue_names"`
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldGenres             = "genres"
	FieldWebsite            = "website"
	FieldSeekingDescription = "seeking_description"
)

// Venue builds the record described by input, trimmed.
func (input CreateInput) Venue() *Venue {
	return &Venue{
		Name:               strings.TrimSpace(input.Name),
		City:               strings.TrimSpace(input.City),
		State:              strings.TrimSpace(input.State),
		Address:            strings.TrimSpace(input.Address),
		Phone:              strings.TrimSpace(input.Phone),
		ImageLink:          strings.TrimSpace(input.ImageLink),
		FacebookLink:       strings.TrimSpace(input.FacebookLink),
		Genres:             normalizeGenres(input.Genres),
		Website:            strings.TrimSpace(input.Website),
		SeekingTalent:      input.SeekingTalent,
		SeekingDescription: strings.TrimSpace(input.SeekingDescription),
	}
}

// Normalize trims every provided field.
func (input *UpdateInput) Normalize() {
	input.Name = pointer.Trim(input.Name)
	input.City = pointer.Trim(input.City)
	input.State = pointer.Trim(input.State)
	input.Address = pointer.Trim(input.Address)
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

// Apply copies the provided fields onto v.
func (input UpdateInput) Apply(v *Venue) {
	v.Name = pointer.Fallback(input.Name, v.Name)
	v.City = pointer.Fallback(input.City, v.City)
	v.State = pointer.Fallback(input.State, v.State)
	v.Address = pointer.Fallback(input.Address, v.Address)
	v.Phone = pointer.Fallback(input.Phone, v.Phone)
	v.ImageLink = pointer.Fallback(input.ImageLink, v.ImageLink)
	v.FacebookLink = pointer.Fallback(input.FacebookLink, v.FacebookLink)
	v.Genres = pointer.Fallback(input.Genres, v.Genres)
	v.Website = pointer.Fallback(input.Website, v.Website)
	v.SeekingTalent = pointer.Fallback(input.SeekingTalent, v.SeekingTalent)
	v.SeekingDescription = pointer.Fallback(input.SeekingDescription, v.SeekingDescription)
}

// GroupByLocation folds venues into one [Location] per (city, state), ordered
// by state then city, with the venues of each group ordered by id.
func GroupByLocation(venues []*Venue) []*Location {
	sorted := slices.Clone(venues)
	slices.SortFunc(sorted, func(a, b *Venue) int {
		return cmp.Or(
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.City, b.City),
			cmp.Compare(a.ID, b.ID),
		)
	})

	locations := make([]*Location, 0)
	var current *Location

	for _, v := range sorted {
		if current == nil || current.City != v.City || current.State != v.State {
			current = NewLocation(v.City, v.State)
			locations = append(locations, current)
		}
		current.VenueIDs = append(current.VenueIDs, v.ID)
		current.VenueNames = append(current.VenueNames, v.Name)
	}

	return locations
}

// NewLocation returns an empty group for city and state with its slug set.
func NewLocation(city, state string) *Location {
	return &Location{
		City:       city,
		State:      state,
		Slug:       slug.Join(city, state),
		VenueIDs:   []int64{},
		VenueNames: []string{},
	}
}

// normalizeGenres trims every entry and never returns nil.
func normalizeGenres(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return slice.Map(genres, strings.TrimSpace)
}
