package venue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

/*
TestGroupByLocation checks ordering and that every venue lands in exactly one group.
*/
func TestGroupByLocation(t *testing.T) {
	venues := []*venue.Venue{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "The Tasting Room", City: "Oakland", State: "CA"},
	}

	locations := venue.GroupByLocation(venues)
	require.Len(t, locations, 3)

	assert.Equal(t, "Oakland", locations[0].City)
	assert.Equal(t, "San Francisco", locations[1].City)
	assert.Equal(t, "NY", locations[2].State)

	assert.Equal(t, []int64{1, 3}, locations[1].VenueIDs)
	assert.Equal(t, []string{"The Musical Hop", "Park Square Live Music & Coffee"}, locations[1].VenueNames)
	assert.Equal(t, "san-francisco-ca", locations[1].Slug)

	seen := map[int64]int{}
	for _, location := range locations {
		require.Len(t, location.VenueNames, len(location.VenueIDs))
		for _, id := range location.VenueIDs {
			seen[id]++
		}
	}
	assert.Equal(t, map[int64]int{1: 1, 2: 1, 3: 1, 4: 1}, seen)

	// The input order is left untouched.
	assert.Equal(t, int64(3), venues[0].ID)
}

/*
TestGroupByLocation_Empty returns an empty, non-nil slice.
*/
func TestGroupByLocation_Empty(t *testing.T) {
	locations := venue.GroupByLocation(nil)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

/*
TestCreateInput_Venue trims fields and defaults genres.
*/
func TestCreateInput_Venue(t *testing.T) {
	v := venue.CreateInput{Name: "  The Musical Hop ", City: " San Francisco"}.Venue()

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "San Francisco", v.City)
	assert.NotNil(t, v.Genres)
	assert.Empty(t, v.Genres)
}

/*
TestUpdateInput_Apply changes provided fields only.
*/
func TestUpdateInput_Apply(t *testing.T) {
	v := &venue.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", Genres: []string{"Jazz"}}

	input := venue.UpdateInput{
		City:          pointer.To("  Oakland "),
		Genres:        &[]string{" Jazz", "Swing "},
		SeekingTalent: pointer.To(true),
	}
	input.Normalize()
	input.Apply(v)

	assert.Equal(t, "The Musical Hop", v.Name)
	assert.Equal(t, "Oakland", v.City)
	assert.Equal(t, []string{"Jazz", "Swing"}, v.Genres)
	assert.True(t, v.SeekingTalent)
}
