package schema

// ShowTable represents the 'shows' table
type ShowTable struct {
	Table           string
	ID              string
	StartTime       string
	ArtistID        string
	VenueID         string
	ArtistName      string
	VenueName       string
	ArtistImageLink string
}

// Shows is the schema definition for shows
var Shows = ShowTable{
	Table:           "shows",
	ID:              "id",
	StartTime:       "start_time",
	ArtistID:        "artist_id",
	VenueID:         "venue_id",
	ArtistName:      "artist_name",
	VenueName:       "venue_name",
	ArtistImageLink: "artist_image_link",
}

func (t ShowTable) Columns() []string {
	return []string{t.ID, t.StartTime, t.ArtistID, t.VenueID, t.ArtistName, t.VenueName, t.ArtistImageLink}
}
