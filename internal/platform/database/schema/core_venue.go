package schema

// VenueTable represents the 'venues' table
type VenueTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Genres             string
	Website            string
	SeekingTalent      string
	SeekingDescription string
}

// Venues is the schema definition for venues
var Venues = VenueTable{
	Table:              "venues",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Address:            "address",
	Phone:              "phone",
	ImageLink:          "image_link",
	FacebookLink:       "facebook_link",
	Genres:             "genres",
	Website:            "website",
	SeekingTalent:      "seeking_talent",
	SeekingDescription: "seeking_description",
}

func (t VenueTable) Columns() []string {
	return []string{t.ID, t.Name, t.City, t.State, t.Address, t.Phone, t.ImageLink, t.FacebookLink, t.Genres, t.Website, t.SeekingTalent, t.SeekingDescription}
}
