package travelplan

// CandidatePlace is an unscheduled point of interest from the Place
// Directory. It only exists while the selection editor is open & is
// never persisted.
type CandidatePlace struct {
	PlaceRef string `groups:"basic" json:"place_id"`

	PrimaryName string `groups:"basic" json:"name"`
	Address     string `groups:"basic" json:"address"`

	Location *Location `groups:"basic" json:"location"`

	Rating float64 `groups:"detailed" json:"rating"`

	Photos []string `groups:"detailed" json:"photos,omitempty"`
}
