package travelplan

import "time"

type Stop struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	JourneyRef string `groups:"internal" bson:",omitempty"`

	// Upstream identifier into the Place Directory. Correlates a map
	// marker with a scheduled Stop.
	PlaceRef string `groups:"basic" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	PrimaryName string `groups:"basic" bson:",omitempty"`
	Address     string `groups:"basic" bson:",omitempty"`

	Location *Location `groups:"basic" bson:",omitempty"`

	Photos []string `groups:"detailed" json:",omitempty" bson:",omitempty"`

	// Date is YYYY-MM-DD, StartTime is HH:mm (24 hour). Identity, name,
	// address & location are immutable after creation - only these two
	// fields ever change on update.
	Date      string `groups:"basic" bson:",omitempty"`
	StartTime string `groups:"basic" bson:",omitempty"`
}

// ValidateSchedule checks the Stop's date & start time against the
// fixed format contract.
func (s *Stop) ValidateSchedule() error {
	if _, err := ParseDate(s.Date); err != nil {
		return err
	}
	if _, err := ParseClock(s.StartTime); err != nil {
		return err
	}

	return nil
}

// DateTime resolves the Stop's date & start time into a single instant
// in the given location.
func (s *Stop) DateTime(location *time.Location) (time.Time, error) {
	if err := s.ValidateSchedule(); err != nil {
		return time.Time{}, err
	}

	dateTime, _ := time.ParseInLocation(DateFormat+" "+ClockFormat, s.Date+" "+s.StartTime, location)

	return dateTime, nil
}
