package travelplan

import "time"

type Journey struct {
	PrimaryIdentifier string `groups:"basic" bson:",omitempty"`

	CreationDateTime     time.Time `groups:"detailed" bson:",omitempty"`
	ModificationDateTime time.Time `groups:"detailed" bson:",omitempty"`

	Owner string `groups:"internal" bson:",omitempty"`

	Title       string `groups:"basic" bson:",omitempty"`
	Description string `groups:"basic" bson:",omitempty"`

	// Derived from the first & last ordered Stop, never stored
	StartDate string `groups:"basic" json:",omitempty" bson:"-"`
	EndDate   string `groups:"basic" json:",omitempty" bson:"-"`
}
