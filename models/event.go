package models

import "time"

// Event is a scheduled venue event.
type Event struct {
	ID           string    `bson:"id" json:"_id"`
	Date         time.Time `bson:"date" json:"Date"`
	Venue        string    `bson:"venue" json:"Venue"`
	Time         string    `bson:"time" json:"Time"`
	Participants int       `bson:"participants" json:"Participants"`
	Description  string    `bson:"description" json:"description"`
}
