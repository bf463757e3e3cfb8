package entity

import "time"

// Review is a rated comment attached to one campground. OwnerID is the
// authoring user, used only for the per-review authorization check.
type Review struct {
	ID           string    `json:"id"`
	CampgroundID string    `json:"campground_id"`
	Body         string    `json:"body"`
	Rating       int       `json:"rating"`
	OwnerID      string    `json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`

	Owner *User `json:"owner,omitempty"`
}
