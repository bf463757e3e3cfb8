package entity

import "time"

// Campground is the reviewable listing. OwnerID references the user that
// created it; only the owner may mutate or delete it. Reviews belong to
// exactly one campground and do not outlive it.
type Campground struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	ImageURL    string    `json:"image"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Resolved for presentation, not persisted on this row.
	Owner   *User    `json:"owner,omitempty"`
	Reviews []Review `json:"reviews,omitempty"`
}
