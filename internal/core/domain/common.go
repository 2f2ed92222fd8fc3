package domain

import "time"

// Timestamps holds the creation and last update times of stored entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
