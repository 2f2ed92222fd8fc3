package models

import "time"

// Timestamps are the row bookkeeping columns shared by all tables.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
