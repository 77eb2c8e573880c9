package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Profile is one-per-user, but the constraint lives in the upsert write
// path rather than a unique index: callers must always save through
// UpsertProfile-style handlers, never a raw insert.
type Profile struct {
	gorm.Model

	UserID      uint           `gorm:"not null;index" json:"user"`
	Name        string         `gorm:"not null" json:"name"`
	RoleTitle   string         `gorm:"not null" json:"roleTitle"`
	HeroTagline string         `gorm:"not null" json:"heroTagline"`
	ValueLine   string         `json:"valueLine"`
	About       string         `gorm:"not null" json:"about"`
	HeroImage   string         `json:"heroImage"` // stored blob name
	Skills      datatypes.JSON `json:"skills"`    // []{label, items}
	Contacts    datatypes.JSON `json:"contacts"`
}
