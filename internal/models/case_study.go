package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CaseStudy struct {
	gorm.Model

	UserID            uint           `gorm:"not null;index" json:"user"`
	Title             string         `gorm:"not null" json:"title"`
	Vision            string         `gorm:"not null" json:"vision"`
	Problem           string         `gorm:"not null" json:"problem"`
	PlannedFeatures   datatypes.JSON `json:"plannedFeatures"`
	ArchitectureNotes datatypes.JSON `json:"architectureNotes"`
	Challenges        datatypes.JSON `json:"challenges"`
	Media             datatypes.JSON `json:"media"` // []{filename, originalName}
	Status            string         `gorm:"not null;default:'in-progress'" json:"status"`
	SortOrder         int            `gorm:"not null;default:0" json:"sortOrder"`
}
