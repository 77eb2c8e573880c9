package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Project struct {
	gorm.Model

	UserID      uint           `gorm:"not null;index" json:"user"`
	Title       string         `gorm:"not null" json:"title"`
	Problem     string         `gorm:"not null" json:"problem"`
	Solution    string         `gorm:"not null" json:"solution"`
	Stack       datatypes.JSON `json:"stack"`
	Features    datatypes.JSON `json:"features"`
	UXDecisions datatypes.JSON `json:"uxDecisions"`
	Links       datatypes.JSON `json:"links"` // {live, github, video}
	Media       datatypes.JSON `json:"media"` // []{filename, originalName}
	SortOrder   int            `gorm:"not null;default:0" json:"sortOrder"`
	Visibility  string         `gorm:"not null;default:'public'" json:"visibility"`
}
