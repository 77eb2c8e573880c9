package models

import "gorm.io/gorm"

const (
	RoleOwner = "owner"
	RoleGuest = "guest"
)

type User struct {
	gorm.Model

	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'guest'" json:"role"`

	// Set when the account was seeded by cloning another user's content.
	TemplateSourceID *uint `json:"-"`

	// Relationships
	Profile     *Profile    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Projects    []Project   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	CaseStudies []CaseStudy `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
