package utils

import (
	"errors"
	"os"
	"strings"

	"github.com/folio-dev/folio/db"
	"github.com/folio-dev/folio/internal/models"
	"gorm.io/gorm"
)

// ErrOwnerNotConfigured is returned when no user satisfies the owner
// resolution rules. Public read paths treat it as a recoverable not-found.
var ErrOwnerNotConfigured = errors.New("owner not configured")

// FindOwnerUser resolves the distinguished user whose content backs the
// public read paths. A configured TEMPLATE_OWNER_EMAIL takes precedence
// over the role flag when that user exists.
func FindOwnerUser() (*models.User, error) {
	if email := os.Getenv("TEMPLATE_OWNER_EMAIL"); email != "" {
		var user models.User
		err := db.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	var owner models.User
	err := db.DB.Where("role = ?", models.RoleOwner).First(&owner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOwnerNotConfigured
	}
	if err != nil {
		return nil, err
	}

	return &owner, nil
}
