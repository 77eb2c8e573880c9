package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/folio-dev/folio/db"
	"github.com/folio-dev/folio/internal/models"
	"github.com/folio-dev/folio/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileRequest struct {
	Name        string         `json:"name" binding:"required"`
	RoleTitle   string         `json:"roleTitle" binding:"required"`
	HeroTagline string         `json:"heroTagline" binding:"required"`
	ValueLine   string         `json:"valueLine"`
	About       string         `json:"about" binding:"required"`
	HeroImage   string         `json:"heroImage"`
	Skills      datatypes.JSON `json:"skills"`
	Contacts    datatypes.JSON `json:"contacts"`
}

func GetMyProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile

	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			log.Printf("Failed to fetch profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// UpsertProfile replaces the caller's profile wholesale, creating it on the
// first save. This is the only write path for profiles, which is what keeps
// them one-per-user without a uniqueness constraint.
func UpsertProfile(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body ProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var profile models.Profile

	err = db.DB.Where("user_id = ?", userID).First(&profile).Error

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to fetch profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	profile.UserID = userID
	profile.Name = body.Name
	profile.RoleTitle = body.RoleTitle
	profile.HeroTagline = body.HeroTagline
	profile.ValueLine = body.ValueLine
	profile.About = body.About
	profile.HeroImage = body.HeroImage
	profile.Skills = body.Skills
	profile.Contacts = body.Contacts

	if err := db.DB.Save(&profile).Error; err != nil {
		log.Printf("Failed to save profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

func GetPublicProfile(ctx *gin.Context) {
	owner, err := utils.FindOwnerUser()

	if err != nil {
		if errors.Is(err, utils.ErrOwnerNotConfigured) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Owner not configured"})
		} else {
			log.Printf("Failed to resolve owner: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	var profile models.Profile

	if err := db.DB.Where("user_id = ?", owner.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			log.Printf("Failed to fetch public profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
