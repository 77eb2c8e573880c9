package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/folio-dev/folio/db"
	"github.com/folio-dev/folio/internal/auth"
	"github.com/folio-dev/folio/internal/models"
	"github.com/folio-dev/folio/internal/types"
	"github.com/folio-dev/folio/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CloneTemplateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CloneTemplate registers a guest account seeded with a full copy of the
// owner's profile, projects, and case studies. The copy is best-effort and
// not wrapped in a transaction: a failure mid-way leaves whatever was
// already written, and a retry with the same email fails on the duplicate
// check rather than converging.
//
// The route is deliberately reachable without a session; it is the public
// onboarding path and is covered by the blanket rate limit like everything
// else.
func CloneTemplate(ctx *gin.Context) {
	var body CloneTemplateRequest

	if err := ctx.BindJSON(&body); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	owner, err := utils.FindOwnerUser()

	if err != nil {
		if errors.Is(err, utils.ErrOwnerNotConfigured) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Owner not configured yet"})
		} else {
			log.Printf("Failed to resolve owner: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var existingUser models.User

	err = db.DB.Where("email = ?", body.Email).First(&existingUser).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	newUser := models.User{
		Name:             body.Name,
		Email:            body.Email,
		PasswordHash:     string(passwordHash),
		Role:             models.RoleGuest,
		TemplateSourceID: &owner.ID,
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var ownerProfile models.Profile

	err = db.DB.Where("user_id = ?", owner.ID).First(&ownerProfile).Error

	if err == nil {
		clone := models.Profile{
			UserID:      newUser.ID,
			Name:        ownerProfile.Name,
			RoleTitle:   ownerProfile.RoleTitle,
			HeroTagline: ownerProfile.HeroTagline,
			ValueLine:   ownerProfile.ValueLine,
			About:       ownerProfile.About,
			HeroImage:   ownerProfile.HeroImage,
			Skills:      ownerProfile.Skills,
			Contacts:    ownerProfile.Contacts,
		}
		if err := db.DB.Create(&clone).Error; err != nil {
			log.Printf("Failed to clone profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to fetch owner profile: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var ownerProjects []models.Project

	if err := db.DB.Where("user_id = ?", owner.ID).Find(&ownerProjects).Error; err != nil {
		log.Printf("Failed to fetch owner projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(ownerProjects) > 0 {
		clones := make([]models.Project, 0, len(ownerProjects))
		for _, p := range ownerProjects {
			clones = append(clones, models.Project{
				UserID:      newUser.ID,
				Title:       p.Title,
				Problem:     p.Problem,
				Solution:    p.Solution,
				Stack:       p.Stack,
				Features:    p.Features,
				UXDecisions: p.UXDecisions,
				Links:       p.Links,
				Media:       p.Media,
				SortOrder:   p.SortOrder,
				Visibility:  p.Visibility,
			})
		}
		if err := db.DB.Create(&clones).Error; err != nil {
			log.Printf("Failed to clone projects: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	var ownerCaseStudies []models.CaseStudy

	if err := db.DB.Where("user_id = ?", owner.ID).Find(&ownerCaseStudies).Error; err != nil {
		log.Printf("Failed to fetch owner case studies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if len(ownerCaseStudies) > 0 {
		clones := make([]models.CaseStudy, 0, len(ownerCaseStudies))
		for _, cs := range ownerCaseStudies {
			clones = append(clones, models.CaseStudy{
				UserID:            newUser.ID,
				Title:             cs.Title,
				Vision:            cs.Vision,
				Problem:           cs.Problem,
				PlannedFeatures:   cs.PlannedFeatures,
				ArchitectureNotes: cs.ArchitectureNotes,
				Challenges:        cs.Challenges,
				Media:             cs.Media,
				Status:            cs.Status,
				SortOrder:         cs.SortOrder,
			})
		}
		if err := db.DB.Create(&clones).Error; err != nil {
			log.Printf("Failed to clone case studies: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, newUser.Role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"user": types.UserResponse{
			ID:    newUser.ID,
			Name:  newUser.Name,
			Email: newUser.Email,
			Role:  newUser.Role,
		},
		"token":   token,
		"message": "Template cloned",
	})
}
