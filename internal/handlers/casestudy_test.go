package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/folio-dev/folio/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func caseStudyBody(title string, extra gin.H) gin.H {
	body := gin.H{
		"title":   title,
		"vision":  "A control plane for dispatch decisions.",
		"problem": "Manual coordination breaks at volume.",
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func createCaseStudy(t *testing.T, r *gin.Engine, token, title string, extra gin.H) models.CaseStudy {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/case-studies", token, caseStudyBody(title, extra))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var item models.CaseStudy
	decodeBody(t, w, &item)
	require.NotZero(t, item.ID)
	return item
}

func TestCaseStudyCRUD(t *testing.T) {
	r := setupRouter(t)
	owner := registerUser(t, r, "Ada", "ada@example.com")

	created := createCaseStudy(t, r, owner.Token, "ServiceOps", gin.H{
		"plannedFeatures": []string{"SLA-aware queueing"},
		"status":          "shipped",
	})
	assert.Equal(t, "shipped", created.Status)

	// Updating without a status keeps the stored one.
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/case-studies/%d", created.ID), owner.Token,
		caseStudyBody("ServiceOps v2", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated models.CaseStudy
	decodeBody(t, w, &updated)
	assert.Equal(t, "ServiceOps v2", updated.Title)
	assert.Equal(t, "shipped", updated.Status)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/case-studies/%d", created.ID), owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/case-studies/me", owner.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.CaseStudy
	decodeBody(t, w, &list)
	assert.Empty(t, list)
}

func TestCaseStudyOwnershipScoping(t *testing.T) {
	r := setupRouter(t)

	owner := registerUser(t, r, "Ada", "ada@example.com")
	intruder := registerUser(t, r, "Ben", "ben@example.com")

	item := createCaseStudy(t, r, owner.Token, "ServiceOps", nil)

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/case-studies/%d", item.ID), intruder.Token,
		caseStudyBody("Hijacked", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/case-studies/%d", item.ID), intruder.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPublicCaseStudiesServesAllOfOwners(t *testing.T) {
	r := setupRouter(t)

	owner := registerUser(t, r, "Ada", "ada@example.com")
	guest := registerUser(t, r, "Ben", "ben@example.com")

	createCaseStudy(t, r, owner.Token, "Second", gin.H{"sortOrder": 2, "status": "in-progress"})
	createCaseStudy(t, r, owner.Token, "First", gin.H{"sortOrder": 1, "status": "shipped"})
	createCaseStudy(t, r, guest.Token, "Guest Case", nil)

	// Unlike projects there is no visibility filter; everything of the
	// owner's is public, in sort order.
	w := doJSON(t, r, http.MethodGet, "/api/case-studies/public", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.CaseStudy
	decodeBody(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "First", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
}
