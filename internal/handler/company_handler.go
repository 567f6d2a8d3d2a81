package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"jobhub/internal/dto"
	"jobhub/internal/service"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// RegisterRoutes registers company routes across the public, authenticated
// and moderator groups.
func (h *CompanyHandler) RegisterRoutes(public, protected, moderator *gin.RouterGroup) {
	public.GET("/home", h.Home)
	public.GET("/totals", h.Totals)
	public.GET("/companies/names", h.Names)
	public.GET("/companies/:slug", h.Get)
	public.GET("/companies/:slug/salary-chart", h.SalaryChart)
	public.GET("/industries", h.Industries)
	public.GET("/cities", h.Cities)
	public.GET("/benefits", h.Benefits)
	public.GET("/donates", h.Donates)

	protected.POST("/companies", h.Create)

	moderator.PUT("/companies/:id/moderate", h.Moderate)
	moderator.PUT("/companies/:id/legal-issue", h.LegalIssue)
}

// Home serves the landing-page lists.
// GET /api/home
func (h *CompanyHandler) Home(c *gin.Context) {
	home, err := h.companyService.Home(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, home)
}

// Totals serves the site-wide counters.
// GET /api/totals
func (h *CompanyHandler) Totals(c *gin.Context) {
	totals, err := h.companyService.Totals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}

// Get returns a company page by slug.
// GET /api/companies/:slug
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// SalaryChart returns the 8-quarter salary trend for a company.
// GET /api/companies/:slug/salary-chart
func (h *CompanyHandler) SalaryChart(c *gin.Context) {
	buckets, err := h.companyService.SalaryTimeline(c.Request.Context(), c.Param("slug"), time.Now())
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buckets)
}

// Names returns the cached company name list.
// GET /api/companies/names
func (h *CompanyHandler) Names(c *gin.Context) {
	names, err := h.companyService.Names(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, names)
}

// Industries returns the cached industry list.
// GET /api/industries
func (h *CompanyHandler) Industries(c *gin.Context) {
	industries, err := h.companyService.Industries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, industries)
}

// Cities returns the cached city list.
// GET /api/cities
func (h *CompanyHandler) Cities(c *gin.Context) {
	cities, err := h.companyService.Cities(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cities)
}

// Benefits returns the cached benefit list.
// GET /api/benefits
func (h *CompanyHandler) Benefits(c *gin.Context) {
	benefits, err := h.companyService.Benefits(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, benefits)
}

// Donates returns the cached donate list.
// GET /api/donates
func (h *CompanyHandler) Donates(c *gin.Context) {
	donates, err := h.companyService.Donates(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, donates)
}

// Create adds a user-generated company (pending moderation).
// POST /api/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCompanyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), userID.(string), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, company)
}

// Moderate applies moderation and trait flags to a company.
// PUT /api/moderation/companies/:id/moderate
func (h *CompanyHandler) Moderate(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	var req dto.ModerateCompanyDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := h.companyService.Moderate(c.Request.Context(), companyID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, company)
}

// LegalIssue sets or clears a company's legal-issue flag, propagating it to
// the company's reviews and interviews.
// PUT /api/moderation/companies/:id/legal-issue
func (h *CompanyHandler) LegalIssue(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	var req struct {
		HasLegalIssue bool `json:"has_legal_issue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.companyService.PropagateLegalIssue(c.Request.Context(), companyID, req.HasLegalIssue); err != nil {
		if errors.Is(err, service.ErrCompanyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "legal issue flag updated"})
}
