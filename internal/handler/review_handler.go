package handler

import (
	"errors"
	"net/http"
	"strconv"

	"jobhub/internal/dto"
	"jobhub/internal/models"
	"jobhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review/interview mutation routes.
func (h *ReviewHandler) RegisterRoutes(protected, moderator *gin.RouterGroup) {
	protected.POST("/companies/:id/reviews", h.CreateReview)
	protected.POST("/companies/:id/interviews", h.CreateInterview)

	moderator.PUT("/reviews/:id/approve", h.ApproveReview)
	moderator.DELETE("/reviews/:id", h.DeleteReview)
	moderator.PUT("/interviews/:id/approve", h.ApproveInterview)
	moderator.DELETE("/interviews/:id", h.DeleteInterview)
}

// CreateReview submits a review for a company (pending moderation).
// POST /api/companies/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), userID.(string), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSalaryTooHigh):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(review))
}

// ApproveReview accepts a pending review for public display.
// PUT /api/moderation/reviews/:id/approve
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	review, err := h.reviewService.ApproveReview(c.Request.Context(), reviewID)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// DeleteReview soft-deletes a review.
// DELETE /api/moderation/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review ID"})
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), reviewID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// CreateInterview submits an interview experience (pending moderation).
// POST /api/companies/:id/interviews
func (h *ReviewHandler) CreateInterview(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid company ID"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateInterviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interview, err := h.reviewService.CreateInterview(c.Request.Context(), userID.(string), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSalaryTooHigh):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrCompanyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "company not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToInterviewResponse(interview))
}

// ApproveInterview accepts a pending interview for public display.
// PUT /api/moderation/interviews/:id/approve
func (h *ReviewHandler) ApproveInterview(c *gin.Context) {
	interviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview ID"})
		return
	}

	interview, err := h.reviewService.ApproveInterview(c.Request.Context(), interviewID)
	if err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToInterviewResponse(interview))
}

// DeleteInterview soft-deletes an interview.
// DELETE /api/moderation/interviews/:id
func (h *ReviewHandler) DeleteInterview(c *gin.Context) {
	interviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview ID"})
		return
	}

	if err := h.reviewService.DeleteInterview(c.Request.Context(), interviewID); err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "interview not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "interview deleted"})
}
