package handlers

import (
	"net/http"

	"matchmaker_backend/internal/services"
	"matchmaker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, mw *RouteMiddleware) {
	r.GET("/reviews", h.ListReviews)
	r.POST("/reviews", mw.Auth, h.CreateReview)
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	list, err := h.reviewService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if !h.RequireOwnEmail(c, req.Email) {
		return
	}

	result, err := h.reviewService.Create(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
