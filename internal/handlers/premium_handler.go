package handlers

import (
	"net/http"

	"matchmaker_backend/internal/middleware"
	"matchmaker_backend/internal/services"
	"matchmaker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	*BaseHandler
	premiumService services.PremiumService
}

func NewPremiumHandler(base *BaseHandler, premiumService services.PremiumService) *PremiumHandler {
	return &PremiumHandler{
		BaseHandler:    base,
		premiumService: premiumService,
	}
}

func (h *PremiumHandler) RegisterRoutes(r *gin.RouterGroup, mw *RouteMiddleware) {
	r.POST("/premiumRequest", mw.Auth, h.Submit)
	r.GET("/premiumRequests", mw.Auth, mw.Admin, h.ListRequests)
	r.GET("/premiumCollection", h.ListApproved)

	r.PATCH("/users/premium/:id", mw.Auth, mw.Admin, h.Approve)
	r.PATCH("/biodata/premium/:email", mw.Auth, mw.Admin, h.Elevate)

	r.GET("/users/premium/:email", mw.Auth, middleware.RequireSelfParam("email"), h.CheckPremium)
}

// Submit files a premium request for the caller's own profile.
// A second submission for the same email is a no-op.
func (h *PremiumHandler) Submit(c *gin.Context) {
	var req dto.SubmitPremiumRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if !h.RequireOwnEmail(c, req.Email) {
		return
	}

	result, err := h.premiumService.SubmitRequest(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PremiumHandler) ListRequests(c *gin.Context) {
	list, err := h.premiumService.ListRequests(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *PremiumHandler) ListApproved(c *gin.Context) {
	list, err := h.premiumService.ListApproved(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *PremiumHandler) Approve(c *gin.Context) {
	id := c.Param("id")

	outcome, err := h.premiumService.ApproveRequest(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *PremiumHandler) Elevate(c *gin.Context) {
	email := c.Param("email")

	outcome, err := h.premiumService.ElevateBiodata(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *PremiumHandler) CheckPremium(c *gin.Context) {
	email := c.Param("email")

	premium, err := h.premiumService.IsPremium(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PremiumCheckResponse{Premium: premium})
}
