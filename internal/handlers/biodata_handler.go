package handlers

import (
	"net/http"

	"matchmaker_backend/internal/services"
	"matchmaker_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BiodataHandler struct {
	*BaseHandler
	biodataService services.BiodataService
}

func NewBiodataHandler(base *BaseHandler, biodataService services.BiodataService) *BiodataHandler {
	return &BiodataHandler{
		BaseHandler:    base,
		biodataService: biodataService,
	}
}

func (h *BiodataHandler) RegisterRoutes(r *gin.RouterGroup, mw *RouteMiddleware) {
	r.PUT("/editBiodata", mw.Auth, h.Upsert)
	r.GET("/userBiodata", mw.Auth, h.GetOwn)

	// Browsing endpoints are public.
	r.GET("/allBiodata", h.ListAll)
	r.GET("/premiumBiodata", h.ListPremium)
	r.GET("/biodataDetails/:id", h.GetByID)
	r.GET("/suggestions", h.Suggestions)
}

// Upsert creates or updates the caller's profile. The profile keeps
// its numeric id across edits; a fresh profile gets the next one.
func (h *BiodataHandler) Upsert(c *gin.Context) {
	var req dto.EditBiodataRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if !h.RequireOwnEmail(c, req.Email) {
		return
	}

	outcome, err := h.biodataService.Upsert(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

func (h *BiodataHandler) GetOwn(c *gin.Context) {
	email := c.Query("email")

	if !h.RequireOwnEmail(c, email) {
		return
	}

	biodata, err := h.biodataService.GetByOwner(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, biodata)
}

func (h *BiodataHandler) ListAll(c *gin.Context) {
	list, err := h.biodataService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *BiodataHandler) ListPremium(c *gin.Context) {
	list, err := h.biodataService.ListPremium(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *BiodataHandler) GetByID(c *gin.Context) {
	id, err := ParseParamInt(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	biodata, err := h.biodataService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, biodata)
}

func (h *BiodataHandler) Suggestions(c *gin.Context) {
	gender := c.Query("gender")

	list, err := h.biodataService.Suggestions(c.Request.Context(), gender)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
