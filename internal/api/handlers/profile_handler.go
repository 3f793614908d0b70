package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/devconnect/internal/services"
	"github.com/yoockh/devconnect/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetMe(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.ProfileInput
	if !bindJSON(c, "ProfileHandler.Upsert", &req) {
		return
	}

	p, err := h.svc.Upsert(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// ByUser answers 400 for unknown or malformed ids.
func (h *ProfileHandler) ByUser(c *gin.Context) {
	p, err := h.svc.GetByUser(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		status := 0
		if utils.IsCode(err, utils.CodeNotFound) {
			status = http.StatusBadRequest
		}
		writeErrorStatus(c, status, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteAccount(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Msg: "User removed as well as its profile"})
}

func (h *ProfileHandler) ByExperience(c *gin.Context) {
	p, err := h.svc.GetByExperience(c.Request.Context(), c.Param("exp_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.ExperienceInput
	if !bindJSON(c, "ProfileHandler.AddExperience", &req) {
		return
	}

	p, err := h.svc.AddExperience(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.ExperienceInput
	if !bindJSON(c, "ProfileHandler.UpdateExperience", &req) {
		return
	}

	list, err := h.svc.UpdateExperience(c.Request.Context(), userID, c.Param("exp_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.DeleteExperience(c.Request.Context(), userID, c.Param("exp_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) EducationByEntry(c *gin.Context) {
	list, err := h.svc.GetEducationByEntry(c.Request.Context(), c.Param("edu_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.EducationInput
	if !bindJSON(c, "ProfileHandler.AddEducation", &req) {
		return
	}

	p, err := h.svc.AddEducation(c.Request.Context(), userID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req services.EducationInput
	if !bindJSON(c, "ProfileHandler.UpdateEducation", &req) {
		return
	}

	list, err := h.svc.UpdateEducation(c.Request.Context(), userID, c.Param("edu_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *ProfileHandler) DeleteEducation(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	p, err := h.svc.DeleteEducation(c.Request.Context(), userID, c.Param("edu_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
