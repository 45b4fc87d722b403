package handlers

import (
	"net/http"
	"strconv"

	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type MateriHandler struct {
	materiService *services.MateriService
}

func NewMateriHandler(materiService *services.MateriService) *MateriHandler {
	return &MateriHandler{materiService: materiService}
}

type MateriRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255" example:"Jaringan Komputer"`
	Description string `json:"description" example:"Pengenalan jaringan"`
	FileURL     string `json:"file_url" example:"/uploads/abc.pdf"`
	VideoURL    string `json:"video_url" example:"https://youtu.be/xyz"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required" example:"false"`
}

// ListMateri godoc
// @Summary      List materi
// @Tags         materi
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Router       /api/v1/admin/materi [get]
func (h *MateriHandler) ListMateri(c *gin.Context) {
	materi, err := h.materiService.List(false)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

// CreateMateri godoc
// @Summary      Create materi
// @Tags         materi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MateriRequest true "Materi data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/materi [post]
func (h *MateriHandler) CreateMateri(c *gin.Context) {
	var req MateriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	materi, err := h.materiService.Create(services.MateriInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, materi)
}

// GetMateri godoc
// @Summary      Get materi with its quizzes
// @Tags         materi
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/materi/{id} [get]
func (h *MateriHandler) GetMateri(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	materi, err := h.materiService.Get(materiID, false)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

// UpdateMateri godoc
// @Summary      Update materi
// @Tags         materi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Param        request body MateriRequest true "Materi data"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/materi/{id} [put]
func (h *MateriHandler) UpdateMateri(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req MateriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	materi, err := h.materiService.Update(materiID, services.MateriInput{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		VideoURL:    req.VideoURL,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

// SetMateriActive godoc
// @Summary      Archive or restore materi
// @Tags         materi
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Param        request body SetActiveRequest true "Active flag"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/materi/{id}/active [put]
func (h *MateriHandler) SetMateriActive(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	materi, err := h.materiService.SetActive(materiID, *req.IsActive)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

// ListMateriMobile godoc
// @Summary      List active materi for students
// @Tags         mobile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Router       /api/v1/mobile/materi [get]
func (h *MateriHandler) ListMateriMobile(c *gin.Context) {
	materi, err := h.materiService.List(true)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

// GetMateriMobile godoc
// @Summary      Get active materi with its active quizzes
// @Tags         mobile
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Materi ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/mobile/materi/{id} [get]
func (h *MateriHandler) GetMateriMobile(c *gin.Context) {
	materiID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	materi, err := h.materiService.Get(materiID, true)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, materi)
}

func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, invalidIDErr(name)
	}
	return uint(id), nil
}
