package handlers

import (
	"net/http"

	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type StudentTokenResponse struct {
	Token    string `json:"token"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// LoginAdmin godoc
// @Summary      Admin login
// @Description  Authenticate a dashboard admin and issue a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} Response
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/admin/login [post]
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	token, err := h.authService.LoginAdmin(req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, TokenResponse{Token: token})
}

// LoginStudent godoc
// @Summary      Student login
// @Description  Authenticate a mobile student and issue a JWT
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} Response
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/student/login [post]
func (h *AuthHandler) LoginStudent(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	token, student, err := h.authService.LoginStudent(req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	respond(c, http.StatusOK, StudentTokenResponse{
		Token:    token,
		ID:       student.ID,
		Username: student.Username,
		Name:     student.Name,
	})
}
