package handlers

import (
	"net/http"

	"github.com/toniliu672/ira-server-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studentService *services.StudentService
	adminService   *services.AdminService
}

func NewStudentHandler(studentService *services.StudentService, adminService *services.AdminService) *StudentHandler {
	return &StudentHandler{studentService: studentService, adminService: adminService}
}

type StudentRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"siswa01"`
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Budi Santoso"`
	Password string `json:"password" binding:"required,min=6" example:"rahasia1"`
	Kelas    string `json:"kelas" example:"XI-A"`
}

type UpdateStudentRequest struct {
	Username string `json:"username" binding:"omitempty,min=3,max=100"`
	Name     string `json:"name" binding:"omitempty,min=1,max=255"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Kelas    string `json:"kelas"`
}

type AdminRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100" example:"operator"`
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Operator Dua"`
	Password string `json:"password" binding:"required,min=6" example:"rahasia1"`
}

type UpdateAdminRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=255"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

// ListStudents godoc
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Router       /api/v1/admin/students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	students, err := h.studentService.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, students)
}

// CreateStudent godoc
// @Summary      Create a student account
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StudentRequest true "Student data"
// @Success      201 {object} Response
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	student, err := h.studentService.Create(services.StudentInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
		Kelas:    req.Kelas,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, student)
}

// UpdateStudent godoc
// @Summary      Update a student account
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Student ID"
// @Param        request body UpdateStudentRequest true "Student data"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	studentID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	student, err := h.studentService.Update(studentID, services.StudentInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
		Kelas:    req.Kelas,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary      Delete a student account
// @Description  Rejected while the student has recorded answers
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Student ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	studentID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.studentService.Delete(studentID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": studentID})
}

// GetProfile godoc
// @Summary      Student profile with cached averages
// @Tags         mobile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Router       /api/v1/mobile/profile [get]
func (h *StudentHandler) GetProfile(c *gin.Context) {
	studentID := c.GetUint("user_id")

	student, err := h.studentService.Get(studentID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, student)
}

// ListAdmins godoc
// @Summary      List admin accounts
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} Response
// @Router       /api/v1/admin/admins [get]
func (h *StudentHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.List()
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, admins)
}

// CreateAdmin godoc
// @Summary      Create an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AdminRequest true "Admin data"
// @Success      201 {object} Response
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/admins [post]
func (h *StudentHandler) CreateAdmin(c *gin.Context) {
	var req AdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	admin, err := h.adminService.Create(services.AdminInput{
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, admin)
}

// UpdateAdmin godoc
// @Summary      Update an admin account
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Admin ID"
// @Param        request body UpdateAdminRequest true "Admin data"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/admins/{id} [put]
func (h *StudentHandler) UpdateAdmin(c *gin.Context) {
	adminID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindErr(c, err)
		return
	}

	admin, err := h.adminService.Update(adminID, services.AdminInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, admin)
}

// DeleteAdmin godoc
// @Summary      Delete an admin account
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Admin ID"
// @Success      200 {object} Response
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/admins/{id} [delete]
func (h *StudentHandler) DeleteAdmin(c *gin.Context) {
	adminID, err := parseID(c, "id")
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.adminService.Delete(adminID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": adminID})
}
