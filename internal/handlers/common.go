package handlers

import (
	"github.com/toniliu672/ira-server-sub000/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, data} on the
// happy path, {success, error: {code, message}} otherwise. Clients render
// the message and branch on the code; they never parse internals.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ErrorBody struct {
	Code    string `json:"code" example:"NOT_FOUND"`
	Message string `json:"message" example:"quiz not found"`
}

type ErrorResponse struct {
	Success bool      `json:"success" example:"false"`
	Error   ErrorBody `json:"error"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondErr(c *gin.Context, err error) {
	code, message := apperr.CodeMessage(err)
	c.JSON(apperr.HTTPStatus(err), ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message},
	})
}

func respondBindErr(c *gin.Context, err error) {
	respondErr(c, apperr.Validation("INVALID_REQUEST", "%s", err.Error()))
}

func invalidIDErr(name string) error {
	return apperr.Validation("INVALID_ID", "invalid %s", name)
}

func quizInactiveErr() error {
	return apperr.NotFound("QUIZ_NOT_FOUND", "quiz not found")
}
