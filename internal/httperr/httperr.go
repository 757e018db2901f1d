package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response é o envelope de erro devolvido por todos os handlers.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, "Erro interno do servidor")
}

// Validation devolve 400 com a lista de erros por campo.
func Validation(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Message: "Dados inválidos",
		Errors:  errs,
	})
}
