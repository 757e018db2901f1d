package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK devolve a entidade crua (leituras por id).
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List devolve sempre um array JSON, nunca null.
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, items)
}

// Created devolve 201 com a entidade sob a chave do seu nome.
func Created(c *gin.Context, key string, entity any, message string) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		key:       entity,
		"message": message,
	})
}

// Updated devolve 200 com a entidade sob a chave do seu nome.
func Updated(c *gin.Context, key string, entity any, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		key:       entity,
		"message": message,
	})
}

// Deleted devolve 200 apenas com a confirmação.
func Deleted(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
