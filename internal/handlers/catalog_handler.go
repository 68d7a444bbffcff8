package handlers

import (
	"net/http"
	"strconv"

	"emoquiz-service/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"pillars":         h.Catalog.Pillars(),
		"total_questions": h.Catalog.TotalQuestionCount(),
	})
}

func (h *CatalogHandler) GetPillar(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	pillars := h.Catalog.Pillars()
	if err != nil || index < 0 || index >= len(pillars) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pillar not found"})
		return
	}
	c.JSON(http.StatusOK, pillars[index])
}
