package handlers

import (
	"net/http"

	"emoquiz-service/internal/middleware"
	"emoquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CompletionHandler struct {
	Service *service.CompletionService
}

func NewCompletionHandler(s *service.CompletionService) *CompletionHandler {
	return &CompletionHandler{Service: s}
}

// Submit accepts a multipart form: exercise_id, evidence_type, and either
// evidence_text or a file part named "file", plus an optional reflection.
func (h *CompletionHandler) Submit(c *gin.Context) {
	input := service.SubmitCompletionInput{
		ExerciseID:   c.PostForm("exercise_id"),
		EvidenceType: c.PostForm("evidence_type"),
		EvidenceText: c.PostForm("evidence_text"),
		Reflection:   c.PostForm("reflection"),
	}
	if input.ExerciseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "exercise_id is required"})
		return
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
			return
		}
		defer f.Close()
		input.File = &service.EvidenceFile{
			Name:        fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Size:        fileHeader.Size,
			Reader:      f,
		}
	}

	record, message, err := h.Service.Submit(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"completion": record,
		"message":    message,
	})
}

func (h *CompletionHandler) Timeline(c *gin.Context) {
	records, err := h.Service.Timeline(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"completions": records})
}
