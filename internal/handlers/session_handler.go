package handlers

import (
	"net/http"

	"emoquiz-service/internal/middleware"
	"emoquiz-service/internal/models"
	"emoquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// sessionView hides the raw answer map behind progress figures; clients
// only ever need the current question and how far along they are.
func sessionView(session *models.QuizSession, total int) gin.H {
	return gin.H{
		"id":               session.ID,
		"phase":            session.Phase,
		"current_question": session.CurrentQuestion,
		"answered":         len(session.Answers),
		"total_questions":  total,
		"start_time":       session.StartTime,
		"end_time":         session.EndTime,
	}
}

func (h *SessionHandler) CreateOrResume(c *gin.Context) {
	session, err := h.Service.CurrentOrCreate(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Start(c *gin.Context) {
	session, err := h.Service.Start(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Answer(c *gin.Context) {
	var body struct {
		Value int `json:"value" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value must be an integer between 1 and 5"})
		return
	}

	session, err := h.Service.Answer(c.Request.Context(), middleware.UserID(c), c.Param("id"), body.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Next(c *gin.Context) {
	session, err := h.Service.Next(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Previous(c *gin.Context) {
	session, err := h.Service.Previous(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Restart(c *gin.Context) {
	session, err := h.Service.Restart(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionView(session, h.Service.Catalog.TotalQuestionCount()))
}

func (h *SessionHandler) Results(c *gin.Context) {
	result, err := h.Service.Results(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
