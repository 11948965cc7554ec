package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/go-taiga-tracker/internal/repository"
)

type MemberHandler struct {
	Repo *repository.PostgresRepo
}

func NewMemberHandler(repo *repository.PostgresRepo) *MemberHandler {
	return &MemberHandler{Repo: repo}
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	members, err := h.Repo.GetMembers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) ListTasks(c *gin.Context) {
	tasks, err := h.Repo.GetTasks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}
