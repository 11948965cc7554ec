package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/go-taiga-tracker/internal/model"
)

// ITaigaService lets tests swap in a mock for the real client.
type ITaigaService interface {
	SyncAll(ctx context.Context) (*model.SyncRun, error)
}

type SyncHandler struct {
	Taiga ITaigaService
}

func NewSyncHandler(taiga ITaigaService) *SyncHandler {
	return &SyncHandler{Taiga: taiga}
}

func (h *SyncHandler) SyncTaiga(c *gin.Context) {
	log.Println("--- API TRIGGER: Taiga sync ---")
	run, err := h.Taiga.SyncAll(c.Request.Context())
	if err != nil {
		log.Printf("ERROR from SyncAll: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sync completed successfully", "run": run})
}
