package create_backup

import (
	"net/http"
	"time"

	"github.com/m04kA/SIA-BookingService/internal/api/handlers"
)

// BackupResponse HTTP response model
type BackupResponse struct {
	LastBackup   string `json:"lastBackup"`
	DatabaseSize string `json:"databaseSize"`
	File         string `json:"file,omitempty"`
}

type Handler struct {
	useCase BackupUseCase
	logger  Logger
}

func NewHandler(useCase BackupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/backup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Backup(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/backup - Failed to create backup: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/backup - Backup created, size=%s", result.Size)
	handlers.RespondJSON(w, http.StatusOK, BackupResponse{
		LastBackup:   result.At.UTC().Format(time.RFC3339),
		DatabaseSize: result.Size,
		File:         result.Path,
	})
}
