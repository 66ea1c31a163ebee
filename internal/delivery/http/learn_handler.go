package http

import (
	"github.com/labstack/echo/v4"

	"flashtrade/internal/catalog"
	"flashtrade/internal/usecase"
)

// LearnHandler serves the concept catalog and progress tracking
type LearnHandler struct {
	progressService *usecase.ProgressService
}

// NewLearnHandler creates a new LearnHandler
func NewLearnHandler(progressService *usecase.ProgressService) *LearnHandler {
	return &LearnHandler{progressService: progressService}
}

// Concepts returns the static concept catalog with per-concept completion
// GET /api/concepts
func (h *LearnHandler) Concepts(c echo.Context) error {
	completed := h.progressService.Completed()
	completedSet := make(map[string]bool, len(completed))
	for _, id := range completed {
		completedSet[id] = true
	}

	type conceptEntry struct {
		ID            string `json:"id"`
		Title         string `json:"title"`
		Description   string `json:"description"`
		ContentType   string `json:"content_type"`
		Difficulty    string `json:"difficulty"`
		EstimatedTime int    `json:"estimated_time"`
		Category      string `json:"category"`
		Completed     bool   `json:"completed"`
	}

	concepts := catalog.Concepts()
	out := make([]conceptEntry, 0, len(concepts))
	for _, concept := range concepts {
		out = append(out, conceptEntry{
			ID:            concept.ID,
			Title:         concept.Title,
			Description:   concept.Description,
			ContentType:   concept.ContentType,
			Difficulty:    concept.Difficulty,
			EstimatedTime: concept.EstimatedTime,
			Category:      concept.Category,
			Completed:     completedSet[concept.ID],
		})
	}
	return SuccessResponse(c, out)
}

// Complete marks a concept as completed (idempotent)
// POST /api/concepts/:id/complete
func (h *LearnHandler) Complete(c echo.Context) error {
	conceptID := c.Param("id")
	if _, ok := catalog.ConceptByID(conceptID); !ok {
		return NotFoundResponse(c, "Concept not found")
	}

	completed := h.progressService.MarkCompleted(c.Request().Context(), conceptID)
	return SuccessResponse(c, map[string]interface{}{
		"completed_concepts": completed,
	})
}
