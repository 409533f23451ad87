package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"docsearch/internal/model"
	"docsearch/internal/preview"
	"docsearch/internal/service"
)

// PreviewManager is the preview session API used by the HTTP layer.
// *preview.Manager satisfies it.
type PreviewManager interface {
	Open(ctx context.Context, doc model.Document) (preview.Snapshot, error)
	Reload(ctx context.Context, id string) (preview.Snapshot, error)
	Get(id string) (preview.Snapshot, error)
	SetPage(id string, n int) (preview.Snapshot, error)
	SetZoom(id string, delta float64) (preview.Snapshot, error)
	Close(id string)
}

var _ PreviewManager = (*preview.Manager)(nil)

type openPreviewRequest struct {
	DocumentID string `json:"document_id"`
}

type setPageRequest struct {
	Page *int `json:"page"`
}

type setZoomRequest struct {
	Delta *float64 `json:"delta"`
}

// OpenPreview starts a preview session for a catalog document. Paged documents come
// back in status "loading"; poll GetPreview for the outcome.
//
// @Summary     Open preview
// @Tags        previews
// @Accept      json
// @Produce     json
// @Param       body body openPreviewRequest true "document to preview"
// @Success     201 {object} preview.Snapshot
// @Failure     400 {object} errorPayload
// @Failure     404 {object} errorPayload
// @Router      /previews [post]
func OpenPreview(docSvc service.DocumentService, previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req openPreviewRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if req.DocumentID == "" {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "document_id is required")
		}

		doc, err := docSvc.Get(c.UserContext(), req.DocumentID)
		if err != nil {
			return documentError(c, err)
		}

		snap, err := previews.Open(c.UserContext(), *doc)
		if err != nil {
			return previewError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(snap)
	}
}

// GetPreview returns the current session snapshot.
//
// @Summary     Get preview
// @Tags        previews
// @Produce     json
// @Param       id path string true "session ID"
// @Success     200 {object} preview.Snapshot
// @Failure     404 {object} errorPayload
// @Router      /previews/{id} [get]
func GetPreview(previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := previews.Get(c.Params("id"))
		if err != nil {
			return previewError(c, err)
		}
		return c.JSON(snap)
	}
}

// ReloadPreview retries loading the session's document.
//
// @Summary     Reload preview
// @Tags        previews
// @Produce     json
// @Param       id path string true "session ID"
// @Success     200 {object} preview.Snapshot
// @Failure     404 {object} errorPayload
// @Failure     409 {object} errorPayload
// @Router      /previews/{id}/reload [post]
func ReloadPreview(previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap, err := previews.Reload(c.UserContext(), c.Params("id"))
		if err != nil {
			return previewError(c, err)
		}
		return c.JSON(snap)
	}
}

// SetPreviewPage moves to a page; out-of-range values are clamped.
//
// @Summary     Set preview page
// @Tags        previews
// @Accept      json
// @Produce     json
// @Param       id   path string         true "session ID"
// @Param       body body setPageRequest true "target page"
// @Success     200 {object} preview.Snapshot
// @Failure     404 {object} errorPayload
// @Failure     409 {object} errorPayload
// @Router      /previews/{id}/page [put]
func SetPreviewPage(previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req setPageRequest
		if err := c.BodyParser(&req); err != nil || req.Page == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "page is required")
		}
		snap, err := previews.SetPage(c.Params("id"), *req.Page)
		if err != nil {
			return previewError(c, err)
		}
		return c.JSON(snap)
	}
}

// SetPreviewZoom changes the zoom by delta; the result is clamped to [0.5, 2.0].
//
// @Summary     Set preview zoom
// @Tags        previews
// @Accept      json
// @Produce     json
// @Param       id   path string         true "session ID"
// @Param       body body setZoomRequest true "zoom delta"
// @Success     200 {object} preview.Snapshot
// @Failure     404 {object} errorPayload
// @Failure     409 {object} errorPayload
// @Router      /previews/{id}/zoom [put]
func SetPreviewZoom(previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req setZoomRequest
		if err := c.BodyParser(&req); err != nil || req.Delta == nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "delta is required")
		}
		snap, err := previews.SetZoom(c.Params("id"), *req.Delta)
		if err != nil {
			return previewError(c, err)
		}
		return c.JSON(snap)
	}
}

// ClosePreview discards a session. Closing an unknown session succeeds.
//
// @Summary     Close preview
// @Tags        previews
// @Param       id path string true "session ID"
// @Success     204
// @Router      /previews/{id} [delete]
func ClosePreview(previews PreviewManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		previews.Close(c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func previewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, preview.ErrSessionNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "preview session not found")
	case errors.Is(err, preview.ErrInvalidStateTransition):
		return writeError(c, fiber.StatusConflict, "INVALID_STATE", "operation not allowed in the current preview state")
	case errors.Is(err, preview.ErrSessionClosed):
		return writeError(c, fiber.StatusConflict, "SESSION_CLOSED", "preview session is closed")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
