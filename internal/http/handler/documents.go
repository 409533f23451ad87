package handler

import (
	"errors"
	"time"

	"github.com/docker/go-units"
	"github.com/gofiber/fiber/v2"

	"docsearch/internal/model"
	"docsearch/internal/search"
	"docsearch/internal/service"
)

// documentResponse is a catalog entry as shown in the results list.
type documentResponse struct {
	model.Document
	Profile   model.TypeProfile `json:"profile"`
	SizeHuman string            `json:"size_human"`
}

type searchResponse struct {
	Data  []documentResponse `json:"data"`
	Total int                `json:"total"`
	Query string             `json:"query"`
}

type openResponse struct {
	URL string `json:"url"`
}

func toDocumentResponse(d model.Document) documentResponse {
	return documentResponse{
		Document:  d,
		Profile:   d.Profile(),
		SizeHuman: units.HumanSize(float64(d.SizeBytes)),
	}
}

// SearchDocuments runs a catalog query. Without q and filters it browses the whole catalog.
// Unknown type names and malformed dates are ignored rather than rejected.
//
// @Summary     Search documents
// @Tags        documents
// @Produce     json
// @Param       q    query string false "free-text query over title and content"
// @Param       type query string false "document type (pdf, docx, doc, xlsx, xls, txt, other)"
// @Param       from query string false "lower bound on last_modified (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string false "upper bound on last_modified (RFC3339 or YYYY-MM-DD, inclusive day)"
// @Success     200 {object} searchResponse
// @Failure     500 {object} errorPayload
// @Router      /documents [get]
func SearchDocuments(docSvc service.DocumentService, loc *time.Location) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		filters := search.ParseFilters(c.Query("type"), c.Query("from"), c.Query("to"), loc)

		res, err := docSvc.Search(c.UserContext(), q, filters)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		out := searchResponse{
			Data:  make([]documentResponse, 0, len(res.Items)),
			Total: res.Total,
			Query: res.Query,
		}
		for _, d := range res.Items {
			out.Data = append(out.Data, toDocumentResponse(d))
		}
		return c.JSON(out)
	}
}

// GetDocument returns one catalog entry.
//
// @Summary     Get document
// @Tags        documents
// @Produce     json
// @Param       id path string true "document ID"
// @Success     200 {object} documentResponse
// @Failure     404 {object} errorPayload
// @Router      /documents/{id} [get]
func GetDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := docSvc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return documentError(c, err)
		}
		return c.JSON(toDocumentResponse(*doc))
	}
}

// OpenDocument resolves the URL for opening or downloading a document outside the app.
//
// @Summary     Open document externally
// @Tags        documents
// @Produce     json
// @Param       id path string true "document ID"
// @Success     200 {object} openResponse
// @Failure     404 {object} errorPayload
// @Router      /documents/{id}/open [get]
func OpenDocument(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := docSvc.OpenURL(c.UserContext(), c.Params("id"))
		if err != nil {
			return documentError(c, err)
		}
		if u == "" {
			return writeError(c, fiber.StatusNotFound, "NO_LOCATOR", "document has no artifact to open")
		}
		return c.JSON(openResponse{URL: u})
	}
}

// UploadDocument is a placeholder; the catalog is populated by its provider.
//
// @Summary     Upload document
// @Tags        documents
// @Produce     json
// @Failure     501 {object} errorPayload
// @Router      /documents [post]
func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeError(c, fiber.StatusNotImplemented, "NOT_IMPLEMENTED", "document upload is not available")
	}
}

func documentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "id is required")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "document not found")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
