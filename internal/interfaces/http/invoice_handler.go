package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	appbilling "github.com/tu-usuario/myinvois-pro/internal/application/billing"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	dombilling "github.com/tu-usuario/myinvois-pro/internal/domain/billing"
)

// InvoiceHandler handles invoicing HTTP requests (protected).
type InvoiceHandler struct {
	createUC   *appbilling.CreateInvoiceUseCase
	invoiceUC  *appbilling.InvoiceUseCase
	documentUC *appbilling.DocumentUseCase
	pdfUC      *appbilling.PDFUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(
	createUC *appbilling.CreateInvoiceUseCase,
	invoiceUC *appbilling.InvoiceUseCase,
	documentUC *appbilling.DocumentUseCase,
	pdfUC *appbilling.PDFUseCase,
) *InvoiceHandler {
	return &InvoiceHandler{
		createUC:   createUC,
		invoiceUC:  invoiceUC,
		documentUC: documentUC,
		pdfUC:      pdfUC,
	}
}

// Create issues an invoice, allocating its number server-side.
// POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	invoice, err := h.createUC.CreateInvoice(c.Context(), businessID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, dombilling.ErrInvalidInvoice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "customer or product not found"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied to the resource"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NUMBER_CONFLICT", Message: "invoice number collision, retry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID returns the full invoice detail.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id is required"})
	}
	invoice, err := h.invoiceUC.Get(businessID, id)
	if err != nil {
		return invoiceError(c, err)
	}
	return c.JSON(invoice)
}

// List returns invoice headers, newest first.
// GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	list, err := h.invoiceUC.List(businessID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// UpdateStatus transitions the invoice lifecycle status.
// PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	if err := h.invoiceUC.UpdateStatus(businessID, id, in.Status); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status must be draft, pending, paid or overdue"})
		}
		return invoiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Document returns the MyInvois compliance document with its content hash.
// GET /api/invoices/:id/document
func (h *InvoiceHandler) Document(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	out, err := h.documentUC.BuildDocument(businessID, id)
	if err != nil {
		return documentError(c, err)
	}
	return c.JSON(out)
}

// DocumentXML returns the UBL XML rendition. The canonical digest travels in
// the X-Document-Digest header.
// GET /api/invoices/:id/document.xml
func (h *InvoiceHandler) DocumentXML(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	xmlData, digest, err := h.documentUC.BuildDocumentXML(businessID, id)
	if err != nil {
		return documentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set("X-Document-Digest", digest)
	return c.Send(xmlData)
}

// PDF returns the printable rendition of the invoice.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	businessID := GetBusinessID(c)
	if businessID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	id := c.Params("id")
	pdfBytes, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context(), businessID, id)
	if err != nil {
		return documentError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// invoiceError maps invoice lookup errors to HTTP status codes.
func invoiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "access denied"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// documentError additionally maps serialization failures: unresolved parties
// and cached totals drifting from the items both block the document.
func documentError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnresolvedBusiness), errors.Is(err, domain.ErrUnresolvedCustomer):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNRESOLVED_PARTY", Message: err.Error()})
	case errors.Is(err, dombilling.ErrInvalidInvoice):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_INVOICE", Message: err.Error()})
	default:
		return invoiceError(c, err)
	}
}
