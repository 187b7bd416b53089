package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	dombilling "github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	"github.com/tu-usuario/myinvois-pro/pkg/myinvois"
)

// CreateInvoiceUseCase creates an invoice: validates the customer and
// products, copies product defaults into the lines, computes totals with the
// calculation engine and allocates the next invoice number, all in one
// transaction.
type CreateInvoiceUseCase struct {
	txRunner     BillingTxRunner
	businessRepo repository.BusinessRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	businessRepo repository.BusinessRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// CreateInvoice validates the request, derives totals and persists the
// invoice with status pending. The invoice number comes from the business
// prefix and the latest allocated number, both read inside the transaction.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, businessID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil || customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	// Validate products and copy defaults (read-only, outside the tx).
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.BusinessID != businessID {
			return nil, domain.ErrForbidden
		}
		if item.UnitPrice.LessThan(decimal.Zero) || item.DiscountPercent.LessThan(decimal.Zero) ||
			item.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsZero() {
			item.UnitPrice = product.UnitPrice
		}
		if item.TaxRatePercent.IsZero() {
			item.TaxRatePercent = product.TaxRate
		}
	}

	now := time.Now()
	date := now
	if in.Date != "" {
		date, err = time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	timeOfDay := in.Time
	if timeOfDay == "" {
		timeOfDay = now.Format("15:04")
	} else if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return nil, domain.ErrInvalidInput
	}
	currency := in.CurrencyCode
	if currency == "" {
		currency = myinvois.CurrencyMYR
	}
	prefix := business.InvoicePrefix
	if prefix == "" {
		prefix = "INV"
	}

	invoiceID := uuid.New().String()
	items := make([]*entity.InvoiceItem, 0, len(in.Items))
	for i, req := range in.Items {
		items = append(items, &entity.InvoiceItem{
			ID:              uuid.New().String(),
			InvoiceID:       invoiceID,
			ProductID:       req.ProductID,
			LineNumber:      i + 1,
			Quantity:        req.Quantity,
			UnitPrice:       req.UnitPrice,
			DiscountPercent: req.DiscountPercent,
			TaxRatePercent:  req.TaxRatePercent,
		})
	}
	totals := dombilling.InvoiceTotals(items)

	inv := &entity.Invoice{
		ID:           invoiceID,
		BusinessID:   businessID,
		CustomerID:   in.CustomerID,
		Date:         date,
		Time:         timeOfDay,
		CurrencyCode: currency,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		Status:       entity.StatusPending,
		Notes:        in.Notes,
		Terms:        in.Terms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := dombilling.ValidateInvoice(inv, items); err != nil {
		return nil, err
	}

	err = uc.txRunner.RunBilling(ctx, func(
		_ repository.CustomerRepository,
		_ repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error {
		// Allocate the number inside the tx: latest existing number + 1.
		// A concurrent allocation of the same number fails the unique
		// constraint on Create and rolls everything back.
		numbers, err := invoiceRepo.ListNumbers(businessID)
		if err != nil {
			return err
		}
		inv.Number, err = dombilling.NextSequenceNumber(prefix, dombilling.LatestNumber(numbers))
		if err != nil {
			return err
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toInvoiceResponse(inv, items, customer.Name), nil
}

func toInvoiceResponse(inv *entity.Invoice, items []*entity.InvoiceItem, customerName string) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:           inv.ID,
		BusinessID:   inv.BusinessID,
		CustomerID:   inv.CustomerID,
		CustomerName: customerName,
		Number:       inv.Number,
		Date:         inv.Date.Format("2006-01-02"),
		Time:         inv.Time,
		CurrencyCode: inv.CurrencyCode,
		Subtotal:     inv.Subtotal,
		Tax:          inv.Tax,
		Total:        inv.Total,
		Status:       inv.Status,
		Notes:        inv.Notes,
		Terms:        inv.Terms,
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.InvoiceItemResponse{
			ID:              item.ID,
			ProductID:       item.ProductID,
			LineNumber:      item.LineNumber,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
			TaxRatePercent:  item.TaxRatePercent,
			Subtotal:        dombilling.LineSubtotal(item),
			Tax:             dombilling.LineTax(item),
		})
	}
	return out
}
