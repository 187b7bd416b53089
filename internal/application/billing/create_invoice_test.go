package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/tu-usuario/myinvois-pro/internal/application/billing"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	dombilling "github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fakes. Only the methods the use case touches have real behavior;
// the rest satisfy the interfaces.
// ──────────────────────────────────────────────────────────────────────────────

type fakeBusinessRepo struct {
	business *entity.Business
}

func (f *fakeBusinessRepo) Create(*entity.Business) error { return nil }
func (f *fakeBusinessRepo) GetByID(id string) (*entity.Business, error) {
	if f.business != nil && f.business.ID == id {
		return f.business, nil
	}
	return nil, nil
}
func (f *fakeBusinessRepo) GetByTIN(string) (*entity.Business, error) { return nil, nil }
func (f *fakeBusinessRepo) Update(*entity.Business) error             { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (f *fakeCustomerRepo) Create(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (f *fakeCustomerRepo) ListByBusiness(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) Delete(string) error { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(*entity.Product) error { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCode(string, string) (*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Update(*entity.Product) error                      { return nil }
func (f *fakeProductRepo) ListByBusiness(string, int, int) ([]*entity.Product, error) {
	return nil, nil
}
func (f *fakeProductRepo) ListCodes(string) ([]string, error) { return nil, nil }
func (f *fakeProductRepo) Delete(string) error                { return nil }

// fakeInvoiceRepo stores invoices and enforces number uniqueness, like the
// DB's unique constraint.
type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	items    []*entity.InvoiceItem
}

func (f *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	for _, existing := range f.invoices {
		if existing.BusinessID == inv.BusinessID && existing.Number == inv.Number {
			return domain.ErrDuplicate
		}
	}
	f.invoices = append(f.invoices, inv)
	return nil
}
func (f *fakeInvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	f.items = append(f.items, item)
	return nil
}
func (f *fakeInvoiceRepo) GetByID(string) (*entity.Invoice, error) { return nil, nil }
func (f *fakeInvoiceRepo) GetItemsByInvoiceID(string) ([]*entity.InvoiceItem, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListByBusiness(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeInvoiceRepo) ListNumbers(businessID string) ([]string, error) {
	var numbers []string
	for _, inv := range f.invoices {
		if inv.BusinessID == businessID {
			numbers = append(numbers, inv.Number)
		}
	}
	return numbers, nil
}
func (f *fakeInvoiceRepo) UpdateStatus(string, string) error { return nil }

// fakeTxRunner hands the fakes to the callback; there is no real transaction.
type fakeTxRunner struct {
	customers *fakeCustomerRepo
	products  *fakeProductRepo
	invoices  *fakeInvoiceRepo
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	repository.CustomerRepository,
	repository.ProductRepository,
	repository.InvoiceRepository,
) error) error {
	return fn(f.customers, f.products, f.invoices)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	ucBusinessID      = "b-0000-0001"
	ucCustomerID      = "c-0000-0001"
	ucProductID       = "p-0000-0001"
	foreignCustomerID = "c-0000-0099"
)

func newHarness() (*appbilling.CreateInvoiceUseCase, *fakeInvoiceRepo) {
	businessRepo := &fakeBusinessRepo{business: &entity.Business{
		ID:            ucBusinessID,
		Name:          "Kedai Maju Sdn Bhd",
		TIN:           "C1234567890",
		InvoicePrefix: "INV",
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		ucCustomerID:      {ID: ucCustomerID, BusinessID: ucBusinessID, Name: "Syarikat Pelanggan"},
		foreignCustomerID: {ID: foreignCustomerID, BusinessID: "other-business", Name: "Pelanggan Lain"},
	}}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		ucProductID: {
			ID:         ucProductID,
			BusinessID: ucBusinessID,
			Code:       "P0001",
			Name:       "Consulting hours",
			UnitPrice:  decimal.NewFromInt(100),
			TaxType:    "02",
			TaxRate:    decimal.NewFromInt(6),
		},
	}}
	invoiceRepo := &fakeInvoiceRepo{}
	runner := &fakeTxRunner{customers: customerRepo, products: productRepo, invoices: invoiceRepo}
	uc := appbilling.NewCreateInvoiceUseCase(runner, businessRepo, customerRepo, productRepo)
	return uc, invoiceRepo
}

func validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CustomerID: ucCustomerID,
		Date:       "2026-03-14",
		Time:       "09:30",
		Items: []dto.InvoiceItemRequest{{
			ProductID:       ucProductID,
			Quantity:        decimal.NewFromInt(2),
			UnitPrice:       decimal.NewFromInt(100),
			DiscountPercent: decimal.NewFromInt(10),
			TaxRatePercent:  decimal.NewFromInt(6),
		}},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateInvoice_AllocatesSequentialNumbers(t *testing.T) {
	uc, _ := newHarness()

	first, err := uc.CreateInvoice(context.Background(), ucBusinessID, validRequest())
	require.NoError(t, err)
	second, err := uc.CreateInvoice(context.Background(), ucBusinessID, validRequest())
	require.NoError(t, err)
	third, err := uc.CreateInvoice(context.Background(), ucBusinessID, validRequest())
	require.NoError(t, err)

	assert.Equal(t, "INV0001", first.Number)
	assert.Equal(t, "INV0002", second.Number)
	assert.Equal(t, "INV0003", third.Number)
}

func TestCreateInvoice_StoredTotalsMatchEngine(t *testing.T) {
	uc, invoiceRepo := newHarness()

	out, err := uc.CreateInvoice(context.Background(), ucBusinessID, validRequest())
	require.NoError(t, err)

	// 2 x 100 with 10% discount and 6% tax: 180.00 / 10.80 / 190.80.
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(180)), "subtotal, got %s", out.Subtotal)
	assert.True(t, out.Tax.Equal(decimal.NewFromFloat(10.80)), "tax, got %s", out.Tax)
	assert.True(t, out.Total.Equal(decimal.NewFromFloat(190.80)), "total, got %s", out.Total)
	assert.Equal(t, entity.StatusPending, out.Status)

	// The persisted header must carry exactly the engine's aggregates.
	require.Len(t, invoiceRepo.invoices, 1)
	require.Len(t, invoiceRepo.items, 1)
	totals := dombilling.InvoiceTotals(invoiceRepo.items)
	stored := invoiceRepo.invoices[0]
	assert.True(t, stored.Subtotal.Equal(totals.Subtotal))
	assert.True(t, stored.Tax.Equal(totals.Tax))
	assert.True(t, stored.Total.Equal(totals.Total))
}

// Zero unit price and tax rate pull the product's defaults at selection time.
func TestCreateInvoice_CopiesProductDefaults(t *testing.T) {
	uc, invoiceRepo := newHarness()

	in := validRequest()
	in.Items[0].UnitPrice = decimal.Zero
	in.Items[0].TaxRatePercent = decimal.Zero
	in.Items[0].DiscountPercent = decimal.Zero

	out, err := uc.CreateInvoice(context.Background(), ucBusinessID, in)
	require.NoError(t, err)

	item := invoiceRepo.items[0]
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(100)), "unit price from product")
	assert.True(t, item.TaxRatePercent.Equal(decimal.NewFromInt(6)), "tax rate from product")
	assert.True(t, out.Subtotal.Equal(decimal.NewFromInt(200)), "2 x 100 without discount, got %s", out.Subtotal)
}

func TestCreateInvoice_UnknownBusiness(t *testing.T) {
	uc, _ := newHarness()

	_, err := uc.CreateInvoice(context.Background(), "another-business", validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_CustomerOfAnotherBusiness(t *testing.T) {
	uc, _ := newHarness()

	in := validRequest()
	in.CustomerID = foreignCustomerID
	_, err := uc.CreateInvoice(context.Background(), ucBusinessID, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateInvoice_UnknownProduct(t *testing.T) {
	uc, _ := newHarness()

	in := validRequest()
	in.Items[0].ProductID = "missing"
	_, err := uc.CreateInvoice(context.Background(), ucBusinessID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_RejectsBadDate(t *testing.T) {
	uc, _ := newHarness()

	in := validRequest()
	in.Date = "14/03/2026"
	_, err := uc.CreateInvoice(context.Background(), ucBusinessID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateInvoice_RejectsZeroQuantity(t *testing.T) {
	uc, _ := newHarness()

	in := validRequest()
	in.Items[0].Quantity = decimal.Zero
	_, err := uc.CreateInvoice(context.Background(), ucBusinessID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
