package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	"github.com/tu-usuario/myinvois-pro/pkg/myinvois"
)

// CatalogTxRunner runs a function inside a transaction with the product repo,
// so code allocation and insert share one transaction.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// productCodePrefix is the fixed prefix of allocated product codes (P0001, ...).
const productCodePrefix = "P"

// ProductUseCase CRUD use cases for products.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner CatalogTxRunner
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create creates a product. The code is allocated from the "P" sequence
// inside the transaction, same pattern as invoice numbers.
func (uc *ProductUseCase) Create(ctx context.Context, businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	taxType := in.TaxType
	if taxType == "" {
		taxType = myinvois.DefaultTaxType
	}
	if _, ok := myinvois.TaxTypeNames[taxType]; !ok {
		return nil, domain.ErrInvalidInput
	}
	if in.TaxRate.LessThan(decimal.Zero) || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       in.Name,
		UnitPrice:  in.UnitPrice,
		TaxType:    taxType,
		TaxRate:    in.TaxRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository) error {
		codes, err := productRepo.ListCodes(businessID)
		if err != nil {
			return err
		}
		product.Code, err = billing.NextSequenceNumber(productCodePrefix, billing.LatestNumber(codes))
		if err != nil {
			return err
		}
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Get fetches one product of the business.
func (uc *ProductUseCase) Get(businessID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return toProductResponse(product), nil
}

// Update rewrites name, pricing and tax defaults. Code never changes, and
// issued invoices keep the pricing they copied at selection time.
func (uc *ProductUseCase) Update(businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if _, ok := myinvois.TaxTypeNames[in.TaxType]; !ok {
		return nil, domain.ErrInvalidInput
	}
	product.Name = in.Name
	product.UnitPrice = in.UnitPrice
	product.TaxType = in.TaxType
	product.TaxRate = in.TaxRate
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List pages through the products of the business.
func (uc *ProductUseCase) List(businessID string, limit, offset int) ([]*dto.ProductResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	products, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete removes a product. Existing invoice items keep their cached pricing
// and degrade to the default tax category when serialized.
func (uc *ProductUseCase) Delete(businessID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.BusinessID != businessID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Code:       p.Code,
		Name:       p.Name,
		UnitPrice:  p.UnitPrice,
		TaxType:    p.TaxType,
		TaxRate:    p.TaxRate,
	}
}
