package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	"github.com/tu-usuario/myinvois-pro/pkg/myinvois"
)

// BusinessUseCase manages the issuing business profile.
type BusinessUseCase struct {
	repo repository.BusinessRepository
}

// NewBusinessUseCase builds the use case.
func NewBusinessUseCase(repo repository.BusinessRepository) *BusinessUseCase {
	return &BusinessUseCase{repo: repo}
}

// Get fetches the business profile.
func (uc *BusinessUseCase) Get(businessID string) (*dto.BusinessResponse, error) {
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return toBusinessResponse(business), nil
}

// Create registers the business profile. Every required party field must be
// present here; the serializer refuses to invent missing data later.
func (uc *BusinessUseCase) Create(in dto.UpsertBusinessRequest) (*dto.BusinessResponse, error) {
	if err := validateBusinessInput(in); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByTIN(in.TIN)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	business := &entity.Business{
		ID:        uuid.New().String(),
		CreatedAt: now,
	}
	applyBusinessInput(business, in, now)
	if err := uc.repo.Create(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

// Update rewrites the profile of an existing business.
func (uc *BusinessUseCase) Update(businessID string, in dto.UpsertBusinessRequest) (*dto.BusinessResponse, error) {
	if err := validateBusinessInput(in); err != nil {
		return nil, err
	}
	business, err := uc.repo.GetByID(businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	applyBusinessInput(business, in, time.Now())
	if err := uc.repo.Update(business); err != nil {
		return nil, err
	}
	return toBusinessResponse(business), nil
}

func validateBusinessInput(in dto.UpsertBusinessRequest) error {
	if in.Name == "" || in.TIN == "" {
		return domain.ErrInvalidInput
	}
	switch in.IDType {
	case entity.IDTypeBRN, entity.IDTypeNRIC, entity.IDTypePassport:
	default:
		return domain.ErrInvalidInput
	}
	if in.Address.StateCode != "" && !myinvois.ValidStateCode(in.Address.StateCode) {
		return domain.ErrInvalidInput
	}
	return nil
}

func applyBusinessInput(b *entity.Business, in dto.UpsertBusinessRequest, now time.Time) {
	country := in.Address.CountryCode
	if country == "" {
		country = myinvois.CountryMYS
	}
	prefix := in.InvoicePrefix
	if prefix == "" {
		prefix = "INV"
	}
	b.Name = in.Name
	b.TIN = in.TIN
	b.RegistrationNo = in.RegistrationNo
	b.IDType = in.IDType
	b.ContactNumber = in.ContactNumber
	b.Address = entity.Address{
		Line:        in.Address.Line,
		City:        in.Address.City,
		PostalCode:  in.Address.PostalCode,
		StateCode:   in.Address.StateCode,
		CountryCode: country,
	}
	b.SSTRegistrationNo = in.SSTRegistrationNo
	b.Activity = entity.BusinessActivity{
		Category:    in.MSICCategory,
		MSICCode:    in.MSICCode,
		Description: in.MSICDescription,
	}
	b.InvoicePrefix = prefix
	b.UpdatedAt = now
}

func toBusinessResponse(b *entity.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:             b.ID,
		Name:           b.Name,
		TIN:            b.TIN,
		RegistrationNo: b.RegistrationNo,
		IDType:         b.IDType,
		ContactNumber:  b.ContactNumber,
		Address: dto.AddressDTO{
			Line:        b.Address.Line,
			City:        b.Address.City,
			PostalCode:  b.Address.PostalCode,
			StateCode:   b.Address.StateCode,
			CountryCode: b.Address.CountryCode,
		},
		SSTRegistrationNo: b.SSTRegistrationNo,
		MSICCategory:      b.Activity.Category,
		MSICCode:          b.Activity.MSICCode,
		MSICDescription:   b.Activity.Description,
		InvoicePrefix:     b.InvoicePrefix,
	}
}
