package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	"github.com/tu-usuario/myinvois-pro/pkg/myinvois"
)

// CustomerUseCase use cases for customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create creates a new customer.
func (uc *CustomerUseCase) Create(businessID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.TIN == "" {
		return nil, domain.ErrInvalidInput
	}
	if !validIDType(in.IDType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Address.StateCode != "" && !myinvois.ValidStateCode(in.Address.StateCode) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:             uuid.New().String(),
		BusinessID:     businessID,
		Name:           in.Name,
		TIN:            in.TIN,
		RegistrationNo: in.RegistrationNo,
		IDType:         in.IDType,
		ContactNumber:  in.ContactNumber,
		Address:        toAddress(in.Address),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Get fetches one customer of the business.
func (uc *CustomerUseCase) Get(businessID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	return toCustomerResponse(customer), nil
}

// Update rewrites the mutable customer fields.
func (uc *CustomerUseCase) Update(businessID, id string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if customer.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.TIN == "" || !validIDType(in.IDType) {
		return nil, domain.ErrInvalidInput
	}
	customer.Name = in.Name
	customer.TIN = in.TIN
	customer.RegistrationNo = in.RegistrationNo
	customer.IDType = in.IDType
	customer.ContactNumber = in.ContactNumber
	customer.Address = toAddress(in.Address)
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List pages through the customers of the business.
func (uc *CustomerUseCase) List(businessID string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	customers, err := uc.repo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Delete removes a customer. Issued invoices keep their customer snapshot in
// the compliance document already generated; future serialization fails.
func (uc *CustomerUseCase) Delete(businessID, id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if customer.BusinessID != businessID {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func validIDType(idType string) bool {
	switch idType {
	case entity.IDTypeBRN, entity.IDTypeNRIC, entity.IDTypePassport:
		return true
	}
	return false
}

func toAddress(a dto.AddressDTO) entity.Address {
	country := a.CountryCode
	if country == "" {
		country = myinvois.CountryMYS
	}
	return entity.Address{
		Line:        a.Line,
		City:        a.City,
		PostalCode:  a.PostalCode,
		StateCode:   a.StateCode,
		CountryCode: country,
	}
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{
		Line:        a.Line,
		City:        a.City,
		PostalCode:  a.PostalCode,
		StateCode:   a.StateCode,
		CountryCode: a.CountryCode,
	}
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID,
		BusinessID:     c.BusinessID,
		Name:           c.Name,
		TIN:            c.TIN,
		RegistrationNo: c.RegistrationNo,
		IDType:         c.IDType,
		ContactNumber:  c.ContactNumber,
		Address:        toAddressDTO(c.Address),
	}
}
