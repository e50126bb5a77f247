package usecase

import (
	"context"

	"github.com/seventechnologies/hireat-api/internal/domain"
	"github.com/seventechnologies/hireat-api/internal/domain/entity"
	"github.com/seventechnologies/hireat-api/internal/domain/repository"
)

// CompanyUseCase perfiles de empresa: listado público y CRUD del panel.
type CompanyUseCase struct {
	catalog repository.CompanyCatalog
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(catalog repository.CompanyCatalog) *CompanyUseCase {
	return &CompanyUseCase{catalog: catalog}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]entity.Company, error) {
	return uc.catalog.ListCompanies(ctx)
}

// Get devuelve la empresa por id.
func (uc *CompanyUseCase) Get(ctx context.Context, id int) (*entity.Company, error) {
	return uc.catalog.GetCompany(ctx, id)
}

// Create da de alta una empresa.
func (uc *CompanyUseCase) Create(ctx context.Context, c entity.Company) (*entity.Company, error) {
	if c.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.catalog.CreateCompany(ctx, c)
}

// Update edita la empresa del id dado.
func (uc *CompanyUseCase) Update(ctx context.Context, id int, c entity.Company) (*entity.Company, error) {
	c.ID = id
	if err := uc.catalog.UpdateCompany(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete elimina la empresa.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int) error {
	return uc.catalog.DeleteCompany(ctx, id)
}
