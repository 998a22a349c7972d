package services

import (
	"database/sql"
	"strings"

	intconfig "westudy/internal/config"
	"westudy/internal/domain"
	"westudy/internal/domain/models"
	"westudy/internal/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type ListingService struct {
	ListingRepo repositories.ListingRepository
	CatalogRepo repositories.CatalogRepository
	DB          *sql.DB
}

func (s ListingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ListingService) listings() repositories.ListingRepository {
	if s.ListingRepo.DB != nil {
		return s.ListingRepo
	}
	return repositories.ListingRepository{DB: s.db()}
}

func (s ListingService) catalog() repositories.CatalogRepository {
	if s.CatalogRepo.DB != nil {
		return s.CatalogRepo
	}
	return repositories.CatalogRepository{DB: s.db()}
}

// List returns one page of approved listings. Page and limit are clamped so a
// bad query string can never produce an unbounded scan. An empty first page is
// a valid result, not an error.
func (s ListingService) List(filters models.ListingFilters, page, limit int) ([]models.Listing, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	// "__ALL__" is the mobile client's sentinel for an unset select field
	if filters.Category == "__ALL__" {
		filters.Category = ""
	}
	if filters.University == "__ALL__" {
		filters.University = ""
	}
	filters.SearchTerm = strings.TrimSpace(filters.SearchTerm)

	offset := (page - 1) * limit
	list, err := s.listings().List(filters, limit, offset)
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar os quartos", Err: err}
	}
	return list, nil
}

func (s ListingService) GetByID(id int64) (models.Listing, error) {
	if id <= 0 {
		return models.Listing{}, domain.ValidationError{Field: "id", Msg: "id inválido"}
	}
	l, err := s.listings().GetByID(id)
	if err == sql.ErrNoRows {
		return models.Listing{}, domain.NotFoundError{Resource: "quarto"}
	}
	if err != nil {
		return models.Listing{}, domain.InternalError{Msg: "erro ao buscar o quarto", Err: err}
	}
	return l, nil
}

func (s ListingService) Categories() ([]models.Category, error) {
	out, err := s.catalog().Categories()
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar categorias", Err: err}
	}
	return out, nil
}

func (s ListingService) Universities() ([]models.UniversityArea, error) {
	out, err := s.catalog().Universities()
	if err != nil {
		return nil, domain.InternalError{Msg: "erro ao buscar universidades", Err: err}
	}
	return out, nil
}
