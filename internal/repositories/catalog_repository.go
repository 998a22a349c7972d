package repositories

import (
	"database/sql"

	"westudy/internal/domain/models"
)

// CatalogRepository serves the small read-only lookup tables.
type CatalogRepository struct {
	DB *sql.DB
}

func (r CatalogRepository) Categories() ([]models.Category, error) {
	rows, err := r.DB.Query(`SELECT id, label, COALESCE(description, '') FROM categories ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Label, &c.Description); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CatalogRepository) Universities() ([]models.UniversityArea, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, acronym, city, neighborhood, lat, lng
		FROM universities ORDER BY acronym`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.UniversityArea{}
	for rows.Next() {
		var u models.UniversityArea
		if err := rows.Scan(&u.ID, &u.Name, &u.Acronym, &u.City, &u.Neighborhood, &u.Lat, &u.Lng); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
