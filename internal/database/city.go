package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"flight-route-optimizer/internal/models"
)

// CityRepository handles city persistence
type CityRepository interface {
	List(ctx context.Context, search string) ([]models.City, error)
	GetByID(ctx context.Context, id int64) (*models.City, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.City, error)
	Create(ctx context.Context, c *models.City) (*models.City, error)
	Update(ctx context.Context, c *models.City) (*models.City, error)
	Delete(ctx context.Context, id int64) error
}

type cityRepository struct {
	db *sql.DB
}

func (r *cityRepository) List(ctx context.Context, search string) ([]models.City, error) {
	query := `SELECT id, name, lat, lng, priority, created_at, updated_at FROM cities`
	args := []interface{}{}

	if search != "" {
		query += ` WHERE name LIKE ?`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY priority ASC, name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []models.City
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Lat, &c.Lng, &c.Priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*models.City, error) {
	query := `SELECT id, name, lat, lng, priority, created_at, updated_at FROM cities WHERE id = ?`

	var c models.City
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Lat, &c.Lng, &c.Priority, &c.CreatedAt, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	return &c, nil
}

func (r *cityRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.City, error) {
	if len(ids) == 0 {
		return []models.City{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, name, lat, lng, priority, created_at, updated_at FROM cities WHERE id IN (%s)`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities by IDs: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]models.City, len(ids))
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Lat, &c.Lng, &c.Priority, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		byID[c.ID] = c
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	// Preserve the requested order; solver indices depend on it.
	cities := make([]models.City, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			cities = append(cities, c)
		}
	}

	return cities, nil
}

func (r *cityRepository) Create(ctx context.Context, c *models.City) (*models.City, error) {
	query := `INSERT INTO cities (name, lat, lng, priority) VALUES (?, ?, ?, ?) RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Lat, c.Lng, c.Priority).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	return c, nil
}

func (r *cityRepository) Update(ctx context.Context, c *models.City) (*models.City, error) {
	query := `UPDATE cities SET name = ?, lat = ?, lng = ?, priority = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ? RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Lat, c.Lng, c.Priority, c.ID).Scan(&c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update city: %w", err)
	}

	return c, nil
}

func (r *cityRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM cities WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
