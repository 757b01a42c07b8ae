package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"flight-route-optimizer/internal/models"
)

// DefaultAlgorithm is used until the user picks one in settings
const DefaultAlgorithm = "dp"

// SettingsRepository handles settings persistence
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, s *models.Settings) error
}

type settingsRepository struct {
	db *sql.DB
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `SELECT key, value FROM settings WHERE key IN ('default_algorithm', 'use_miles')`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settingsMap := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settingsMap[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	settings := &models.Settings{
		DefaultAlgorithm: DefaultAlgorithm,
	}
	if algo, ok := settingsMap["default_algorithm"]; ok && algo != "" {
		settings.DefaultAlgorithm = algo
	}
	if useMiles, err := strconv.ParseBool(settingsMap["use_miles"]); err == nil {
		settings.UseMiles = useMiles
	}

	return settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, s *models.Settings) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`

	if _, err := tx.ExecContext(ctx, query, "default_algorithm", s.DefaultAlgorithm); err != nil {
		return fmt.Errorf("failed to update default_algorithm: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, "use_miles", strconv.FormatBool(s.UseMiles)); err != nil {
		return fmt.Errorf("failed to update use_miles: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
