package database

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// AppDirName is the per-user application directory
	AppDirName = ".flight-route-optimizer"
	// SQLiteDBFileName is the database file inside the app directory
	SQLiteDBFileName = "data.db"
)

// GetAppDir returns ~/.flight-route-optimizer, creating it if needed
func GetAppDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	appDir := filepath.Join(homeDir, AppDirName)
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create app directory: %w", err)
	}

	return appDir, nil
}

// GetDBPath returns ~/.flight-route-optimizer/data.db
func GetDBPath() (string, error) {
	appDir, err := GetAppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(appDir, SQLiteDBFileName), nil
}
