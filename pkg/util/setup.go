package util

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDir = "httpstat"

func GetUserCacheDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user's cache directory: %w", err)
	}
	return userCacheDir, nil
}

func HTTPStatCacheDir() (string, error) {
	userCacheDir, err := GetUserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userCacheDir, appDir), nil
}

func HTTPStatConfigDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user's config directory: %w", err)
	}
	return filepath.Join(userConfigDir, appDir), nil
}
