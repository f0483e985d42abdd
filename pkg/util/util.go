package util

import (
	"errors"
	"fmt"
	"os"
)

// EnsureCacheDir creates the httpstat cache directory if it is missing and
// returns its path.
func EnsureCacheDir() (string, error) {
	userCacheDir, err := GetUserCacheDir()
	if err != nil {
		return "", err
	}
	if err = ensureDir(userCacheDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}
	dir, err := HTTPStatCacheDir()
	if err != nil {
		return "", err
	}
	if err = ensureDir(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}
	return dir, nil
}

func ensureDir(path string, perm os.FileMode) error {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err := os.Mkdir(path, perm)
			if err != nil {
				return err
			}
			return nil
		}
		return err
	}
	return nil
}
