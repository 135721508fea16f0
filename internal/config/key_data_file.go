package config

import (
	"context"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type KeyDataFile struct {
	Path string `json:"path" yaml:"path"`
}

func (kf *KeyDataFile) resolvedPath() (string, error) {
	path, err := homedir.Expand(kf.Path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", errors.Errorf("key file '%s' does not exist", kf.Path)
	}

	return path, nil
}

func (kf *KeyDataFile) HasData(ctx context.Context) bool {
	_, err := kf.resolvedPath()
	return err == nil
}

func (kf *KeyDataFile) GetData(ctx context.Context) ([]byte, error) {
	path, err := kf.resolvedPath()
	if err != nil {
		return nil, err
	}

	return os.ReadFile(path)
}

var _ KeyDataType = (*KeyDataFile)(nil)
