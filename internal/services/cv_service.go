package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrCVNotFound means the configured CV file is missing or not a file
var ErrCVNotFound = errors.New("cv not found")

type CVService struct {
	path     string
	filename string
}

// NewCVService serves the file at path. An empty filename defaults to the
// file's base name.
func NewCVService(path, filename string) *CVService {
	if filename == "" {
		filename = filepath.Base(path)
	}
	return &CVService{path: path, filename: filename}
}

func (s *CVService) Path() string {
	return s.path
}

// Filename is the name offered to the browser on download
func (s *CVService) Filename() string {
	return s.filename
}

// Probe checks that the CV exists and is a regular file
func (s *CVService) Probe() error {
	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrCVNotFound
		}
		return fmt.Errorf("failed to stat cv: %w", err)
	}
	if !info.Mode().IsRegular() {
		return ErrCVNotFound
	}
	return nil
}

// MissingMessage is shown when the CV cannot be served
func (s *CVService) MissingMessage() string {
	return "CV file not found. Please add your CV to " + s.path
}
