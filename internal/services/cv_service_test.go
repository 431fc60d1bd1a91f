package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVProbe(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "cv.pdf")
	require.NoError(t, os.WriteFile(present, []byte("%PDF-1.4"), 0o644))

	testCases := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"present", present, nil},
		{"missing", filepath.Join(dir, "nope.pdf"), ErrCVNotFound},
		{"directory", dir, ErrCVNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewCVService(tc.path, "").Probe()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCVFilenameAndMessage(t *testing.T) {
	svc := NewCVService("assets/cv/Akib_Osmani_CV.pdf", "")
	assert.Equal(t, "Akib_Osmani_CV.pdf", svc.Filename())
	assert.Equal(t, "CV file not found. Please add your CV to assets/cv/Akib_Osmani_CV.pdf", svc.MissingMessage())

	assert.Equal(t, "resume.pdf", NewCVService("x/cv.pdf", "resume.pdf").Filename())
}
