package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alimgiray/gfolio/internal/models"
)

const (
	SheetProfile      = "Profile"
	SheetRepositories = "Repositories"
	SheetLanguages    = "Languages"
)

var repositoryHeader = []interface{}{
	"Name", "Description", "Language", "Stars", "Forks",
	"Updated", "Archived", "Fork", "Homepage", "Topics", "URL",
}

// ExportService turns a snapshot into an .xlsx workbook
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Workbook builds the Profile, Repositories and Languages sheets
func (s *ExportService) Workbook(snapshot *models.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetProfile); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name profile sheet: %w", err)
	}
	if err := s.writeProfile(f, snapshot); err != nil {
		f.Close()
		return nil, err
	}
	if err := s.writeRepositories(f, snapshot.Repos); err != nil {
		f.Close()
		return nil, err
	}
	if err := s.writeLanguages(f, snapshot.Repos); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// Export renders the workbook to bytes
func (s *ExportService) Export(snapshot *models.Snapshot) ([]byte, error) {
	f, err := s.Workbook(snapshot)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ExportService) writeProfile(f *excelize.File, snapshot *models.Snapshot) error {
	profile := snapshot.Profile
	if profile == nil {
		profile = &models.Profile{}
	}

	rows := [][]interface{}{
		{"Field", "Value"},
		{"Login", profile.Login},
		{"Name", profile.DisplayName()},
		{"Bio", profile.Bio},
		{"Location", profile.Location},
		{"Email", profile.Email},
		{"Twitter", profile.TwitterUsername},
		{"Blog", profile.Blog},
		{"Followers", profile.Followers},
		{"Public Repos", profile.PublicRepos},
		{"Total Stars", snapshot.TotalStars()},
	}
	return setRows(f, SheetProfile, rows)
}

func (s *ExportService) writeRepositories(f *excelize.File, repos []*models.Repository) error {
	if _, err := f.NewSheet(SheetRepositories); err != nil {
		return fmt.Errorf("failed to create repositories sheet: %w", err)
	}

	rows := make([][]interface{}, 0, len(repos)+1)
	rows = append(rows, repositoryHeader)
	for _, repo := range repos {
		updated := ""
		if !repo.UpdatedAt.IsZero() {
			updated = repo.UpdatedAt.UTC().Format("2006-01-02")
		}
		rows = append(rows, []interface{}{
			repo.Name,
			repo.Description,
			repo.Language,
			repo.StargazersCount,
			repo.ForksCount,
			updated,
			repo.Archived,
			repo.Fork,
			repo.Homepage,
			strings.Join(repo.Topics, ", "),
			repo.HTMLURL,
		})
	}
	return setRows(f, SheetRepositories, rows)
}

func (s *ExportService) writeLanguages(f *excelize.File, repos []*models.Repository) error {
	if _, err := f.NewSheet(SheetLanguages); err != nil {
		return fmt.Errorf("failed to create languages sheet: %w", err)
	}

	counts := models.CountLanguages(repos)
	rows := make([][]interface{}, 0, len(counts)+1)
	rows = append(rows, []interface{}{"Language", "Repositories"})
	for _, count := range counts {
		rows = append(rows, []interface{}{count.Language, count.Count})
	}
	return setRows(f, SheetLanguages, rows)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
