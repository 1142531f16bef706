package store

import (
	"fmt"

	"projecttracker/pkg/config"
)

// FromConfig builds the configured backend and makes sure the sheet exists
// with the given header row.
func FromConfig(cfg *config.Config, header []string) (RowStore, error) {
	switch cfg.Backend {
	case config.BackendSheets:
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("sheets backend requires a spreadsheet ID")
		}
		s, err := NewSheet(cfg.CredentialsFile, cfg.SpreadsheetID, cfg.SheetName)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureSheet(header); err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendWorkbook:
		w, err := OpenWorkbook(cfg.WorkbookPath, cfg.SheetName)
		if err != nil {
			return nil, err
		}
		if err := w.EnsureSheet(header); err != nil {
			return nil, err
		}
		return w, nil
	case config.BackendMemory:
		return NewMemory(cfg.SheetName, header), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
