package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Sheet is a RowStore backed by one tab of a Google spreadsheet.
type Sheet struct {
	service       *sheets.Service
	spreadsheetID string
	sheetName     string
}

func NewSheet(jsonPath, spreadsheetID, sheetName string) (*Sheet, error) {
	ctx := context.Background()
	srv, err := sheets.NewService(ctx, option.WithCredentialsFile(jsonPath))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}
	return &Sheet{
		service:       srv,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

func (s *Sheet) Name() string {
	return s.sheetName
}

func (s *Sheet) Exists() bool {
	ss, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(context.Background()).Do()
	if err != nil {
		return false
	}
	for _, sh := range ss.Sheets {
		if sh.Properties.Title == s.sheetName {
			return true
		}
	}
	return false
}

func (s *Sheet) HeaderRow() ([]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.sheetName+"!1:1",
	).Context(context.Background()).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	header := make([]string, len(resp.Values[0]))
	for i, v := range resp.Values[0] {
		header[i] = fmt.Sprint(v)
	}
	return header, nil
}

func (s *Sheet) DataRows() ([][]interface{}, error) {
	resp, err := s.service.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.sheetName+"!A2:Z",
	).Context(context.Background()).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (s *Sheet) Cell(row, col int) (interface{}, error) {
	resp, err := s.service.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.cellRange(row, col),
	).Context(context.Background()).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return resp.Values[0][0], nil
}

func (s *Sheet) SetCell(row, col int, value interface{}) error {
	_, err := s.service.Spreadsheets.Values.Update(
		s.spreadsheetID,
		s.cellRange(row, col),
		&sheets.ValueRange{Values: [][]interface{}{{value}}},
	).ValueInputOption("USER_ENTERED").Context(context.Background()).Do()
	return err
}

func (s *Sheet) AppendRow(row []interface{}) (int, error) {
	resp, err := s.service.Spreadsheets.Values.Append(
		s.spreadsheetID,
		s.sheetName+"!A:Z",
		&sheets.ValueRange{Values: [][]interface{}{row}},
	).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Context(context.Background()).Do()
	if err != nil {
		return 0, err
	}
	sheetRow, err := rowFromRange(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, err
	}
	return sheetRow - 1, nil
}

// EnsureSheet creates the sheet tab with the given header row if it is not
// already present in the spreadsheet.
func (s *Sheet) EnsureSheet(header []string) error {
	if s.Exists() {
		return nil
	}
	ctx := context.Background()
	addSheetReq := &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{
				Title: s.sheetName,
			},
		},
	}
	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{addSheetReq},
	}).Context(ctx).Do()
	if err != nil {
		return err
	}
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	_, err = s.service.Spreadsheets.Values.Update(
		s.spreadsheetID,
		s.sheetName+"!1:1",
		&sheets.ValueRange{Values: [][]interface{}{row}},
	).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	return err
}

func (s *Sheet) cellRange(row, col int) string {
	// Data row 1 sits on sheet row 2, below the header.
	return fmt.Sprintf("%s!%s%d", s.sheetName, columnName(col), row+1)
}

// rowFromRange extracts the sheet row from an updated range like
// "Tracker!A5:J5".
func rowFromRange(updatedRange string) (int, error) {
	ref := updatedRange
	if i := strings.IndexByte(ref, '!'); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		ref = ref[:i]
	}
	digits := strings.TrimLeft(ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	row, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("unexpected updated range %q", updatedRange)
	}
	return row, nil
}
