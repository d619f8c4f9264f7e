package Models

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetStore is the narrow sheet access interface used by the rest of the
// application. Handlers and jobs only ever read the full grid, append one
// row, or write one cell.
type SheetStore interface {
	GetAllRows(ctx context.Context) ([][]string, error)
	AppendRow(ctx context.Context, row []interface{}) error
	UpdateCell(ctx context.Context, colIndex, rowNumber int, value string) error
}

// GoogleSheetStore implements SheetStore against one tab of one spreadsheet.
type GoogleSheetStore struct {
	Service   *sheets.Service
	SheetID   string
	SheetName string
}

func (s *GoogleSheetStore) GetAllRows(ctx context.Context) ([][]string, error) {
	resp, err := s.Service.Spreadsheets.Values.Get(s.SheetID, s.SheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", s.SheetName, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (s *GoogleSheetStore) AppendRow(ctx context.Context, row []interface{}) error {
	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{row},
	}

	_, err := s.Service.Spreadsheets.Values.Append(s.SheetID, s.SheetName, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()

	if err != nil {
		return fmt.Errorf("appending to sheet %s: %w", s.SheetName, err)
	}
	return nil
}

// UpdateCell writes one cell. colIndex is 0-based, rowNumber is the 1-based
// absolute sheet row (data rows start at 2).
func (s *GoogleSheetStore) UpdateCell(ctx context.Context, colIndex, rowNumber int, value string) error {
	rangeToUpdate := fmt.Sprintf("%s!%s%d", s.SheetName, ColumnLetter(colIndex), rowNumber)

	valueRange := &sheets.ValueRange{
		Values: [][]interface{}{{value}},
	}

	_, err := s.Service.Spreadsheets.Values.Update(s.SheetID, rangeToUpdate, valueRange).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()

	if err != nil {
		return fmt.Errorf("updating %s: %w", rangeToUpdate, err)
	}
	return nil
}

// ColumnLetter converts a 0-based column index to A1 letter notation.
func ColumnLetter(colIndex int) string {
	letter := ""
	for colIndex >= 0 {
		letter = string(rune('A'+colIndex%26)) + letter
		colIndex = colIndex/26 - 1
	}
	return letter
}
