package sheets

import (
	"context"
	"fmt"
	"os"
	"sync"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"sportsfest/internal/config"
	"sportsfest/internal/models"
)

const SheetJersey = "Jersey"

// Storage appends verified registrations to the festival spreadsheet. The
// spreadsheet is the system of record: there is no database behind it, and
// every write is append-only.
type Storage struct {
	srv           *sheetsv4.Service
	spreadsheetID string
	dataStartRow  int

	mu   sync.Mutex
	meta map[string]int64 // tab title -> sheetId, for merge requests
}

func New(cfg *config.Sheets) (*Storage, error) {
	if _, err := os.Stat(cfg.CredentialsFile); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}

	ctx := context.Background()
	srv, err := sheetsv4.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init sheets service: %w", err)
	}

	return &Storage{
		srv:           srv,
		spreadsheetID: cfg.SpreadsheetID,
		dataStartRow:  cfg.DataStartRow,
	}, nil
}

// AppendRegistration writes one row per team member to the tab named by
// sheetTitle, merging the shared columns when the team has more than one
// member. It returns the serial number assigned to the submission.
//
// Serial assignment is read-then-append with no locking on the spreadsheet
// side, so two near-simultaneous submissions can race; the serial is advisory
// and the payment id is the real dedup key.
func (s *Storage) AppendRegistration(sheetTitle string, reg models.Registration) (int, error) {
	column, err := s.readSerialColumn(sheetTitle)
	if err != nil {
		return 0, fmt.Errorf("failed to read serial column: %w", err)
	}

	serial := nextSerial(column)

	// Первая свободная строка считается по занятому диапазону, а не по
	// серийному номеру: после ручных правок они могут разойтись.
	startRow := s.dataStartRow + len(column)
	rows := layoutRows(serial, reg)
	endRow := startRow + len(rows) - 1

	writeRange := fmt.Sprintf("%s!A%d:G%d", sheetTitle, startRow, endRow)
	vr := &sheetsv4.ValueRange{Values: rows}
	_, err = s.srv.Spreadsheets.Values.Update(s.spreadsheetID, writeRange, vr).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to write rows: %w", err)
	}

	if len(reg.Members) > 1 {
		sheetID, err := s.sheetID(sheetTitle)
		if err != nil {
			return 0, err
		}

		_, err = s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheetsv4.BatchUpdateSpreadsheetRequest{
			Requests: mergeRequests(sheetID, startRow, endRow),
		}).Do()
		if err != nil {
			return 0, fmt.Errorf("failed to merge team cells: %w", err)
		}
	}

	return serial, nil
}

// AppendJersey appends a single jersey order row to the Jersey tab:
// A Sr. No | B Name on Jersey | C Number | D Department | E Size | F Payment ID
func (s *Storage) AppendJersey(order models.JerseyOrder) (int, error) {
	column, err := s.readSerialColumn(SheetJersey)
	if err != nil {
		return 0, fmt.Errorf("failed to read serial column: %w", err)
	}

	serial := nextSerial(column)

	vr := &sheetsv4.ValueRange{Values: [][]interface{}{{
		serial,
		order.NameOnJersey,
		order.NumberOnJersey,
		order.Department,
		order.Size,
		order.PaymentID,
	}}}

	appendRange := fmt.Sprintf("%s!A%d", SheetJersey, s.dataStartRow)
	_, err = s.srv.Spreadsheets.Values.Append(s.spreadsheetID, appendRange, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Do()
	if err != nil {
		return 0, fmt.Errorf("failed to append jersey row: %w", err)
	}

	return serial, nil
}

func (s *Storage) readSerialColumn(sheetTitle string) ([]string, error) {
	readRange := fmt.Sprintf("%s!A%d:A", sheetTitle, s.dataStartRow)
	resp, err := s.srv.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Do()
	if err != nil {
		return nil, err
	}

	column := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 || row[0] == nil {
			column = append(column, "")
			continue
		}
		column = append(column, fmt.Sprint(row[0]))
	}
	return column, nil
}

func (s *Storage) sheetID(sheetTitle string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.meta == nil {
		resp, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Do()
		if err != nil {
			return 0, fmt.Errorf("failed to get spreadsheet metadata: %w", err)
		}

		s.meta = make(map[string]int64, len(resp.Sheets))
		for _, sheet := range resp.Sheets {
			if sheet.Properties != nil {
				s.meta[sheet.Properties.Title] = sheet.Properties.SheetId
			}
		}
	}

	id, ok := s.meta[sheetTitle]
	if !ok {
		return 0, fmt.Errorf("sheet id not found for title %q", sheetTitle)
	}
	return id, nil
}
