package sheets

import (
	sheetsv4 "google.golang.org/api/sheets/v4"

	"sportsfest/internal/models"
)

// Registration tabs share one column order:
// A Sr. No | B Team Members | C Contact | D Dept | E Group | F No. of Players | G Payment ID
//
// Columns A, C, E, F and G hold the same value for every member of a team, so
// for multi-member submissions they are merged into one visual cell per team.
var sharedColumns = []int64{0, 2, 4, 5, 6}

// layoutRows emits one row per member, all carrying the submission's serial
// number and shared fields.
func layoutRows(serial int, reg models.Registration) [][]interface{} {
	rows := make([][]interface{}, 0, len(reg.Members))
	for _, m := range reg.Members {
		rows = append(rows, []interface{}{
			serial,
			m.Name,
			reg.Contact,
			m.Dept + m.Sem + "K",
			reg.Group,
			reg.NoOfPlayers,
			reg.PaymentID,
		})
	}
	return rows
}

// mergeRequests builds the mergeCells requests for the shared columns of a
// team spanning rows [startRow, endRow] (1-based, inclusive).
func mergeRequests(sheetID int64, startRow, endRow int) []*sheetsv4.Request {
	requests := make([]*sheetsv4.Request, 0, len(sharedColumns))
	for _, col := range sharedColumns {
		requests = append(requests, &sheetsv4.Request{
			MergeCells: &sheetsv4.MergeCellsRequest{
				Range: &sheetsv4.GridRange{
					SheetId:          sheetID,
					StartRowIndex:    int64(startRow - 1),
					EndRowIndex:      int64(endRow),
					StartColumnIndex: col,
					EndColumnIndex:   col + 1,
				},
				MergeType: "MERGE_ALL",
			},
		})
	}
	return requests
}
