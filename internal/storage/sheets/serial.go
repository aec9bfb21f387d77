package sheets

import (
	"strconv"
	"strings"
)

// nextSerial computes the next registration number from the serial column.
// It scans every value and takes max+1 rather than "last row + 1": organisers
// edit the sheet by hand, so stray or out-of-order values do happen. Blank and
// non-numeric cells are ignored; an empty column starts at 1.
func nextSerial(column []string) int {
	last := 0
	for _, cell := range column {
		n, err := strconv.Atoi(strings.TrimSpace(cell))
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}
	return last + 1
}
