package calendar

// Rows groups months into rows of at most columns months each. Only the last
// row may be shorter. A columns value below 1 is treated as 1.
func Rows(months []Month, columns int) [][]Month {
	if columns < 1 {
		columns = 1
	}
	rows := make([][]Month, 0, (len(months)+columns-1)/columns)
	for i := 0; i < len(months); i += columns {
		end := min(i+columns, len(months))
		rows = append(rows, months[i:end])
	}
	return rows
}
