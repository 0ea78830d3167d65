// Package calendar turns a start month and a month count into printed
// calendars. It owns the month arithmetic, the grouping of months into rows
// of side-by-side grids, and the two output encodings: the plain text grid
// and a YAML description of the same layout.
package calendar
