package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gridcal/internal/ctxlog"
)

// Run prints the configured calendar.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.",
		"start", a.config.Start.String(),
		"column_num", a.config.ColumnNum,
		"month_num", a.config.MonthNum,
	)

	if err := a.printer.Print(ctx, a.outW, a.config.Start, a.config.MonthNum, a.config.ColumnNum); err != nil {
		a.logger.Debug("Printing failed.", "error", err)
		return fmt.Errorf("failed to print calendar: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
