package render

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/example/rounds/internal/core/snapshot"
	"github.com/example/rounds/internal/ports/secondary"
)

// SheetName is the worksheet holding the report.
const SheetName = "Route"

// XLSXRenderer implements secondary.ReportRenderer with a single-sheet workbook.
//
// Layout: title in A1, identification labels in A3:A7 with values in B3:B7,
// then an Item/Observation header followed by one row per checklist item.
type XLSXRenderer struct {
	title  string
	logger *slog.Logger
}

// NewXLSXRenderer creates a spreadsheet renderer whose sheets carry title in A1.
// Skipped photos are reported to logger.
func NewXLSXRenderer(title string, logger *slog.Logger) *XLSXRenderer {
	return &XLSXRenderer{title: title, logger: logger}
}

// Format returns "xlsx".
func (r *XLSXRenderer) Format() string { return "xlsx" }

// Render writes snap as a workbook at dest.
func (r *XLSXRenderer) Render(ctx context.Context, snap *snapshot.Snapshot, dest string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := r.fill(f, snap); err != nil {
		return "", err
	}

	return writeFile(dest, func(tmp string) error {
		return f.SaveAs(tmp)
	})
}

func (r *XLSXRenderer) fill(f *excelize.File, snap *snapshot.Snapshot) error {
	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create text style: %w", err)
	}

	set := func(col, row int, value any, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write %s: %w", cell, err)
		}
		if style != 0 {
			return f.SetCellStyle(SheetName, cell, cell, style)
		}
		return nil
	}

	if err := set(1, 1, r.title, titleStyle); err != nil {
		return err
	}

	row := 3
	for _, field := range [][2]string{
		{labelDate, snap.Date},
		{labelLeader, snap.Identification.Leader},
		{labelMachine, snap.Identification.Machine},
		{labelShift, snap.Identification.Shift},
		{labelRoute, snap.Identification.Route},
	} {
		if err := set(1, row, field[0], headerStyle); err != nil {
			return err
		}
		if err := set(2, row, field[1], 0); err != nil {
			return err
		}
		row++
	}

	row++
	if err := set(1, row, labelItem, headerStyle); err != nil {
		return err
	}
	if err := set(2, row, labelNote, headerStyle); err != nil {
		return err
	}
	row++

	if len(snap.Items) == 0 {
		return set(1, row, noItemsText, 0)
	}

	for _, item := range snap.Items {
		if err := set(1, row, item.Title, wrapStyle); err != nil {
			return err
		}
		if err := set(2, row, item.Observation.String(), wrapStyle); err != nil {
			return err
		}
		if embeddablePhoto(r.logger, item) {
			cell, _ := excelize.CoordinatesToCellName(3, row)
			err := f.AddPicture(SheetName, cell, item.PhotoPath, &excelize.GraphicOptions{
				AutoFit:         true,
				LockAspectRatio: true,
			})
			if err != nil {
				r.logger.Warn("photo skipped", "item", item.Title, "path", item.PhotoPath, "error", err)
			} else if err := f.SetRowHeight(SheetName, row, 90); err != nil {
				return err
			}
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "A", 30); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 60); err != nil {
		return err
	}
	return f.SetColWidth(SheetName, "C", "C", 30)
}

// Ensure XLSXRenderer implements the interface.
var _ secondary.ReportRenderer = (*XLSXRenderer)(nil)
