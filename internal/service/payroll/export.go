package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
)

const sheetName = "Salary Sheet"

// sheetHeaders is the two-row column header: a group row and a field
// row. Empty group cells are merged into the group on their left.
var sheetGroups = []struct {
	Title string
	Cols  []string
}{
	{"Employee", []string{"Code", "Name"}},
	{"Attendance", []string{"Days", "Total"}},
	{"Earnings", []string{"Basic", "HRA", "Conveyance", "Gross"}},
	{"Deductions", []string{"PF", "ESI", "Prof. Tax"}},
	{"Employer", []string{"PF", "Pension", "ESI"}},
	{"Totals", []string{"Net Payable", "CTC"}},
}

// ExportSheet renders a computed salary run as an .xlsx workbook:
// a 3-row title block (company, report title, print date), the 2-row
// column header, then one row per employee. Values are rounded for
// display only; the computation keeps full precision.
func ExportSheet(sheet payroll.Sheet, companyName string) (data []byte, filename string, err error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	monthName := time.Month(sheet.Month).String()
	totalCols := 0
	for _, g := range sheetGroups {
		totalCols += len(g.Cols)
	}
	lastCol, _ := excelize.ColumnNumberToName(totalCols)

	// Title block, rows 1-3.
	titles := []string{
		companyName,
		fmt.Sprintf("Salary Sheet - %s %d", monthName, sheet.Year),
		"Printed on " + time.Now().Format("02 Jan 2006"),
	}
	for i, title := range titles {
		row := i + 1
		if err := f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row)); err != nil {
			return nil, "", fmt.Errorf("merge title row: %w", err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), title); err != nil {
			return nil, "", fmt.Errorf("write title row: %w", err)
		}
	}

	// Column header, rows 4-5.
	col := 1
	for _, g := range sheetGroups {
		start, _ := excelize.ColumnNumberToName(col)
		end, _ := excelize.ColumnNumberToName(col + len(g.Cols) - 1)
		if len(g.Cols) > 1 {
			if err := f.MergeCell(sheetName, start+"4", end+"4"); err != nil {
				return nil, "", fmt.Errorf("merge header group: %w", err)
			}
		}
		if err := f.SetCellValue(sheetName, start+"4", g.Title); err != nil {
			return nil, "", fmt.Errorf("write header group: %w", err)
		}
		for i, c := range g.Cols {
			name, _ := excelize.ColumnNumberToName(col + i)
			if err := f.SetCellValue(sheetName, name+"5", c); err != nil {
				return nil, "", fmt.Errorf("write header field: %w", err)
			}
		}
		col += len(g.Cols)
	}

	// Data rows from row 6.
	for i, r := range sheet.Rows {
		values := []any{
			r.EmployeeCode,
			r.EmployeeName,
			r.Input.AttendanceDays,
			r.Input.TotalDays,
			payroll.Round(r.Breakdown.ProRatedBase),
			payroll.Round(r.Breakdown.ProRatedHRA),
			payroll.Round(r.Breakdown.ProRatedConveyance),
			payroll.Round(r.Breakdown.GrossProRated),
			payroll.Round(r.Breakdown.EmployeePF),
			payroll.Round(r.Breakdown.EmployeeESI),
			payroll.Round(r.Breakdown.ProfessionalTax),
			payroll.Round(r.Breakdown.EmployerPF),
			payroll.Round(r.Breakdown.PensionFund),
			payroll.Round(r.Breakdown.EmployerESI),
			payroll.Round(r.Breakdown.NetPayable),
			payroll.Round(r.Breakdown.CTC),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+6)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, "", fmt.Errorf("write data row %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("serialize workbook: %w", err)
	}

	filename = fmt.Sprintf("Salary_Sheet_%s_%d.xlsx", monthName, sheet.Year)
	return buf.Bytes(), filename, nil
}
