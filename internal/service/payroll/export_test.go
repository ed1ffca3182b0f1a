package payroll

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/workforcelab/hrms-backend-go/internal/domain/payroll"
)

func testSheet() payroll.Sheet {
	cfg := payroll.DefaultConfig("org-1")
	input := payroll.SalaryInput{
		Base: 10000, HRA: 4000, Conveyance: 1000,
		AttendanceDays: 30, TotalDays: 30,
	}
	return payroll.Sheet{
		Year:  2026,
		Month: 8,
		Rows: []payroll.SheetRow{
			{
				EmployeeCode: "EMP001",
				EmployeeName: "Asha Verma",
				Input:        input,
				Breakdown:    payroll.Compute(input, &cfg),
			},
			{
				EmployeeCode: "EMP002",
				EmployeeName: "Rahul Nair",
				Input: payroll.SalaryInput{
					Base: 20000, HRA: 8000, Conveyance: 2000,
					AttendanceDays: 15, TotalDays: 30,
				},
				Breakdown: payroll.Compute(payroll.SalaryInput{
					Base: 20000, HRA: 8000, Conveyance: 2000,
					AttendanceDays: 15, TotalDays: 30,
				}, &cfg),
			},
		},
	}
}

func TestExportSheetFilename(t *testing.T) {
	_, filename, err := ExportSheet(testSheet(), "Acme Industries")
	require.NoError(t, err)
	assert.Equal(t, "Salary_Sheet_August_2026.xlsx", filename)
}

func TestExportSheetShape(t *testing.T) {
	data, _, err := ExportSheet(testSheet(), "Acme Industries")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	// 3 title rows + 2 header rows + 2 data rows.
	require.Len(t, rows, 7)

	assert.Equal(t, "Acme Industries", rows[0][0])
	assert.Equal(t, "Salary Sheet - August 2026", rows[1][0])
	assert.Contains(t, rows[2][0], "Printed on ")

	// Group header row then field row.
	assert.Equal(t, "Employee", rows[3][0])
	assert.Equal(t, "Code", rows[4][0])
	assert.Equal(t, "Name", rows[4][1])

	// First data row carries the employee and the computed totals.
	assert.Equal(t, "EMP001", rows[5][0])
	assert.Equal(t, "Asha Verma", rows[5][1])
	assert.Equal(t, "EMP002", rows[6][0])
}

func TestExportSheetValuesRounded(t *testing.T) {
	sheet := testSheet()
	data, _, err := ExportSheet(sheet, "Acme Industries")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	// Gross for the full-attendance row: 10000+4000+1000.
	gross, err := f.GetCellValue(sheetName, "H6")
	require.NoError(t, err)
	assert.Equal(t, "15000", gross)

	// Half-attendance row pro-rates the base.
	base, err := f.GetCellValue(sheetName, "E7")
	require.NoError(t, err)
	assert.Equal(t, "10000", base)
}

func TestExportSheetEmpty(t *testing.T) {
	data, filename, err := ExportSheet(payroll.Sheet{Year: 2026, Month: 1}, "Acme Industries")
	require.NoError(t, err)
	assert.Equal(t, "Salary_Sheet_January_2026.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	// Title block and header only.
	assert.Len(t, rows, 5)
}
