package report

import (
	"fmt"
	"time"

	"github.com/cronos-hq/attendance-compliance-go/internal/domain/analytics"
	"github.com/xuri/excelize/v2"
)

// Workbook palette. Header cells get the dark blue fill; employee rows are
// tinted by their overall compliance level.
const (
	colorHeader       = "366092"
	colorCompliant    = "92D050"
	colorPartial      = "FFFF00"
	colorNonCompliant = "FF6B6B"
)

const (
	sheetSummary     = "Summary"
	sheetEmployees   = "Employee Details"
	sheetDataQuality = "Data Quality Issues"
	sheetDepartments = "Department Statistics"
)

type workbookStyles struct {
	header       int
	compliant    int
	partial      int
	nonCompliant int
}

func buildWorkbook(monthly analytics.MonthlyReport, issues []analytics.DataQualityIssue, departments []analytics.DepartmentStats, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	for _, sheet := range []string{sheetSummary, sheetEmployees, sheetDataQuality, sheetDepartments} {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, styles, monthly, generatedAt); err != nil {
		return nil, err
	}
	if err := writeEmployeeSheet(f, styles, monthly); err != nil {
		return nil, err
	}
	if err := writeDataQualitySheet(f, styles, issues); err != nil {
		return nil, err
	}
	if err := writeDepartmentSheet(f, styles, departments); err != nil {
		return nil, err
	}

	index, err := f.GetSheetIndex(sheetSummary)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	borders := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorHeader}, Pattern: 1},
		Border: borders,
	})
	if err != nil {
		return workbookStyles{}, fmt.Errorf("failed to build header style: %w", err)
	}

	statusStyle := func(color string) (int, error) {
		return f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border: borders,
		})
	}

	compliant, err := statusStyle(colorCompliant)
	if err != nil {
		return workbookStyles{}, err
	}
	partial, err := statusStyle(colorPartial)
	if err != nil {
		return workbookStyles{}, err
	}
	nonCompliant, err := statusStyle(colorNonCompliant)
	if err != nil {
		return workbookStyles{}, err
	}

	return workbookStyles{
		header:       header,
		compliant:    compliant,
		partial:      partial,
		nonCompliant: nonCompliant,
	}, nil
}

func (s workbookStyles) forStatus(status analytics.Status) int {
	switch status {
	case analytics.StatusCompliant:
		return s.compliant
	case analytics.StatusPartial:
		return s.partial
	default:
		return s.nonCompliant
	}
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, columns, styleID int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, styleID)
}

func writeSummarySheet(f *excelize.File, styles workbookStyles, monthly analytics.MonthlyReport, generatedAt time.Time) error {
	rows := [][]interface{}{
		{"Attendance Compliance Report"},
		{"Period", fmt.Sprintf("%s %d", monthly.Month, monthly.Year)},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Status", "Employees"},
		{"Compliant", monthly.Summary.Compliant},
		{"Partial", monthly.Summary.Partial},
		{"Non-Compliant", monthly.Summary.NonCompliant},
		{"Warning", monthly.Summary.Warning},
		{"Total", monthly.TotalEmployees},
	}

	for i, row := range rows {
		if err := writeRow(f, sheetSummary, i+1, row); err != nil {
			return err
		}
	}

	if err := styleRow(f, sheetSummary, 1, 2, styles.header); err != nil {
		return err
	}
	if err := styleRow(f, sheetSummary, 5, 2, styles.header); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "A", "B", 24)
}

func writeEmployeeSheet(f *excelize.File, styles workbookStyles, monthly analytics.MonthlyReport) error {
	header := []interface{}{
		"Employee ID", "Name", "Department",
		"Days Attended", "Total Hours", "Avg Hours/Day",
		"Days Status", "Hours Status", "Pattern OK", "Overall Status",
	}
	if err := writeRow(f, sheetEmployees, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheetEmployees, 1, len(header), styles.header); err != nil {
		return err
	}

	for i, emp := range monthly.EmployeeStats {
		row := i + 2
		values := []interface{}{
			emp.Employee.ID,
			emp.Employee.FullName(),
			emp.Employee.DepartmentOrUnknown(),
			emp.Stats.TotalDaysAttended,
			emp.Stats.TotalHoursWorked,
			emp.Stats.AverageHoursPerDay,
			string(emp.Stats.DaysCompliance),
			string(emp.Stats.HoursCompliance),
			emp.Stats.PatternCompliance,
			string(emp.Stats.OverallCompliance),
		}
		if err := writeRow(f, sheetEmployees, row, values); err != nil {
			return err
		}
		if err := styleRow(f, sheetEmployees, row, len(header), styles.forStatus(emp.Stats.OverallCompliance)); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetEmployees, "A", "J", 16)
}

func writeDataQualitySheet(f *excelize.File, styles workbookStyles, issues []analytics.DataQualityIssue) error {
	header := []interface{}{
		"Employee ID", "Employee Name", "Date", "Issue Type", "Description", "Records",
	}
	if err := writeRow(f, sheetDataQuality, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheetDataQuality, 1, len(header), styles.header); err != nil {
		return err
	}

	for i, issue := range issues {
		values := []interface{}{
			issue.EmployeeID,
			issue.EmployeeName,
			issue.Date.Format("2006-01-02"),
			string(issue.Type),
			issue.Description,
			issue.TotalRecords,
		}
		if err := writeRow(f, sheetDataQuality, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetDataQuality, "A", "F", 20)
}

func writeDepartmentSheet(f *excelize.File, styles workbookStyles, departments []analytics.DepartmentStats) error {
	header := []interface{}{
		"Department", "Employees", "Compliant", "Compliance Rate %", "Avg Hours/Employee", "Data Issues",
	}
	if err := writeRow(f, sheetDepartments, 1, header); err != nil {
		return err
	}
	if err := styleRow(f, sheetDepartments, 1, len(header), styles.header); err != nil {
		return err
	}

	for i, dept := range departments {
		values := []interface{}{
			dept.DepartmentName,
			dept.TotalEmployees,
			dept.CompliantEmployees,
			dept.AverageComplianceRate,
			dept.AverageHoursPerEmployee,
			dept.TotalDataIssues,
		}
		if err := writeRow(f, sheetDepartments, i+2, values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetDepartments, "A", "F", 22)
}
