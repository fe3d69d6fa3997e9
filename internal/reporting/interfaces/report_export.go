package interfaces

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	reportapp "campus-cloud/internal/reporting/application"
)

// BuildReportPDF renders a minimal PDF for a financial report.
func BuildReportPDF(report *reportapp.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Financial Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("School: %s", report.SchoolID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Window: %s", report.Window))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format(time.RFC3339)))
	pdf.Ln(5)
	source := "local aggregation"
	if report.Accounting.SnapshotUsed {
		source = "monthly snapshot"
	}
	pdf.Cell(0, 6, fmt.Sprintf("Figures: %s", source))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("Income: %.2f", report.Accounting.Income))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Pending: %.2f", report.Accounting.Pending))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Expenses: %.2f", report.Accounting.Expenses))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Due: %.2f", report.Accounting.Due))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Completion Rate: %.1f%%", report.Accounting.CompletionRate))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Net: %.2f", report.Accounting.Net))
	pdf.Ln(8)

	// Breakdown table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(60, 6, "Fee", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Due", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Paid", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Outstanding", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range report.Breakdown {
		pdf.CellFormat(60, 6, row.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.TotalDue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.TotalPaid), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", row.TotalOutstanding), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildReportXLSX renders a minimal XLSX workbook for a financial report.
func BuildReportXLSX(report *reportapp.Report) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	breakdownSheet := "breakdown"
	studentsSheet := "students"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(breakdownSheet)
	f.NewSheet(studentsSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Financial Report")
	_ = f.SetCellValue(summarySheet, "A3", "School")
	_ = f.SetCellValue(summarySheet, "B3", report.SchoolID)
	_ = f.SetCellValue(summarySheet, "A4", "Window")
	_ = f.SetCellValue(summarySheet, "B4", string(report.Window))
	_ = f.SetCellValue(summarySheet, "A5", "Generated")
	_ = f.SetCellValue(summarySheet, "B5", report.GeneratedAt.Format(time.RFC3339))
	_ = f.SetCellValue(summarySheet, "A6", "Snapshot Used")
	_ = f.SetCellValue(summarySheet, "B6", report.Accounting.SnapshotUsed)
	_ = f.SetCellValue(summarySheet, "A7", "Income")
	_ = f.SetCellValue(summarySheet, "B7", report.Accounting.Income)
	_ = f.SetCellValue(summarySheet, "A8", "Pending")
	_ = f.SetCellValue(summarySheet, "B8", report.Accounting.Pending)
	_ = f.SetCellValue(summarySheet, "A9", "Expenses")
	_ = f.SetCellValue(summarySheet, "B9", report.Accounting.Expenses)
	_ = f.SetCellValue(summarySheet, "A10", "Due")
	_ = f.SetCellValue(summarySheet, "B10", report.Accounting.Due)
	_ = f.SetCellValue(summarySheet, "A11", "Completion Rate")
	_ = f.SetCellValue(summarySheet, "B11", report.Accounting.CompletionRate)
	_ = f.SetCellValue(summarySheet, "A12", "Net")
	_ = f.SetCellValue(summarySheet, "B12", report.Accounting.Net)

	_ = f.SetCellValue(breakdownSheet, "A1", "Fee")
	_ = f.SetCellValue(breakdownSheet, "B1", "Category")
	_ = f.SetCellValue(breakdownSheet, "C1", "Due")
	_ = f.SetCellValue(breakdownSheet, "D1", "Paid")
	_ = f.SetCellValue(breakdownSheet, "E1", "Outstanding")
	_ = f.SetCellValue(breakdownSheet, "F1", "Count")
	for i, row := range report.Breakdown {
		cell := i + 2
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", cell), row.Label)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", cell), row.Category)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("C%d", cell), row.TotalDue)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("D%d", cell), row.TotalPaid)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("E%d", cell), row.TotalOutstanding)
		_ = f.SetCellValue(breakdownSheet, fmt.Sprintf("F%d", cell), row.Count)
	}

	_ = f.SetCellValue(studentsSheet, "A1", "Student")
	_ = f.SetCellValue(studentsSheet, "B1", "Class")
	_ = f.SetCellValue(studentsSheet, "C1", "Outstanding")
	_ = f.SetCellValue(studentsSheet, "D1", "Paid")
	_ = f.SetCellValue(studentsSheet, "E1", "Overdue Fees")
	_ = f.SetCellValue(studentsSheet, "F1", "Pending Fees")
	for i, student := range report.Students {
		cell := i + 2
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("A%d", cell), student.StudentName)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("B%d", cell), student.ClassName)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("C%d", cell), student.Outstanding)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("D%d", cell), student.Paid)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("E%d", cell), student.OverdueCount)
		_ = f.SetCellValue(studentsSheet, fmt.Sprintf("F%d", cell), student.PendingCount)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
