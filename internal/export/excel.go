package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"fieldwork-backend/internal/domain"
)

// WorkOrderDetailExcel renders the per-commessa report as an xlsx workbook.
// It consumes the aggregation engine's output directly so the export and the
// UI tables can never drift apart on grouping.
func WorkOrderDetailExcel(detail *domain.WorkOrderDetail) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)

	title := fmt.Sprintf("Work order: %s", detail.WorkOrderName)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	headers := []string{"Date", "Employee", "Hours", "Work types", "Materials", "Notes"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 4
	for _, r := range detail.Rows {
		values := []interface{}{
			r.Date,
			r.EmployeeName,
			r.Hours,
			strings.Join(r.WorkTypes, ", "),
			strings.Join(r.Materials, ", "),
			r.Notes,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	row++
	summary := [][]interface{}{
		{"Total hours", detail.TotalHours},
		{"Days worked", detail.DayCount},
		{"Employees", detail.EmployeeCount},
	}
	for _, pair := range summary {
		labelCell, _ := excelize.CoordinatesToCellName(1, row)
		valueCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(sheet, labelCell, pair[0]); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, valueCell, pair[1]); err != nil {
			return nil, err
		}
		row++
	}

	return f, nil
}

// FuelStatisticsExcel renders the fuel statistics projection as an xlsx
// workbook with one sheet per grouping.
func FuelStatisticsExcel(stats *domain.FuelStatistics) (*excelize.File, error) {
	f := excelize.NewFile()

	vehicleSheet := "By vehicle"
	f.SetSheetName("Sheet1", vehicleSheet)
	vehicleHeaders := []string{"Vehicle", "Total liters", "Refills", "Average liters"}
	for i, h := range vehicleHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(vehicleSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for i, s := range stats.ByVehicle {
		values := []interface{}{s.VehicleName, s.TotalLiters, s.RefillCount, s.AverageLiters}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(vehicleSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if len(stats.ByMonth) > 0 {
		monthSheet := "By month"
		if _, err := f.NewSheet(monthSheet); err != nil {
			return nil, err
		}
		monthHeaders := []string{"Month", "Total liters", "Refills"}
		for i, h := range monthHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(monthSheet, cell, h); err != nil {
				return nil, err
			}
		}
		for i, s := range stats.ByMonth {
			values := []interface{}{s.Month, s.TotalLiters, s.RefillCount}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				if err := f.SetCellValue(monthSheet, cell, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return f, nil
}
