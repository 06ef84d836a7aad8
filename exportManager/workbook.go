package exportManager

import (
	"github.com/xuri/excelize/v2"

	"riglogger/sessions"
	"riglogger/support/globals"
)

const sheetName = "实验数据"

// buildWorkbook lays the registry out as one titled two column block per
// pressure target, sorted ascending.
func buildWorkbook(registry *sessions.Registry) *excelize.File {
	file := excelize.NewFile()
	_ = file.SetSheetName("Sheet1", sheetName)

	titleStyle, _ := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	boldStyle, _ := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	_ = file.SetCellValue(sheetName, "A1", "实验数据记录")
	_ = file.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	keys := registry.Pressures()
	for index, pressure := range keys {
		startCol := index*2 + 1
		title, _ := excelize.CoordinatesToCellName(startCol, 2)
		titleEnd, _ := excelize.CoordinatesToCellName(startCol+1, 2)
		_ = file.SetCellValue(sheetName, title, "气压: "+globals.FormatPressure(pressure)+" MPa")
		_ = file.SetCellStyle(sheetName, title, title, headerStyle)
		_ = file.MergeCell(sheetName, title, titleEnd)

		force, _ := excelize.CoordinatesToCellName(startCol, 3)
		shrink, _ := excelize.CoordinatesToCellName(startCol+1, 3)
		_ = file.SetCellValue(sheetName, force, "力 (N)")
		_ = file.SetCellValue(sheetName, shrink, "收缩率 (%)")
		_ = file.SetCellStyle(sheetName, force, shrink, boldStyle)

		for row, point := range registry.Records(pressure) {
			forceCell, _ := excelize.CoordinatesToCellName(startCol, 4+row)
			shrinkCell, _ := excelize.CoordinatesToCellName(startCol+1, 4+row)
			_ = file.SetCellValue(sheetName, forceCell, point.Force)
			_ = file.SetCellValue(sheetName, shrinkCell, point.Shrinkage)
		}
	}

	// one spare column keeps the block after the last one readable
	last, _ := excelize.ColumnNumberToName(len(keys)*2 + 1)
	_ = file.SetColWidth(sheetName, "A", last, 25)
	return file
}
