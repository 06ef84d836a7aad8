package postprocess

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"riglogger/dataformats"
)

// Block is one pressure series parsed from a workbook.
type Block struct {
	Label  string
	Points []dataformats.Measurement
}

var pressurePattern = regexp.MustCompile(`[\d.]+`)

// ReadBlocks scans every column of the first sheet for pressure titles and
// collects the two column series below each one. Rows where either cell is
// not numeric are skipped as a pair.
func ReadBlocks(path string) ([]Block, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "postprocess.ReadBlocks: unable to open the workbook")
	}
	defer func() { _ = file.Close() }()
	fmt.Printf("成功加载文件: '%s'\n", path)

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("postprocess.ReadBlocks: the workbook has no sheets")
	}
	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "postprocess.ReadBlocks: unable to read the sheet")
	}

	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	var blocks []Block
	for column := 0; column < columns; column++ {
		titleRow, title := -1, ""
		for index, row := range rows {
			if column < len(row) && strings.Contains(row[column], "气压") {
				titleRow, title = index, row[column]
				break
			}
		}
		if titleRow < 0 {
			continue
		}
		label := pressurePattern.FindString(title)
		if label == "" {
			label = fmt.Sprintf("系列%d", column+1)
		}
		fmt.Printf("\n找到数据块: '%s' -> 解析为标签: '%s'\n", title, label)

		var points []dataformats.Measurement
		for index := titleRow + 2; index < len(rows); index++ {
			row := rows[index]
			if column+1 >= len(row) {
				continue
			}
			force, err := strconv.ParseFloat(strings.TrimSpace(row[column]), 64)
			if err != nil {
				continue
			}
			shrinkage, err := strconv.ParseFloat(strings.TrimSpace(row[column+1]), 64)
			if err != nil {
				continue
			}
			points = append(points, dataformats.Measurement{Force: force, Shrinkage: shrinkage})
		}
		if len(points) != 0 {
			fmt.Printf("解析成功，找到 %d 个有效数据点。\n", len(points))
			blocks = append(blocks, Block{Label: label, Points: points})
		}
	}
	return blocks, nil
}
