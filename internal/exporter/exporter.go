// Package exporter 把生成结果写出为 CSV 或 Excel 文件
package exporter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetName Excel 输出的工作表名
const SheetName = "工单数据"

// Write 按输出路径扩展名选择格式，无条件覆盖已存在的文件
// .xlsx/.xlsm 写工作簿，其余写 CSV
func Write(path string, header []string, rows [][]string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return WriteXLSX(path, header, rows)
	default:
		return WriteCSV(path, header, rows)
	}
}

// WriteCSV 写出 CSV，描述中的换行和分隔符由标准引号转义保证往返
func WriteCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("写入表头失败: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("写入数据行失败: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return f.Close()
}

// WriteXLSX 写出 Excel 工作簿，表头加粗并填充底色
func WriteXLSX(path string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetName)

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("表头坐标转换失败: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("写入表头失败: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err == nil {
		_ = f.SetRowStyle(SheetName, 1, 1, headerStyle)
	}

	for ri, row := range rows {
		for ci, value := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return fmt.Errorf("数据坐标转换失败: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return fmt.Errorf("写入数据行失败: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("保存工作簿失败: %w", err)
	}
	return nil
}
