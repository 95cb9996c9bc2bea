package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"issueforge/internal/model"
)

// 标准列名全集，表头按规范化后的文本匹配
var canonicalColumns = []string{
	model.ColApplication,
	model.ColProductCategory,
	model.ColProductType,
	model.ColPlatform,
	model.ColLayer,
	model.ColOS,
	model.ColComplexity,
	model.ColLanguage,
	model.ColDescription,
	model.ColStack,
	model.ColLabels,
}

// Options 读取选项
type Options struct {
	// Sheet 指定 xlsx 工作表，空串取第一个
	Sheet string

	// Aliases 列别名：标准列名 -> 实际表头文本
	Aliases map[string]string
}

// Reader 应用清单读取器，按扩展名选择 CSV 或 Excel 解析
type Reader struct {
	fileID  string
	sheet   string
	aliases map[string]string // 规范化后的实际表头 -> 标准列名
}

// NewReader 创建读取器
func NewReader(opts Options) *Reader {
	aliases := make(map[string]string)
	for canonical, actual := range opts.Aliases {
		actual = NormalizeHeader(actual)
		if actual == "" {
			continue
		}
		aliases[actual] = canonical
	}
	return &Reader{
		fileID:  uuid.New().String(),
		sheet:   opts.Sheet,
		aliases: aliases,
	}
}

// FileID 获取本次读取的文件ID
func (r *Reader) FileID() string {
	return r.fileID
}

// ReadFile 读取输入文件，首行为表头，返回全部数据行
// 数据行数为零不是错误，返回空切片
func (r *Reader) ReadFile(path string) ([]model.ApplicationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开输入文件: %w", err)
	}
	defer f.Close()

	var rows [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = r.readWorkbook(f)
	default:
		rows, err = r.readCSV(f)
	}
	if err != nil {
		return nil, err
	}

	return r.buildRecords(rows), nil
}

func (r *Reader) readWorkbook(reader io.Reader) ([][]string, error) {
	wb, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer wb.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %s 失败: %w", sheet, err)
	}
	return rows, nil
}

func (r *Reader) readCSV(reader io.Reader) ([][]string, error) {
	cr := csv.NewReader(reader)
	// 行尾缺失的单元格按空值处理，不要求每行列数一致
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("解析 CSV 失败: %w", err)
	}
	return rows, nil
}

// buildRecords 首行为表头，其余行映射为应用记录
func (r *Reader) buildRecords(rows [][]string) []model.ApplicationRecord {
	if len(rows) == 0 {
		return nil
	}

	index := r.columnIndex(rows[0])
	records := make([]model.ApplicationRecord, 0, len(rows)-1)

	for _, row := range rows[1:] {
		cell := func(canonical string) string {
			idx, ok := index[canonical]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		records = append(records, model.ApplicationRecord{
			Name:            cell(model.ColApplication),
			ProductCategory: cell(model.ColProductCategory),
			ProductType:     cell(model.ColProductType),
			Platform:        cell(model.ColPlatform),
			Layer:           cell(model.ColLayer),
			OS:              cell(model.ColOS),
			Complexity:      cell(model.ColComplexity),
			Language:        cell(model.ColLanguage),
			Description:     cell(model.ColDescription),
			Stack:           cell(model.ColStack),
			Labels:          cell(model.ColLabels),
		})
	}

	return records
}

// columnIndex 解析表头：标准列名 -> 列下标，同名列取首个
func (r *Reader) columnIndex(header []string) map[string]int {
	index := make(map[string]int)
	for i, cell := range header {
		canonical := r.canonical(NormalizeHeader(cell))
		if canonical == "" {
			continue
		}
		if _, ok := index[canonical]; !ok {
			index[canonical] = i
		}
	}
	return index
}

func (r *Reader) canonical(header string) string {
	if header == "" {
		return ""
	}
	if canonical, ok := r.aliases[header]; ok {
		return canonical
	}
	for _, c := range canonicalColumns {
		if header == c {
			return c
		}
	}
	return ""
}
