package generator

import (
	"strconv"

	"issueforge/internal/model"
)

// Flatten 把工单展平为输出单元格矩阵
// 固定列顺序与 BuildHeader 一致，多值列表补空串到全局列宽；
// 列表超出列宽时保留全部取值，不做静默截断（列宽由 MultiValueWidths
// 统计得出时不会发生）。
func Flatten(pb *model.Playbook, issues []model.IssueRow, widths map[string]int) [][]string {
	rows := make([][]string, 0, len(issues))
	for i := range issues {
		rows = append(rows, flattenRow(pb, &issues[i], widths))
	}
	return rows
}

func flattenRow(pb *model.Playbook, is *model.IssueRow, widths map[string]int) []string {
	row := make([]string, 0, len(pb.BaseColumns))
	for _, col := range pb.BaseColumns {
		row = append(row, baseCell(col, is))
	}

	for _, f := range pb.MultiValue {
		values := is.MultiValues[f.Source]
		row = append(row, values...)
		for pad := len(values); pad < widths[f.Source]; pad++ {
			row = append(row, "")
		}
	}

	return row
}

// baseCell 按列名取工单字段值
func baseCell(col string, is *model.IssueRow) string {
	switch col {
	case model.ColIssueType:
		return string(is.Type)
	case model.ColIssueID:
		return formatID(is.ID)
	case model.ColParent:
		return formatID(is.ParentID)
	case model.ColSummary:
		return is.Summary
	case model.ColDescription:
		return is.Description
	case model.ColComponents:
		return is.Components
	case model.ColPriority:
		return is.Priority
	case model.ColApplication:
		return is.Application
	case model.ColProductCategory:
		return is.ProductCategory
	case model.ColProductType:
		return is.ProductType
	case model.ColPlatform:
		return is.Platform
	case model.ColLayer:
		return is.Layer
	case model.ColOS:
		return is.OS
	case model.ColComplexity:
		return is.Complexity
	case model.ColLanguage:
		return is.Language
	}
	return ""
}

// formatID 编号只判断存在性，不做数值真假判断
func formatID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}
