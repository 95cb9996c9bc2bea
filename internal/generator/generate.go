// Package generator 把应用记录按剧本展开为可导入的工单行
//
// 列宽统计依赖全量数据，因此展开是两遍处理：
// 先统计多值字段列宽，再构建表头与逐行展开。
package generator

import "issueforge/internal/model"

// Result 一次生成的完整产物
type Result struct {
	Header []string
	Rows   [][]string
	Issues []model.IssueRow
	Widths map[string]int
}

// Generate 执行完整生成流程：统计列宽 -> 构建表头 -> 展开 -> 展平
func Generate(pb *model.Playbook, records []model.ApplicationRecord, opts Options) (*Result, error) {
	widths := MultiValueWidths(pb, records)

	issues, err := Expand(pb, records, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		Header: BuildHeader(pb, widths),
		Rows:   Flatten(pb, issues, widths),
		Issues: issues,
		Widths: widths,
	}, nil
}
