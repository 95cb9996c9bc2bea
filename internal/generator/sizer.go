package generator

import (
	"issueforge/internal/model"
	"issueforge/internal/parser"
)

// MultiValueWidths 统计每个多值字段的全局列宽
// 取全部有效记录（Application 非空）中拆分后取值个数的最大值，
// 无取值时为 0。无效记录既不参与统计也不会被展开。
func MultiValueWidths(pb *model.Playbook, records []model.ApplicationRecord) map[string]int {
	widths := make(map[string]int, len(pb.MultiValue))
	for _, f := range pb.MultiValue {
		widths[f.Source] = 0
	}

	for i := range records {
		rec := &records[i]
		if rec.Name == "" {
			continue
		}
		for _, f := range pb.MultiValue {
			n := len(parser.SplitMulti(rec.MultiValueRaw(f.Source)))
			if n > widths[f.Source] {
				widths[f.Source] = n
			}
		}
	}

	return widths
}
