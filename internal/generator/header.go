package generator

import "issueforge/internal/model"

// BuildHeader 构建输出表头
// 固定列按剧本声明顺序排列，之后每个多值字段追加 N 个同名重复列，
// N 为该字段的全局列宽，宽度为 0 时不产生任何列。
//
// 同名重复列是目标系统表示多值字段的约定，并非表头错误。
func BuildHeader(pb *model.Playbook, widths map[string]int) []string {
	header := make([]string, 0, len(pb.BaseColumns))
	header = append(header, pb.BaseColumns...)

	for _, f := range pb.MultiValue {
		for i := 0; i < widths[f.Source]; i++ {
			header = append(header, f.Column)
		}
	}

	return header
}
