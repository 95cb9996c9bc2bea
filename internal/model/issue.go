package model

// IssueRow 一行生成结果：模板解析完成、属性已从应用记录拷贝
//
// ID/ParentID 用指针表达有无，判断时只做存在性检查，
// 不依赖数值真假（编号 0 也应视为有效编号）。
type IssueRow struct {
	Type     IssueType
	ID       *int
	ParentID *int

	Summary     string
	Description string
	Components  string
	Priority    string

	Application     string
	ProductCategory string
	ProductType     string
	Platform        string
	Layer           string
	OS              string
	Complexity      string
	Language        string

	// 已拆分、未补齐的多值列表，按 Playbook.MultiValue 的 Source 索引
	MultiValues map[string][]string
}
