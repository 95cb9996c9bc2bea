package model

// IssueType 工单类型
type IssueType string

const (
	IssueEpic      IssueType = "Epic"
	IssueTask      IssueType = "Task"
	IssueUserStory IssueType = "User Story"
)

// 输出表中工单自身字段的列名
const (
	ColIssueType  = "Issue Type"
	ColIssueID    = "Issue Id"
	ColParent     = "Parent"
	ColSummary    = "Summary"
	ColPriority   = "Priority"
	ColComponents = "Components"
)

// NoParent 表示模板没有父级工单
const NoParent = -1

// IssueTemplate 工单模板，目录在构建期写死，不由输入数据驱动
type IssueTemplate struct {
	Type           IssueType
	SummaryPattern string // 含 {app} 占位符
	Description    string
	Components     string

	// ParentIndex 指向同一应用批次内的父级模板下标，NoParent 表示无父级
	ParentIndex int

	// AppendAppDescription 为 true 时把输入行的 Description
	// 以 "Initial idea: ..." 追加到模板描述之后
	AppendAppDescription bool
}

// HasParent 是否存在父级模板
func (t *IssueTemplate) HasParent() bool {
	return t.ParentIndex != NoParent
}

// MultiValueField 多值字段声明：输入来源列与输出重复列名
//
// 目标系统用同名重复列表示一个多值字段，因此输出列名（如 "Label"）
// 与输入来源列名（如 "Labels"）可以不同。
type MultiValueField struct {
	Source string // ApplicationRecord 中的标准列名
	Column string // 输出表头中重复出现的列名
}

// Playbook 生成剧本：固定列顺序 + 多值字段顺序 + 模板目录
type Playbook struct {
	Name        string
	BaseColumns []string
	MultiValue  []MultiValueField
	Templates   []IssueTemplate

	// AssignIDs 为 true 时给每行工单分配全局递增编号，
	// 子工单通过编号引用同批次先前产出的史诗
	AssignIDs bool
}

// IssuesPerApplication 每个应用展开的工单数
func (p *Playbook) IssuesPerApplication() int {
	return len(p.Templates)
}
