package generator

import (
	"fmt"
	"strings"

	"issueforge/internal/model"
	"issueforge/internal/parser"
)

// DefaultPriority 未配置时所有工单的优先级
const DefaultPriority = "Low"

// Options 展开选项
type Options struct {
	// Priority 生成工单的优先级，空串取 DefaultPriority
	Priority string
}

// Expand 把全部有效记录按剧本模板展开为工单
//
// 编号计数器在整个展开过程中单调递增，跨应用不重置；
// Application 为空的记录直接跳过，不产生任何工单。
func Expand(pb *model.Playbook, records []model.ApplicationRecord, opts Options) ([]model.IssueRow, error) {
	priority := opts.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	issues := make([]model.IssueRow, 0, len(records)*pb.IssuesPerApplication())
	nextID := 1

	for i := range records {
		rec := &records[i]
		if rec.Name == "" {
			continue
		}

		batch, next, err := expandApplication(pb, rec, nextID, priority)
		if err != nil {
			return nil, err
		}
		nextID = next
		issues = append(issues, batch...)
	}

	return issues, nil
}

// expandApplication 展开单个应用，返回工单批次和下一个可用编号
func expandApplication(pb *model.Playbook, rec *model.ApplicationRecord, nextID int, priority string) ([]model.IssueRow, int, error) {
	rows := make([]model.IssueRow, 0, len(pb.Templates))

	// 本批次内各模板已分配的编号，子工单按下标回查父级史诗
	assigned := make([]int, len(pb.Templates))

	for ti := range pb.Templates {
		tpl := &pb.Templates[ti]

		row := model.IssueRow{
			Type:            tpl.Type,
			Summary:         strings.ReplaceAll(tpl.SummaryPattern, "{app}", rec.Name),
			Description:     tpl.Description,
			Components:      tpl.Components,
			Priority:        priority,
			Application:     rec.Name,
			ProductCategory: rec.ProductCategory,
			ProductType:     rec.ProductType,
			Platform:        rec.Platform,
			Layer:           rec.Layer,
			OS:              rec.OS,
			Complexity:      rec.Complexity,
			Language:        rec.Language,
		}

		if tpl.AppendAppDescription && rec.Description != "" {
			row.Description += "\nInitial idea: " + rec.Description
		}

		row.MultiValues = make(map[string][]string, len(pb.MultiValue))
		for _, f := range pb.MultiValue {
			row.MultiValues[f.Source] = parser.SplitMulti(rec.MultiValueRaw(f.Source))
		}

		if pb.AssignIDs {
			id := nextID
			nextID++
			row.ID = &id
			assigned[ti] = id

			if tpl.HasParent() {
				if tpl.ParentIndex < 0 || tpl.ParentIndex >= ti {
					return nil, 0, fmt.Errorf("内部错误: 剧本 %s 模板 %d 的父级下标 %d 不指向先前的模板",
						pb.Name, ti, tpl.ParentIndex)
				}
				pid := assigned[tpl.ParentIndex]
				row.ParentID = &pid
			}
		}

		rows = append(rows, row)
	}

	// 程序性校验，合法剧本下不应触发；触发时中止而不是输出残缺文件
	if len(rows) != pb.IssuesPerApplication() {
		return nil, 0, fmt.Errorf("内部错误: 应用 %s 生成 %d 条工单，预期 %d 条",
			rec.Name, len(rows), pb.IssuesPerApplication())
	}

	return rows, nextID, nil
}
