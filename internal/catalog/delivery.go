package catalog

import "issueforge/internal/model"

// PlaybookDelivery 单轮交付剧本：每个应用 5 条平铺工单，不分配编号
const PlaybookDelivery = "delivery"

// Delivery 构建交付剧本
func Delivery() *model.Playbook {
	return &model.Playbook{
		Name: PlaybookDelivery,
		BaseColumns: []string{
			model.ColIssueType,
			model.ColSummary,
			model.ColDescription,
			model.ColApplication,
			model.ColProductCategory,
			model.ColProductType,
			model.ColPlatform,
			model.ColLayer,
			model.ColOS,
			model.ColComplexity,
			model.ColLanguage,
			model.ColComponents,
			model.ColPriority,
		},
		MultiValue: []model.MultiValueField{
			{Source: model.ColStack, Column: "Stack"},
			{Source: model.ColLabels, Column: "Label"},
		},
		Templates: []model.IssueTemplate{
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Conduct product and tech discovery",
				Description: "Define scope, persona, user journey, user story, acceptance criteria " +
					"and high-level technical definitions (e.g. language, frameworks, " +
					"runtime and deployment approach).",
				Components:  "Discovery",
				ParentIndex: model.NoParent,
			},
			{
				Type:           model.IssueUserStory,
				SummaryPattern: "[{app}] Implement the solution",
				Description:    "Develop the solution according to the defined scope and technical decisions.",
				Components:     "Delivery",
				ParentIndex:    model.NoParent,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Establish automated testing baseline",
				Description: "Implement unit tests (minimal required coverage) and initial " +
					"integration tests if applicable.",
				Components:  "Delivery",
				ParentIndex: model.NoParent,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Implement security scanning automation",
				Description: "Add automated dependency scanning, code security checks, and " +
					"minimal DevSecOps pipeline integration.",
				Components:  "Delivery",
				ParentIndex: model.NoParent,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Implement minimal CI/CD pipeline and deploy the solution",
				Description: "Set up a minimal CI/CD pipeline including test and security scan " +
					"automation, and deploy the solution to a demo or production-like " +
					"environment.",
				Components:  "Delivery",
				ParentIndex: model.NoParent,
			},
		},
	}
}
