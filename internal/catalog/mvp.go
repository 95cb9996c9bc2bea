package catalog

import "issueforge/internal/model"

// PlaybookMVP MVP 路线图剧本：每个应用 12 条工单，
// 全局递增编号，子工单挂接到同批次的史诗之下
// （发现 -> MVP 交付 -> V2 发现 -> V2 交付）
const PlaybookMVP = "mvp"

// mvp 剧本内的模板下标，ParentIndex 引用用
const (
	mvpEpicDiscovery = 0
	mvpEpicMVP       = 3
	mvpEpicDiscV2    = 6
	mvpEpicDevV2     = 8
)

// MVP 构建 MVP 路线图剧本
func MVP() *model.Playbook {
	return &model.Playbook{
		Name: PlaybookMVP,
		BaseColumns: []string{
			model.ColIssueType,
			model.ColIssueID,
			model.ColParent,
			model.ColSummary,
			model.ColPriority,
			model.ColApplication,
			model.ColProductCategory,
			model.ColProductType,
			model.ColPlatform,
			model.ColLayer,
			model.ColOS,
			model.ColComplexity,
			model.ColComponents,
			model.ColDescription,
		},
		MultiValue: []model.MultiValueField{
			{Source: model.ColLabels, Column: "Label"},
		},
		AssignIDs: true,
		Templates: []model.IssueTemplate{
			// ---------- MVP 发现 ----------
			{
				Type:           model.IssueEpic,
				SummaryPattern: "[{app}] Product discovery",
				Description: "Execute the product discovery cycle to understand the opportunity, " +
					"validate desirability and feasibility, define the high-level solution, " +
					"and shape the initial MVP.",
				Components:           "Discovery",
				ParentIndex:          model.NoParent,
				AppendAppDescription: true,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Conduct product discovery",
				Description: "This task covers the core activities required to define the problem, " +
					"the audience, and the product scope:\n" +
					"- Market research\n" +
					"- Persona definition\n" +
					"- User journey mapping\n" +
					"- Requirements and user stories\n" +
					"- Acceptance criteria\n" +
					"- Low-fidelity wireframe\n" +
					"- Conceptual prototype\n" +
					"- MVP definition and prioritization",
				Components:  "Discovery",
				ParentIndex: mvpEpicDiscovery,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Perform tech discovery",
				Description: "This task evaluates the technical feasibility and shapes the initial " +
					"technical direction of the product:\n" +
					"- Technical feasibility assessment\n" +
					"- High-level architecture\n" +
					"- High-level DDD mapping\n" +
					"- Macro technology stack\n" +
					"- Conceptual data model\n" +
					"- Technical risks & trade-offs",
				Components:  "Discovery",
				ParentIndex: mvpEpicDiscovery,
			},
			// ---------- MVP 交付 ----------
			{
				Type:           model.IssueEpic,
				SummaryPattern: "[{app}] MVP development",
				Description:    "Implement MVP.",
				Components:     "Delivery",
				ParentIndex:    model.NoParent,
			},
			{
				Type:           model.IssueUserStory,
				SummaryPattern: "[{app}] Implement core MVP features",
				Description:    "Develop the minimum set of features required to validate the product hypothesis.",
				Components:     "Delivery",
				ParentIndex:    mvpEpicMVP,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Implement minimal CI/CD pipeline and deploy MVP",
				Description: "Set up a minimal CI/CD pipeline and deliver the MVP to a demo or " +
					"production-like environment.",
				Components:  "Delivery",
				ParentIndex: mvpEpicMVP,
			},
			// ---------- V2 发现 ----------
			{
				Type:           model.IssueEpic,
				SummaryPattern: "[{app}] V2 – Product Discovery",
				Description: "Conduct discovery to refine the product vision and prepare the scope " +
					"for the second version.",
				Components:  "Discovery",
				ParentIndex: model.NoParent,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] V2 – Conduct product and tech discovery",
				Description: "Define scope, improvements, user stories, and high-level technical " +
					"definitions for V2 based on insights from MVP usage and feedback.",
				Components:  "Discovery",
				ParentIndex: mvpEpicDiscV2,
			},
			// ---------- V2 交付 ----------
			{
				Type:           model.IssueEpic,
				SummaryPattern: "[{app}] V2 - Development",
				Description:    "Implement improvements, new features, and foundational engineering quality for V2.",
				Components:     "Delivery",
				ParentIndex:    model.NoParent,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Establish automated testing baseline",
				Description:    "Implement unit tests (minimal required coverage) and initial integration tests.",
				Components:     "Delivery",
				ParentIndex:    mvpEpicDevV2,
			},
			{
				Type:           model.IssueTask,
				SummaryPattern: "[{app}] Implement security scanning automation",
				Description: "Add automated dependency scanning, code security checks, and minimal " +
					"DevSecOps pipeline integration.",
				Components:  "Delivery",
				ParentIndex: mvpEpicDevV2,
			},
			{
				Type:           model.IssueUserStory,
				SummaryPattern: "[{app}] Develop V2 features based on new discovery insights",
				Description: "Implement the new features prioritized for V2, following the baseline " +
					"of automated tests and security practices.",
				Components:  "Delivery",
				ParentIndex: mvpEpicDevV2,
			},
		},
	}
}
