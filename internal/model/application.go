package model

// 输入表标准列名（可通过配置中的列别名映射到实际表头）
const (
	ColApplication     = "Application"
	ColProductCategory = "Product Category"
	ColProductType     = "Product Type"
	ColPlatform        = "Platform"
	ColLayer           = "Layer"
	ColOS              = "OS"
	ColComplexity      = "Complexity"
	ColLanguage        = "Language"
	ColDescription     = "Description"
	ColStack           = "Stack"
	ColLabels          = "Labels"
)

// ApplicationRecord 应用清单中的一行，读取后不再修改
//
// Name 为空的记录不参与列宽统计，也不会展开为工单。
type ApplicationRecord struct {
	Name            string
	ProductCategory string
	ProductType     string
	Platform        string
	Layer           string
	OS              string
	Complexity      string
	Language        string
	Description     string

	// 多值字段保留原始分号分隔文本，展开时统一拆分
	Stack  string
	Labels string
}

// MultiValueRaw 按标准列名取多值字段的原始文本
func (r *ApplicationRecord) MultiValueRaw(field string) string {
	switch field {
	case ColStack:
		return r.Stack
	case ColLabels:
		return r.Labels
	}
	return ""
}
