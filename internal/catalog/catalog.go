// Package catalog 内置生成剧本目录
//
// 剧本是构建期写死的配置数据，与展开算法分离。
package catalog

import (
	"fmt"
	"strings"

	"issueforge/internal/model"
)

// ByName 按名称取剧本
func ByName(name string) (*model.Playbook, error) {
	switch name {
	case PlaybookDelivery:
		return Delivery(), nil
	case PlaybookMVP:
		return MVP(), nil
	}
	return nil, fmt.Errorf("未知剧本 %q，可选: %s", name, strings.Join(Names(), "|"))
}

// Names 全部剧本名称，按声明顺序
func Names() []string {
	return []string{PlaybookDelivery, PlaybookMVP}
}
