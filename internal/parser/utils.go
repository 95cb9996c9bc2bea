package parser

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// SplitMulti 拆分分号分隔的多值文本
// 各段去除首尾空白，丢弃空段，保持原始顺序
// 例: " Go ; Python;; JS " -> ["Go", "Python", "JS"]
func SplitMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}

// NormalizeHeader 规范化表头单元格，用于列名匹配
// 去除首尾空白，换行/制表符视为空格，内部连续空白压缩为单个空格
func NormalizeHeader(name string) string {
	name = strings.ReplaceAll(name, "\n", " ")
	name = strings.ReplaceAll(name, "\r", " ")
	name = strings.ReplaceAll(name, "\t", " ")
	name = strings.TrimSpace(name)
	return spaceRe.ReplaceAllString(name, " ")
}
