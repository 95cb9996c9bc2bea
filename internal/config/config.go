package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"issueforge/internal/catalog"
	"issueforge/internal/generator"
	"issueforge/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Generator GeneratorConfig `toml:"generator"`
	Input     InputConfig     `toml:"input"`
}

// GeneratorConfig 生成配置
type GeneratorConfig struct {
	Playbook string `toml:"playbook"` // delivery / mvp
	Priority string `toml:"priority"` // 所有生成工单的优先级
}

// InputConfig 输入配置
type InputConfig struct {
	Sheet   string            `toml:"sheet"`   // xlsx 工作表名，空取第一个
	Columns map[string]string `toml:"columns"` // 列别名: 配置键 -> 实际表头
}

// 配置键 -> 标准列名
var columnKeys = map[string]string{
	"application":      model.ColApplication,
	"product_category": model.ColProductCategory,
	"product_type":     model.ColProductType,
	"platform":         model.ColPlatform,
	"layer":            model.ColLayer,
	"os":               model.ColOS,
	"complexity":       model.ColComplexity,
	"language":         model.ColLanguage,
	"description":      model.ColDescription,
	"stack":            model.ColStack,
	"labels":           model.ColLabels,
}

// Aliases 把列别名转换为 标准列名 -> 实际表头 的映射
func (c *InputConfig) Aliases() (map[string]string, error) {
	if len(c.Columns) == 0 {
		return nil, nil
	}
	aliases := make(map[string]string, len(c.Columns))
	for key, actual := range c.Columns {
		canonical, ok := columnKeys[key]
		if !ok {
			return nil, fmt.Errorf("未知的列别名键 %q", key)
		}
		aliases[canonical] = actual
	}
	return aliases, nil
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Generator: GeneratorConfig{
			Playbook: catalog.PlaybookDelivery,
			Priority: generator.DefaultPriority,
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig 加载配置
// path 为空时读取可执行文件同目录下的 config.toml；
// 文件不存在不是错误，返回默认配置
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		path = filepath.Join(exeDir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("读取配置文件: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}

	return cfg, nil
}
