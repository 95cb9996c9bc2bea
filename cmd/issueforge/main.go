package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"issueforge/internal/catalog"
	"issueforge/internal/config"
	"issueforge/internal/exporter"
	"issueforge/internal/generator"
	"issueforge/internal/logger"
	"issueforge/internal/parser"
)

var (
	playbookFlag = flag.String("playbook", "", "生成剧本 ("+strings.Join(catalog.Names(), "|")+")，覆盖配置文件")
	configPath   = flag.String("config", "", "配置文件路径 (默认读取可执行文件同目录下的 config.toml)")
	verbose      = flag.Bool("v", false, "输出调试日志")
)

func usage() {
	fmt.Fprintln(os.Stderr, "用法: issueforge [选项] <输入文件> <输出文件>")
	fmt.Fprintln(os.Stderr, "把应用清单表格展开为可批量导入工单系统的表格。")
	fmt.Fprintln(os.Stderr, "输入/输出支持 .csv 与 .xlsx，按扩展名识别。")
	fmt.Fprintln(os.Stderr)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	// 命令行参数覆盖配置
	name := cfg.Generator.Playbook
	if *playbookFlag != "" {
		name = *playbookFlag
	}

	pb, err := catalog.ByName(name)
	if err != nil {
		return err
	}

	aliases, err := cfg.Input.Aliases()
	if err != nil {
		return err
	}

	log := logger.New(*verbose)
	defer func() { _ = log.Sync() }()

	reader := parser.NewReader(parser.Options{
		Sheet:   cfg.Input.Sheet,
		Aliases: aliases,
	})

	records, err := reader.ReadFile(inputPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return fmt.Errorf("输入文件不存在: %s", inputPath)
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("没有读取输入文件的权限: %s", inputPath)
		}
		return err
	}

	log.Debug("输入读取完成",
		zap.String("file_id", reader.FileID()),
		zap.String("input", inputPath),
		zap.Int("rows", len(records)))

	if len(records) == 0 {
		fmt.Println("输入文件没有数据行，未生成任何工单。")
		return nil
	}

	result, err := generator.Generate(pb, records, generator.Options{
		Priority: cfg.Generator.Priority,
	})
	if err != nil {
		return err
	}

	log.Debug("展开完成",
		zap.String("playbook", pb.Name),
		zap.Int("issues", len(result.Rows)),
		zap.Any("multi_value_widths", result.Widths))

	if err := exporter.Write(outputPath, result.Header, result.Rows); err != nil {
		return err
	}

	fmt.Printf("文件生成成功: %s (%d 条工单)\n", outputPath, len(result.Rows))
	return nil
}
