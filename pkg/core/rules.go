package core

import (
    "errors"
    "fmt"
    "os"
    "strings"

    "gopkg.in/yaml.v3"
)

// RuleSet 不可变的规则表，按名称索引并保留原始顺序
type RuleSet struct {
    rules  []CleanRule
    byName map[string][]CleanRule
}

// RuleFile 自定义规则文件结构
type RuleFile struct {
    ReplaceDefaults bool        `yaml:"replace_defaults"`
    Rules           []CleanRule `yaml:"rules"`
}

var defaultRules = []CleanRule{
    {FolderName: "node_modules", Indicator: "package.json", Description: "Node.js dependencies"},
    {FolderName: "target", Indicator: "Cargo.toml", Description: "Rust build artifacts"},
    {FolderName: "vendor", Indicator: "composer.json", Description: "PHP dependencies"},
    {FolderName: "venv", Description: "Python virtual environment"},
    {FolderName: ".venv", Description: "Python virtual environment"},
    {FolderName: "bin", Indicator: "*.csproj", Description: ".NET build output"},
    {FolderName: "obj", Indicator: "*.csproj", Description: ".NET intermediate output"},
}

// DefaultRules 返回内置规则的副本
func DefaultRules() []CleanRule {
    return append([]CleanRule(nil), defaultRules...)
}

// NewRuleSet 校验并构建规则表
func NewRuleSet(rules ...CleanRule) (*RuleSet, error) {
    rs := &RuleSet{
        rules:  make([]CleanRule, 0, len(rules)),
        byName: make(map[string][]CleanRule, len(rules)),
    }
    for i, rule := range rules {
        rule.FolderName = strings.TrimSpace(rule.FolderName)
        rule.Indicator = strings.TrimSpace(rule.Indicator)
        if err := validateRule(rule); err != nil {
            return nil, fmt.Errorf("规则 #%d: %w", i+1, err)
        }
        if rule.Description == "" {
            rule.Description = rule.FolderName
        }
        rs.rules = append(rs.rules, rule)
        rs.byName[rule.FolderName] = append(rs.byName[rule.FolderName], rule)
    }
    return rs, nil
}

// MustDefaultRuleSet 内置规则表
func MustDefaultRuleSet() *RuleSet {
    rs, err := NewRuleSet(defaultRules...)
    if err != nil {
        panic(err)
    }
    return rs
}

// LoadRuleSet 加载规则表，path 为空时仅使用内置规则
func LoadRuleSet(path string) (*RuleSet, error) {
    if path == "" {
        return MustDefaultRuleSet(), nil
    }
    file, err := LoadRuleFile(path)
    if err != nil {
        return nil, err
    }
    var rules []CleanRule
    if !file.ReplaceDefaults {
        rules = DefaultRules()
    }
    rules = append(rules, file.Rules...)
    rs, err := NewRuleSet(rules...)
    if err != nil {
        return nil, fmt.Errorf("%s: %w", path, err)
    }
    return rs, nil
}

// LoadRuleFile 读取 YAML 规则文件
func LoadRuleFile(path string) (*RuleFile, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return nil, fmt.Errorf("读取规则文件失败: %w", err)
    }
    var file RuleFile
    if err := yaml.Unmarshal(data, &file); err != nil {
        return nil, fmt.Errorf("解析规则文件失败: %w", err)
    }
    return &file, nil
}

// Rules 按顺序返回全部规则
func (rs *RuleSet) Rules() []CleanRule {
    return append([]CleanRule(nil), rs.rules...)
}

// Lookup 返回目录名对应的规则，保持规则表顺序
func (rs *RuleSet) Lookup(name string) []CleanRule {
    return rs.byName[name]
}

// Len 规则数量
func (rs *RuleSet) Len() int {
    return len(rs.rules)
}

func validateRule(rule CleanRule) error {
    if rule.FolderName == "" {
        return errors.New("目录名不能为空")
    }
    if strings.ContainsAny(rule.FolderName, `/\`) || rule.FolderName == "." || rule.FolderName == ".." {
        return fmt.Errorf("目录名 %q 无效", rule.FolderName)
    }
    if strings.ContainsAny(rule.Indicator, `/\`) {
        return fmt.Errorf("项目标识 %q 不能包含路径分隔符", rule.Indicator)
    }
    return nil
}
