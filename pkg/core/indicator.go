package core

import (
    "os"
    "path/filepath"
    "strings"

    "github.com/IGLOU-EU/go-wildcard"
    lru "github.com/hashicorp/golang-lru/v2"
)

const wildcardChars = "*?"

// IndicatorMatcher 判断候选目录的父目录是否为对应类型的项目根目录
// memo 只在一次扫描内有效，结果是某一时刻的判断
type IndicatorMatcher struct {
    memo *lru.Cache[string, bool]
}

// NewIndicatorMatcher 创建匹配器，size <= 0 时不缓存
func NewIndicatorMatcher(size int) *IndicatorMatcher {
    m := &IndicatorMatcher{}
    if size > 0 {
        if memo, err := lru.New[string, bool](size); err == nil {
            m.memo = memo
        }
    }
    return m
}

// Matches 带缓存的 MatchIndicator
func (m *IndicatorMatcher) Matches(parent, indicator string) bool {
    if indicator == "" {
        return true
    }
    if m == nil || m.memo == nil {
        return MatchIndicator(parent, indicator)
    }
    key := parent + "\x00" + indicator
    if ok, hit := m.memo.Get(key); hit {
        return ok
    }
    ok := MatchIndicator(parent, indicator)
    m.memo.Add(key, ok)
    return ok
}

// MatchIndicator 检查 parent 中是否存在项目标识
//   - 空标识：总是匹配
//   - 精确文件名：parent/indicator 存在
//   - *.ext：parent 下任一文件以 .ext 结尾
//   - 其他通配符：parent 下任一文件名匹配
// 读取目录失败视为不匹配
func MatchIndicator(parent, indicator string) bool {
    if indicator == "" {
        return true
    }
    if !strings.ContainsAny(indicator, wildcardChars) {
        _, err := os.Stat(filepath.Join(parent, indicator))
        return err == nil
    }

    entries, err := os.ReadDir(parent)
    if err != nil {
        return false
    }

    ext, isExt := extensionGlob(indicator)
    for _, entry := range entries {
        if entry.IsDir() {
            continue
        }
        name := entry.Name()
        if isExt {
            if len(name) > len(ext) && strings.HasSuffix(name, ext) {
                return true
            }
        } else if wildcard.Match(indicator, name) {
            return true
        }
    }
    return false
}

// extensionGlob 解析 *.ext 形式，返回 ".ext"
func extensionGlob(indicator string) (string, bool) {
    if !strings.HasPrefix(indicator, "*.") {
        return "", false
    }
    rest := indicator[1:]
    if len(rest) < 2 || strings.ContainsAny(rest, wildcardChars) {
        return "", false
    }
    return rest, true
}
