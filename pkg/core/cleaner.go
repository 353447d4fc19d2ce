package core

import (
    "context"
    "errors"
    "fmt"
    "io/fs"
    "log"
    "os"
    "path/filepath"
    "strings"

    "github.com/IGLOU-EU/go-wildcard"
    "github.com/dustin/go-humanize"
    "golang.org/x/sync/errgroup"
)

const indicatorMemoSize = 4096

// Reporter 接收扫描事件，可能被多个协程同时调用
type Reporter interface {
    Found(m Match)
    Deleting(m Match)
    Deleted(m Match)
    DeleteFailed(m Match, err error)
    Skipped(path string, err error)
}

// Cleaner 项目依赖目录清理器
type Cleaner struct {
    config    *Config
    logger    *log.Logger
    rules     *RuleSet
    reporter  Reporter
    readDir   func(string) ([]os.DirEntry, error)
    removeAll func(string) error
}

// NewCleaner 创建清理器，rules 为空时使用内置规则
func NewCleaner(config *Config, logger *log.Logger, rules *RuleSet, reporter Reporter) *Cleaner {
    if config == nil {
        config = DefaultConfig()
    }
    if rules == nil {
        rules = MustDefaultRuleSet()
    }
    if reporter == nil {
        reporter = nopReporter{}
    }
    return &Cleaner{
        config:    config,
        logger:    logger,
        rules:     rules,
        reporter:  reporter,
        readDir:   os.ReadDir,
        removeAll: os.RemoveAll,
    }
}

// Scan 扫描 root 下的可清理目录，force 为 true 时删除
// 只有 root 无效时返回错误，单个目录的读取或删除失败不会中断扫描
func (c *Cleaner) Scan(ctx context.Context, root string, force bool) (*ScanResult, error) {
    abs, err := ValidateRoot(root)
    if err != nil {
        return nil, err
    }

    mode := "预演"
    if force {
        mode = "删除"
    }
    LogMessage(c.logger, LevelInfo, fmt.Sprintf("开始扫描: %s, 模式: %s, 并发: %d", abs, mode, c.concurrency()), c.config)

    s := &scan{
        cleaner:    c,
        ctx:        ctx,
        force:      force,
        indicators: NewIndicatorMatcher(indicatorMemoSize),
    }
    s.group.SetLimit(c.concurrency())

    s.group.Go(func() error {
        if c.isProtected(abs) {
            LogMessage(c.logger, LevelInfo, fmt.Sprintf("跳过受保护路径: %s", abs), c.config)
            return nil
        }
        if rule, ok := c.matchRule(filepath.Dir(abs), filepath.Base(abs), s.indicators); ok {
            s.handle(rule, abs)
            return nil
        }
        s.walk(abs)
        return nil
    })
    _ = s.group.Wait()

    result := s.tally.Snapshot(abs, force)
    LogMessage(c.logger, LevelInfo, fmt.Sprintf(
        "扫描完成: 命中%d个, 删除%d个, 失败%d个, 空间%s (%d bytes)",
        result.Matched, result.Removed, result.Failed,
        humanize.IBytes(uint64(result.Bytes)), result.Bytes,
    ), c.config)
    return result, nil
}

// ValidateRoot 检查扫描根路径并返回其绝对路径
func ValidateRoot(root string) (string, error) {
    abs, err := filepath.Abs(root)
    if err != nil {
        return "", &PathError{Path: root, Err: err}
    }
    info, err := os.Stat(abs)
    if err != nil {
        if errors.Is(err, fs.ErrNotExist) {
            return "", &PathError{Path: abs, Err: ErrRootNotFound}
        }
        return "", &PathError{Path: abs, Err: err}
    }
    if !info.IsDir() {
        return "", &PathError{Path: abs, Err: ErrRootNotDir}
    }
    return abs, nil
}

// Classify 返回目录 parent/name 命中的第一条规则
func (c *Cleaner) Classify(parent, name string) (CleanRule, bool) {
    return c.matchRule(parent, name, nil)
}

func (c *Cleaner) matchRule(parent, name string, indicators *IndicatorMatcher) (CleanRule, bool) {
    for _, rule := range c.rules.Lookup(name) {
        if indicators.Matches(parent, rule.Indicator) {
            return rule, true
        }
    }
    return CleanRule{}, false
}

func (c *Cleaner) isProtected(path string) bool {
    for _, pattern := range c.config.Exclude {
        if wildcard.Match(pattern, path) {
            return true
        }
    }
    return false
}

func (c *Cleaner) concurrency() int {
    if c.config.Concurrency <= 0 {
        return 1
    }
    return c.config.Concurrency
}

// scan 单次扫描的状态
type scan struct {
    cleaner    *Cleaner
    ctx        context.Context
    force      bool
    indicators *IndicatorMatcher
    group      errgroup.Group
    tally      Tally
}

// walk 列出 dir 的子目录；命中的目录不再深入，其余交给空闲协程，没有空闲时在当前协程继续
func (s *scan) walk(dir string) {
    if s.ctx.Err() != nil {
        return
    }
    c := s.cleaner

    entries, err := c.readDir(dir)
    if err != nil {
        LogMessage(c.logger, LevelWarn, fmt.Sprintf("读取目录失败: %s, 错误: %v", dir, err), c.config)
        c.reporter.Skipped(dir, err)
    }

    for _, entry := range entries {
        // 符号链接的类型不是目录，不会被跟随
        if !entry.IsDir() {
            continue
        }
        name := entry.Name()
        path := filepath.Join(dir, name)

        hidden := strings.HasPrefix(name, ".")
        if hidden && len(c.rules.Lookup(name)) == 0 {
            continue
        }
        if c.isProtected(path) {
            LogMessage(c.logger, LevelDebug, fmt.Sprintf("跳过受保护路径: %s", path), c.config)
            continue
        }
        if rule, ok := c.matchRule(dir, name, s.indicators); ok {
            s.handle(rule, path)
            continue
        }
        if hidden {
            continue
        }

        if !s.group.TryGo(func() error {
            s.walk(path)
            return nil
        }) {
            s.walk(path)
        }
    }
}

// handle 处理一次命中
func (s *scan) handle(rule CleanRule, path string) {
    c := s.cleaner
    m := Match{Rule: rule, Path: path, Size: SizeOf(path)}

    if !s.force {
        s.tally.Found(m.Size)
        c.reporter.Found(m)
        LogMessage(c.logger, LevelDebug, fmt.Sprintf("命中: %s (%s), 大小: %d bytes", path, rule.Description, m.Size), c.config)
        return
    }

    c.reporter.Deleting(m)
    if err := c.removeAll(path); err != nil {
        s.tally.Failed()
        c.reporter.DeleteFailed(m, err)
        LogMessage(c.logger, LevelWarn, fmt.Sprintf("删除失败: %s, 错误: %v", path, err), c.config)
        return
    }
    s.tally.Removed(m.Size)
    c.reporter.Deleted(m)
    LogMessage(c.logger, LevelInfo, fmt.Sprintf("删除目录: %s (%s), 释放: %d bytes", path, rule.Description, m.Size), c.config)
}

type nopReporter struct{}

func (nopReporter) Found(Match)               {}
func (nopReporter) Deleting(Match)            {}
func (nopReporter) Deleted(Match)             {}
func (nopReporter) DeleteFailed(Match, error) {}
func (nopReporter) Skipped(string, error)     {}
