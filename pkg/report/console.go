package report

import (
    "fmt"
    "io"
    "sync"

    "github.com/dustin/go-humanize"

    "dev-clean/pkg/core"
)

// Console 将扫描事件逐行写入终端，每行在锁内写出
type Console struct {
    mu       sync.Mutex
    w        io.Writer
    decorate bool
    verbose  bool
}

// NewConsole 创建终端输出，decorate 控制是否输出表情符号
func NewConsole(w io.Writer, decorate, verbose bool) *Console {
    return &Console{w: w, decorate: decorate, verbose: verbose}
}

// FormatSize 以 IEC 单位显示字节数
func FormatSize(n int64) string {
    if n < 0 {
        n = 0
    }
    return humanize.IBytes(uint64(n))
}

// Start 输出扫描开始信息
func (c *Console) Start(root string, force bool) {
    c.printf("%sScanning path: %s\n", c.icon("🔍 "), root)
    if force {
        c.printf("%sDELETING MODE: Folders will be permanently removed.\n\n", c.icon("⚠️  "))
    } else {
        c.printf("%sDRY RUN: No folders will be deleted. Use --force to delete.\n\n", c.icon("⚠️  "))
    }
}

func (c *Console) Found(m core.Match) {
    c.printf("[MATCH] Found %-12s at %s (%s) - size: %s\n",
        m.Rule.FolderName, m.Path, m.Rule.Description, FormatSize(m.Size))
}

func (c *Console) Deleting(m core.Match) {
    c.printf("%sDeleting %s (%s) - freeing %s...\n",
        c.icon("🗑️  "), m.Path, m.Rule.Description, FormatSize(m.Size))
}

func (c *Console) Deleted(m core.Match) {
    c.printf("   done: %s\n", m.Path)
}

func (c *Console) DeleteFailed(m core.Match, err error) {
    c.printf("   FAILED to delete %s: %v\n", m.Path, err)
}

func (c *Console) Skipped(path string, err error) {
    if !c.verbose {
        return
    }
    c.printf("   skipped %s: %v\n", path, err)
}

// Summary 输出最终统计
func (c *Console) Summary(result *core.ScanResult) {
    switch {
    case result.Matched == 0:
        c.printf("%sEverything looks clean!\n", c.icon("✨ "))
    case result.Force:
        c.printf("\n%sProcess complete.\n", c.icon("✅ "))
        c.printf("%sReclaimed %s across %d folders\n", c.icon("🎉 "), FormatSize(result.Bytes), result.Removed)
        if result.Failed > 0 {
            c.printf("%s%d folders could not be deleted\n", c.icon("❌ "), result.Failed)
        }
    default:
        c.printf("\n%sPotential space to reclaim: %s\n", c.icon("💡 "), FormatSize(result.Bytes))
    }
}

func (c *Console) icon(s string) string {
    if c.decorate {
        return s
    }
    return ""
}

func (c *Console) printf(format string, args ...interface{}) {
    c.mu.Lock()
    defer c.mu.Unlock()
    fmt.Fprintf(c.w, format, args...)
}
