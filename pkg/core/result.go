package core

import "sync/atomic"

// Tally 扫描过程中的并发计数器，只做累加
type Tally struct {
    matched atomic.Int64
    removed atomic.Int64
    failed  atomic.Int64
    bytes   atomic.Int64
}

// Found 预演模式下记录一次命中
func (t *Tally) Found(size int64) {
    t.matched.Add(1)
    t.bytes.Add(size)
}

// Removed 记录一次删除成功
func (t *Tally) Removed(size int64) {
    t.matched.Add(1)
    t.removed.Add(1)
    t.bytes.Add(size)
}

// Failed 记录一次删除失败，其大小不计入释放空间
func (t *Tally) Failed() {
    t.matched.Add(1)
    t.failed.Add(1)
}

// Snapshot 生成结果快照
func (t *Tally) Snapshot(root string, force bool) *ScanResult {
    return &ScanResult{
        Root:    root,
        Force:   force,
        Matched: t.matched.Load(),
        Removed: t.removed.Load(),
        Failed:  t.failed.Load(),
        Bytes:   t.bytes.Load(),
    }
}
