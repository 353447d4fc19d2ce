package core

import (
    "os"
    "path/filepath"
    "sort"
    "sync"
    "testing"

    "github.com/stretchr/testify/require"
)

// writeFile 创建指定大小的文件，必要时创建父目录
func writeFile(t *testing.T, path string, size int) {
    t.Helper()
    require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
    require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))
}

func mkdir(t *testing.T, path string) {
    t.Helper()
    require.NoError(t, os.MkdirAll(path, 0755))
}

type failure struct {
    path string
    err  error
}

// recorder 记录扫描事件，供断言使用
type recorder struct {
    mu       sync.Mutex
    found    []Match
    deleting []Match
    deleted  []Match
    failed   []failure
    skipped  []string
}

func (r *recorder) Found(m Match) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.found = append(r.found, m)
}

func (r *recorder) Deleting(m Match) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.deleting = append(r.deleting, m)
}

func (r *recorder) Deleted(m Match) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.deleted = append(r.deleted, m)
}

func (r *recorder) DeleteFailed(m Match, err error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.failed = append(r.failed, failure{path: m.Path, err: err})
}

func (r *recorder) Skipped(path string, err error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    r.skipped = append(r.skipped, path)
}

func (r *recorder) foundPaths() []string {
    return sortedPaths(r.found)
}

func (r *recorder) deletedPaths() []string {
    return sortedPaths(r.deleted)
}

func sortedPaths(matches []Match) []string {
    paths := make([]string, 0, len(matches))
    for _, m := range matches {
        paths = append(paths, m.Path)
    }
    sort.Strings(paths)
    return paths
}

func testConfig(concurrency int) *Config {
    return &Config{LogLevel: LevelError, Concurrency: concurrency}
}

func newTestCleaner(t *testing.T, concurrency int) (*Cleaner, *recorder) {
    t.Helper()
    rec := &recorder{}
    return NewCleaner(testConfig(concurrency), nil, nil, rec), rec
}
