package core

import (
    "io/fs"
    "path/filepath"
)

// SizeOf 统计 path 下所有普通文件的大小，不跟随符号链接
// 无法读取的条目按 0 计算
func SizeOf(path string) int64 {
    var total int64
    _ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
        if err != nil || d == nil {
            return nil
        }
        if !d.Type().IsRegular() {
            return nil
        }
        info, err := d.Info()
        if err != nil {
            return nil
        }
        total += info.Size()
        return nil
    })
    return total
}
