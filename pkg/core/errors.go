package core

import (
    "errors"
    "fmt"
)

var (
    ErrRootNotFound = errors.New("path does not exist")
    ErrRootNotDir   = errors.New("path is not a directory")
)

// PathError 扫描根路径无效
type PathError struct {
    Path string
    Err  error
}

func (e *PathError) Error() string {
    return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
    return e.Err
}
