package core

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestSizeOf(t *testing.T) {
    root := t.TempDir()
    writeFile(t, filepath.Join(root, "a.bin"), 1000)
    writeFile(t, filepath.Join(root, "x", "b.bin"), 200)
    writeFile(t, filepath.Join(root, "x", "y", "z", "c.bin"), 30)
    writeFile(t, filepath.Join(root, "x", "empty"), 0)
    mkdir(t, filepath.Join(root, "nothing"))

    assert.Equal(t, int64(1230), SizeOf(root))
    assert.Equal(t, int64(230), SizeOf(filepath.Join(root, "x")))
}

func TestSizeOfSkipsSymlinks(t *testing.T) {
    outside := t.TempDir()
    writeFile(t, filepath.Join(outside, "huge.bin"), 1<<20)

    root := t.TempDir()
    writeFile(t, filepath.Join(root, "small.bin"), 5)
    if err := os.Symlink(filepath.Join(outside, "huge.bin"), filepath.Join(root, "link.bin")); err != nil {
        t.Skipf("symlinks not supported: %v", err)
    }
    if err := os.Symlink(outside, filepath.Join(root, "linkdir")); err != nil {
        t.Skipf("symlinks not supported: %v", err)
    }

    assert.Equal(t, int64(5), SizeOf(root))
}

func TestSizeOfMissingPath(t *testing.T) {
    assert.Equal(t, int64(0), SizeOf(filepath.Join(t.TempDir(), "missing")))
}

func TestSizeOfSingleFile(t *testing.T) {
    file := filepath.Join(t.TempDir(), "f.bin")
    writeFile(t, file, 64)
    assert.Equal(t, int64(64), SizeOf(file))
}
