package core

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
    rs := MustDefaultRuleSet()
    require.Equal(t, 7, rs.Len())

    want := map[string]string{
        "node_modules": "package.json",
        "target":       "Cargo.toml",
        "vendor":       "composer.json",
        "venv":         "",
        ".venv":        "",
        "bin":          "*.csproj",
        "obj":          "*.csproj",
    }
    for name, indicator := range want {
        rules := rs.Lookup(name)
        require.Len(t, rules, 1, name)
        assert.Equal(t, indicator, rules[0].Indicator, name)
    }
    assert.Empty(t, rs.Lookup("src"))
}

func TestRuleSetIsImmutable(t *testing.T) {
    rs := MustDefaultRuleSet()
    rules := rs.Rules()
    rules[0].FolderName = "changed"

    assert.Equal(t, "node_modules", rs.Rules()[0].FolderName)

    defaults := DefaultRules()
    defaults[0].Indicator = "other.json"
    assert.Equal(t, "package.json", DefaultRules()[0].Indicator)
}

func TestNewRuleSetValidation(t *testing.T) {
    cases := []struct {
        name string
        rule CleanRule
    }{
        {"empty folder", CleanRule{FolderName: "  "}},
        {"folder with separator", CleanRule{FolderName: "a/b"}},
        {"dot folder", CleanRule{FolderName: ".."}},
        {"indicator with separator", CleanRule{FolderName: "dist", Indicator: "src/index.ts"}},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            _, err := NewRuleSet(tc.rule)
            assert.Error(t, err)
        })
    }

    rs, err := NewRuleSet(CleanRule{FolderName: " dist ", Indicator: " package.json "})
    require.NoError(t, err)
    rules := rs.Lookup("dist")
    require.Len(t, rules, 1)
    assert.Equal(t, "package.json", rules[0].Indicator)
    assert.Equal(t, "dist", rules[0].Description)
}

func TestLoadRuleSet(t *testing.T) {
    dir := t.TempDir()
    appendPath := filepath.Join(dir, "append.yaml")
    require.NoError(t, os.WriteFile(appendPath, []byte(`rules:
  - folder: dist
    indicator: package.json
    description: JS build output
  - folder: node_modules
    indicator: bower.json
    description: Bower dependencies
`), 0644))

    rs, err := LoadRuleSet(appendPath)
    require.NoError(t, err)
    assert.Equal(t, 9, rs.Len())
    nm := rs.Lookup("node_modules")
    require.Len(t, nm, 2)
    assert.Equal(t, "package.json", nm[0].Indicator)
    assert.Equal(t, "bower.json", nm[1].Indicator)

    replacePath := filepath.Join(dir, "replace.yaml")
    require.NoError(t, os.WriteFile(replacePath, []byte(`replace_defaults: true
rules:
  - folder: .gradle
    description: Gradle cache
`), 0644))

    rs, err = LoadRuleSet(replacePath)
    require.NoError(t, err)
    assert.Equal(t, 1, rs.Len())
    assert.Empty(t, rs.Lookup("node_modules"))

    rs, err = LoadRuleSet("")
    require.NoError(t, err)
    assert.Equal(t, 7, rs.Len())
}

func TestLoadRuleSetErrors(t *testing.T) {
    dir := t.TempDir()

    _, err := LoadRuleSet(filepath.Join(dir, "missing.yaml"))
    assert.ErrorIs(t, err, os.ErrNotExist)

    bad := filepath.Join(dir, "bad.yaml")
    require.NoError(t, os.WriteFile(bad, []byte("rules: [this is: not: valid"), 0644))
    _, err = LoadRuleSet(bad)
    assert.Error(t, err)

    invalid := filepath.Join(dir, "invalid.yaml")
    require.NoError(t, os.WriteFile(invalid, []byte("rules:\n  - folder: a/b\n"), 0644))
    _, err = LoadRuleSet(invalid)
    assert.ErrorContains(t, err, "a/b")
}

func TestScanWithCustomHiddenRule(t *testing.T) {
    rs, err := LoadRuleSet(writeRules(t, "rules:\n  - folder: .gradle\n    indicator: build.gradle\n"))
    require.NoError(t, err)

    root := t.TempDir()
    writeFile(t, filepath.Join(root, "app", "build.gradle"), 1)
    writeFile(t, filepath.Join(root, "app", ".gradle", "cache.bin"), 64)
    writeFile(t, filepath.Join(root, "lib", ".gradle", "cache.bin"), 64)

    rec := &recorder{}
    cleaner := NewCleaner(testConfig(2), nil, rs, rec)
    result, err := cleaner.Scan(t.Context(), root, false)
    require.NoError(t, err)

    assert.Equal(t, int64(1), result.Matched)
    assert.Equal(t, []string{filepath.Join(root, "app", ".gradle")}, rec.foundPaths())
}

func writeRules(t *testing.T, content string) string {
    t.Helper()
    path := filepath.Join(t.TempDir(), "rules.yaml")
    require.NoError(t, os.WriteFile(path, []byte(content), 0644))
    return path
}
