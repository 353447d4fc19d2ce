package core

import (
    "bufio"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "runtime"
    "strconv"
    "strings"

    "github.com/joho/godotenv"

    "dev-clean/pkg/constants"
)

// DefaultConfig 默认配置
func DefaultConfig() *Config {
    config := &Config{
        LogLevel:      LevelInfo,
        LogMaxSize:    10,
        LogMaxAge:     7,
        LogMaxBackups: 3,
        Concurrency:   runtime.NumCPU(),
    }
    if dir := DefaultConfigDir(); dir != "" {
        config.LogFile = filepath.Join(dir, constants.LogFileName)
    }
    return config
}

// DefaultConfigDir 默认配置目录，无法获取主目录时返回空字符串
func DefaultConfigDir() string {
    home, err := os.UserHomeDir()
    if err != nil {
        return ""
    }
    return filepath.Join(home, constants.ConfigDirName)
}

// LoadConfig 加载配置：默认值 -> 配置文件 -> 环境变量
// path 为空时依次尝试 DEVCLEAN_CONFIG 与默认路径，默认路径下文件不存在时直接使用默认配置
func LoadConfig(path string) (*Config, error) {
    _ = godotenv.Load()

    config := DefaultConfig()

    explicit := path != ""
    if !explicit {
        path = os.Getenv(constants.EnvConfig)
        explicit = path != ""
    }
    if !explicit {
        if dir := DefaultConfigDir(); dir != "" {
            path = filepath.Join(dir, constants.ConfigFileName)
        }
    }

    if path != "" {
        err := ParseConfig(path, config)
        if err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
            return nil, err
        }
    }

    if err := applyEnv(config); err != nil {
        return nil, err
    }
    applyDefaultFiles(config)
    normalizeConfig(config)
    return config, nil
}

// ParseConfig 解析 key=value 格式的配置文件，覆盖 config 中已有的值
func ParseConfig(path string, config *Config) error {
    file, err := os.Open(path)
    if err != nil {
        return fmt.Errorf("打开配置文件失败: %w", err)
    }
    defer file.Close()

    baseDir := filepath.Dir(path)

    scanner := bufio.NewScanner(file)
    lineNo := 0
    for scanner.Scan() {
        lineNo++
        line := strings.TrimSpace(scanner.Text())

        // 跳过注释和空行
        if strings.HasPrefix(line, "#") || line == "" {
            continue
        }

        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            return fmt.Errorf("%s:%d: 无法解析配置项 %q", path, lineNo, line)
        }

        key := strings.TrimSpace(parts[0])
        value := strings.TrimSpace(parts[1])

        switch key {
        case "log_level", "log_max_size", "log_max_age", "log_max_backups", "concurrency":
            n, err := strconv.Atoi(value)
            if err != nil {
                return fmt.Errorf("%s:%d: %s 不是整数: %w", path, lineNo, key, err)
            }
            setIntOption(config, key, n)
        case "log_file":
            config.LogFile = resolvePath(baseDir, value)
        case "exclude":
            config.Exclude = append(config.Exclude, splitList(value)...)
        case "exclude_file":
            config.ExcludeFile = resolvePath(baseDir, value)
        case "rules_file":
            config.RulesFile = resolvePath(baseDir, value)
        case "verbose":
            config.Verbose = strings.ToLower(value) == "true"
        }
    }

    return scanner.Err()
}

// ReadListFile 读取名单文件，忽略注释与空行
func ReadListFile(filename string) ([]string, error) {
    var lines []string

    file, err := os.Open(filename)
    if err != nil {
        return nil, err
    }
    defer file.Close()

    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := strings.TrimSpace(scanner.Text())
        if !strings.HasPrefix(line, "#") && line != "" {
            lines = append(lines, line)
        }
    }

    return lines, scanner.Err()
}

// ExcludePatterns 合并配置中的受保护路径与名单文件
func ExcludePatterns(config *Config) ([]string, error) {
    patterns := append([]string(nil), config.Exclude...)
    if config.ExcludeFile == "" {
        return patterns, nil
    }
    lines, err := ReadListFile(config.ExcludeFile)
    if err != nil {
        return nil, fmt.Errorf("读取保护名单失败: %w", err)
    }
    return append(patterns, lines...), nil
}

// applyDefaultFiles 未指定时使用默认目录下已存在的规则文件与保护名单
func applyDefaultFiles(config *Config) {
    dir := DefaultConfigDir()
    if dir == "" {
        return
    }
    if config.RulesFile == "" {
        config.RulesFile = existingFile(filepath.Join(dir, constants.RulesFileName))
    }
    if config.ExcludeFile == "" {
        config.ExcludeFile = existingFile(filepath.Join(dir, constants.ExcludeFileName))
    }
}

func existingFile(path string) string {
    info, err := os.Stat(path)
    if err != nil || info.IsDir() {
        return ""
    }
    return path
}

func applyEnv(config *Config) error {
    if value := os.Getenv(constants.EnvLogLevel); value != "" {
        n, err := strconv.Atoi(value)
        if err != nil {
            return fmt.Errorf("%s 不是整数: %w", constants.EnvLogLevel, err)
        }
        config.LogLevel = n
    }
    if value, ok := os.LookupEnv(constants.EnvLogFile); ok {
        config.LogFile = value
    }
    if value := os.Getenv(constants.EnvConcurrency); value != "" {
        n, err := strconv.Atoi(value)
        if err != nil {
            return fmt.Errorf("%s 不是整数: %w", constants.EnvConcurrency, err)
        }
        config.Concurrency = n
    }
    return nil
}

func setIntOption(config *Config, key string, n int) {
    switch key {
    case "log_level":
        config.LogLevel = n
    case "log_max_size":
        config.LogMaxSize = n
    case "log_max_age":
        config.LogMaxAge = n
    case "log_max_backups":
        config.LogMaxBackups = n
    case "concurrency":
        config.Concurrency = n
    }
}

// normalizeConfig 修正越界的配置值
func normalizeConfig(config *Config) {
    if config.LogLevel < LevelDebug || config.LogLevel > LevelError {
        config.LogLevel = LevelInfo
    }
    if config.LogMaxSize <= 0 {
        config.LogMaxSize = 10
    }
    if config.LogMaxAge <= 0 {
        config.LogMaxAge = 7
    }
    if config.LogMaxBackups < 0 {
        config.LogMaxBackups = 0
    }
    if config.Concurrency <= 0 {
        config.Concurrency = runtime.NumCPU()
    }
}

func resolvePath(baseDir, value string) string {
    if value == "" || filepath.IsAbs(value) {
        return value
    }
    if strings.HasPrefix(value, "~"+string(filepath.Separator)) || strings.HasPrefix(value, "~/") {
        if home, err := os.UserHomeDir(); err == nil {
            return filepath.Join(home, value[2:])
        }
    }
    return filepath.Join(baseDir, value)
}

func splitList(value string) []string {
    var items []string
    for _, item := range strings.Split(value, ",") {
        if item = strings.TrimSpace(item); item != "" {
            items = append(items, item)
        }
    }
    return items
}
