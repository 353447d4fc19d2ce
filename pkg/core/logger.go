package core

import (
    "fmt"
    "io"
    "log"
    "os"
    "path/filepath"

    "gopkg.in/natefinch/lumberjack.v2"
)

// 日志等级
const (
    LevelDebug = iota
    LevelInfo
    LevelWarn
    LevelError
)

// SetupLogger 初始化日志系统，LogFile 为空时丢弃日志
func SetupLogger(config *Config) (*log.Logger, error) {
    if config.LogFile == "" {
        return log.New(io.Discard, "", 0), nil
    }

    if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
        return nil, fmt.Errorf("创建日志目录失败: %w", err)
    }

    lumberjackLogger := &lumberjack.Logger{
        Filename:   config.LogFile,
        MaxSize:    config.LogMaxSize,
        MaxBackups: config.LogMaxBackups,
        MaxAge:     config.LogMaxAge,
        Compress:   true,
    }

    logger := log.New(lumberjackLogger, "", log.LstdFlags)
    return logger, nil
}

// CloseLogger 关闭 SetupLogger 打开的日志文件
func CloseLogger(logger *log.Logger) error {
    if logger == nil {
        return nil
    }
    if closer, ok := logger.Writer().(io.Closer); ok {
        return closer.Close()
    }
    return nil
}

// LogMessage 根据日志等级记录日志
func LogMessage(logger *log.Logger, level int, message string, config *Config) {
    if logger == nil || !shouldLog(level, config) {
        return
    }
    levelStr := "DEBUG"
    switch level {
    case LevelInfo:
        levelStr = "INFO"
    case LevelWarn:
        levelStr = "WARN"
    case LevelError:
        levelStr = "ERROR"
    }
    logger.Printf("[%s] %s", levelStr, message)
}

// shouldLog 判断是否应该记录该等级的日志
func shouldLog(level int, config *Config) bool {
    if config == nil {
        return level >= LevelInfo
    }
    return level >= config.LogLevel
}
