package constants

const (
    // 默认配置目录（位于用户主目录下）
    ConfigDirName   = ".dev-clean"
    ConfigFileName  = "config.conf"
    RulesFileName   = "rules.yaml"
    ExcludeFileName = "exclude.conf"
    LogFileName     = "clean.log"
)

// 环境变量
const (
    EnvConfig      = "DEVCLEAN_CONFIG"
    EnvLogLevel    = "DEVCLEAN_LOG_LEVEL"
    EnvLogFile     = "DEVCLEAN_LOG_FILE"
    EnvConcurrency = "DEVCLEAN_CONCURRENCY"
)

const Version = "0.1.0"
