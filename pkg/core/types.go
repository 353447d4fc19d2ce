package core

// Config 主配置结构体
type Config struct {
    LogLevel      int      `json:"log_level"`       // 日志级别 0-3
    LogFile       string   `json:"log_file"`        // 日志文件路径，为空则不写文件
    LogMaxSize    int      `json:"log_max_size"`    // 日志文件最大大小(MB)
    LogMaxAge     int      `json:"log_max_age"`     // 日志文件保留天数
    LogMaxBackups int      `json:"log_max_backups"` // 日志文件保留份数
    Concurrency   int      `json:"concurrency"`     // 并发扫描数，1 表示顺序扫描
    Exclude       []string `json:"exclude"`         // 受保护路径（通配符）
    ExcludeFile   string   `json:"exclude_file"`    // 受保护路径名单文件
    RulesFile     string   `json:"rules_file"`      // 自定义规则文件
    Verbose       bool     `json:"verbose"`         // 输出跳过的目录
}

// CleanRule 清理规则
type CleanRule struct {
    FolderName  string `yaml:"folder"`
    Indicator   string `yaml:"indicator"`
    Description string `yaml:"description"`
}

// Match 一次命中
type Match struct {
    Rule CleanRule
    Path string
    Size int64
}

// ScanResult 扫描结果统计
type ScanResult struct {
    Root    string
    Force   bool
    Matched int64 // 命中的目录数
    Removed int64 // 删除成功的目录数
    Failed  int64 // 删除失败的目录数
    Bytes   int64 // 预演模式为可释放空间，删除模式为实际释放空间
}
