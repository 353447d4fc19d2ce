package cli

import (
    "errors"
    "fmt"
    "io"
    "log"
    "os"

    "github.com/mattn/go-isatty"
    "github.com/spf13/cobra"

    "dev-clean/pkg/core"
    "dev-clean/pkg/report"
)

type cleanOptions struct {
    path       string
    force      bool
    configPath string
    rulesPath  string
    jobs       int
    excludes   []string
    verbose    bool
}

func newCleanCmd() *cobra.Command {
    opts := &cleanOptions{}
    cmd := &cobra.Command{
        Use:   "clean",
        Short: "Scan and clean up dependency folders (node_modules, target, vendor, etc.)",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            return runClean(cmd, opts)
        },
    }
    flags := cmd.Flags()
    flags.StringVarP(&opts.path, "path", "p", ".", "root path to start scanning from")
    flags.BoolVarP(&opts.force, "force", "f", false, "actually delete the folders (default is dry-run)")
    flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.dev-clean/config.conf)")
    flags.StringVarP(&opts.rulesPath, "rules", "r", "", "YAML file with additional clean rules")
    flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of concurrent scanners (1 scans sequentially)")
    flags.StringArrayVarP(&opts.excludes, "exclude", "x", nil, "wildcard pattern of paths to never touch (repeatable)")
    flags.BoolVarP(&opts.verbose, "verbose", "v", false, "report directories that could not be read")
    return cmd
}

func runClean(cmd *cobra.Command, opts *cleanOptions) error {
    config, err := loadConfig(opts.configPath, opts.rulesPath)
    if err != nil {
        return err
    }
    if cmd.Flags().Changed("jobs") && opts.jobs > 0 {
        config.Concurrency = opts.jobs
    }
    if opts.verbose {
        config.Verbose = true
    }
    config.Exclude = append(config.Exclude, opts.excludes...)
    patterns, err := core.ExcludePatterns(config)
    if err != nil {
        return err
    }
    config.Exclude = patterns

    rules, err := core.LoadRuleSet(config.RulesFile)
    if err != nil {
        return err
    }

    logger := setupLogger(cmd, config)
    defer core.CloseLogger(logger)

    out := cmd.OutOrStdout()
    console := report.NewConsole(out, isTerminal(out), config.Verbose)
    cleaner := core.NewCleaner(config, logger, rules, console)

    root, err := core.ValidateRoot(opts.path)
    if err != nil {
        if errors.Is(err, core.ErrRootNotFound) {
            fmt.Fprintln(cmd.ErrOrStderr(), "Hint: on Windows use forward slashes (/) or quote paths that contain backslashes (\\).")
        }
        return err
    }

    console.Start(root, opts.force)
    result, err := cleaner.Scan(cmd.Context(), root, opts.force)
    if err != nil {
        return err
    }
    console.Summary(result)
    return nil
}

func loadConfig(configPath, rulesPath string) (*core.Config, error) {
    config, err := core.LoadConfig(configPath)
    if err != nil {
        return nil, err
    }
    if rulesPath != "" {
        config.RulesFile = rulesPath
    }
    return config, nil
}

// setupLogger 日志文件不可用时不影响清理
func setupLogger(cmd *cobra.Command, config *core.Config) *log.Logger {
    logger, err := core.SetupLogger(config)
    if err != nil {
        fmt.Fprintf(cmd.ErrOrStderr(), "warning: file logging disabled: %v\n", err)
        return log.New(io.Discard, "", 0)
    }
    return logger
}

func isTerminal(w io.Writer) bool {
    f, ok := w.(*os.File)
    if !ok {
        return false
    }
    return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
