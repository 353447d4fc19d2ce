package cli

import (
    "github.com/spf13/cobra"

    "dev-clean/pkg/constants"
)

// NewRootCmd 创建命令行入口
func NewRootCmd() *cobra.Command {
    root := &cobra.Command{
        Use:           "dev-clean",
        Short:         "Scans and cleans up project dependency folders",
        Version:       constants.Version,
        SilenceUsage:  true,
        SilenceErrors: true,
    }
    root.AddCommand(newCleanCmd(), newRulesCmd(), newVersionCmd())
    return root
}

// Execute 执行命令
func Execute() error {
    return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "version",
        Short: "Show version information",
        Args:  cobra.NoArgs,
        Run: func(cmd *cobra.Command, args []string) {
            cmd.Printf("dev-clean v%s\n", constants.Version)
        },
    }
}
