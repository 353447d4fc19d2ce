package cli

import (
    "fmt"
    "text/tabwriter"

    "github.com/spf13/cobra"

    "dev-clean/pkg/core"
)

func newRulesCmd() *cobra.Command {
    var configPath, rulesPath string
    cmd := &cobra.Command{
        Use:   "rules",
        Short: "List the folder rules used by clean",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            config, err := loadConfig(configPath, rulesPath)
            if err != nil {
                return err
            }
            rules, err := core.LoadRuleSet(config.RulesFile)
            if err != nil {
                return err
            }
            tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
            fmt.Fprintln(tw, "FOLDER\tINDICATOR\tDESCRIPTION")
            for _, rule := range rules.Rules() {
                indicator := rule.Indicator
                if indicator == "" {
                    indicator = "-"
                }
                fmt.Fprintf(tw, "%s\t%s\t%s\n", rule.FolderName, indicator, rule.Description)
            }
            return tw.Flush()
        },
    }
    cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.dev-clean/config.conf)")
    cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML file with additional clean rules")
    return cmd
}
