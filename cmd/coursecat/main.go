package main

import (
	"fmt"
	"os"

	"github.com/coursecat/coursecat/cmd"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "coursecat",
		Short: "A CLI course catalog manager",
		Long: `A CLI application that loads a course file into an in-memory catalog
for sorted listing and multi-criteria search.
`,
	}

	// Parse persistent flags
	rootCmd.PersistentFlags().StringVarP(&cmd.FlagConfigFile, "config", "c", cmd.FlagConfigFile, "Config file")
	rootCmd.PersistentFlags().StringVarP(&cmd.FlagLogFile, "log", "l", cmd.FlagLogFile, "Log file")
	rootCmd.PersistentFlags().CountVarP(&cmd.FlagLogLevel, "verbose", "v", "Verbose level")
	rootCmd.PersistentFlags().StringVarP(&cmd.FlagDelimiter, "delimiter", "d", "", "Field delimiter, overrides config")

	rootCmd.AddCommand(cmd.ListCommand())
	rootCmd.AddCommand(cmd.MenuCommand())
	rootCmd.AddCommand(cmd.SearchCommand())
	rootCmd.AddCommand(cmd.UpdateCommand())
	rootCmd.AddCommand(cmd.VersionCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
