package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flightbot/bookflight/cmd/bookflight/commands"
	"github.com/flightbot/bookflight/internal/core"
)

func main() {
	root := commands.RootCmd()
	root.AddCommand(commands.SearchCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(commands.ConfigCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		code := core.ExitCode(err)
		if code == 2 {
			fmt.Fprint(os.Stderr, root.UsageString())
		}
		os.Exit(code)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print bookflight version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("bookflight v0.1.0")
		},
	}
}
