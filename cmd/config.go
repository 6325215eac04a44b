package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the tex2mat configuration file",
	Long: `Open the configuration file in your editor, creating it with the
default values first if it does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath

		// Write defaults so there is something to edit
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := appConfig.Save(path); err != nil {
				return fmt.Errorf("failed to create config file: %w", err)
			}
			fmt.Println(ui.FormatSuccess("Created config: " + path))
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		c := exec.Command(GetPreferredEditor(), path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}
