package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the folders, config and shader before converting",
	Long: `Diagnose problems that would stop a conversion pass.

Checks for:
  - Configuration file and preferences file
  - Input and output folders (from the stored preferences)
  - The configured shader in the shader catalog`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("tex2mat doctor"))
	fmt.Println()

	checkStep("Configuration File", func() error {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use)", configPath)
		}
		return nil
	})

	checkStep("Preferences File", func() error {
		if _, err := os.Stat(prefStore.Path()); os.IsNotExist(err) {
			return fmt.Errorf("missing (will be created on the first conversion)")
		}
		return nil
	})

	prefs, err := preferencesService.Load(getContext())
	checkStep("Stored Paths", func() error {
		return err
	})

	checkStep("Input Folder", func() error {
		if !assetStore.FolderExists(getContext(), prefs.InputPath) {
			return fmt.Errorf("not found at %s", prefs.InputPath)
		}
		return nil
	})

	checkStep("Output Folder", func() error {
		if !assetStore.FolderExists(getContext(), prefs.OutputPath) {
			return fmt.Errorf("not found at %s (it is not created automatically)", prefs.OutputPath)
		}
		return nil
	})

	checkStep("Shader "+appConfig.Shader, func() error {
		if _, ok := shaderCatalog.Find(appConfig.Shader); !ok {
			return fmt.Errorf("not in catalog (known: %s)", strings.Join(shaderCatalog.Names(), ", "))
		}
		return nil
	})
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.StyleSuccess.Render(ui.IconSuccess), name)
	} else {
		fmt.Printf("%s %s\n", ui.StyleError.Render(ui.IconError), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}
