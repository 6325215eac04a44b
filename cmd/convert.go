package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var (
	convertInput  string
	convertOutput string
	convertStrict bool
)

// convertCmd runs one conversion pass
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a texture folder into materials",
	Long: `Run one conversion pass without opening the interactive window.

Folders default to the paths used last time (Assets/Textures and
Assets/Materials on first run). The paths given are stored for next time.

Examples:
  tex2mat convert
  tex2mat convert -i Assets/Textures/Rocks -o Assets/Materials/Rocks
  tex2mat convert --strict`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input texture folder")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output material folder")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail on unmatched names and duplicate slots")
}

func runConvert(cmd *cobra.Command, args []string) error {
	if convertStrict {
		appConfig.StrictUnmatched = true
		appConfig.StrictDuplicates = true
		buildServices()
	}

	prefs, err := resolvePaths(convertInput, convertOutput)
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatRocket(fmt.Sprintf("Converting %s -> %s", prefs.InputPath, prefs.OutputPath)))

	resp, err := convertService.Execute(getContext(), services.ConvertRequest{
		InputDir:  prefs.InputPath,
		OutputDir: prefs.OutputPath,
	})
	printConversion(resp, err)
	return err
}
