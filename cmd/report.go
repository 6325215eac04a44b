package cmd

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var (
	reportInput string
	reportHTML  string
)

// reportCmd summarises slot coverage across groups
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise which texture slots the groups fill",
	Long: `Count, for each slot, how many groups have a texture for it.

Use --html to also write a bar chart page.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "Input texture folder")
	reportCmd.Flags().StringVar(&reportHTML, "html", "", "Write an HTML chart to this file")
}

// roleCoverage counts the groups filling each role, in role order
func roleCoverage(groups domain.TextureSet) []int {
	counts := make([]int, len(domain.Roles()))
	for _, g := range groups {
		for i, role := range domain.Roles() {
			if g.Has(role) {
				counts[i]++
			}
		}
	}
	return counts
}

func runReport(cmd *cobra.Command, args []string) error {
	prefs, err := resolvePaths(reportInput, "")
	if err != nil {
		return err
	}

	resp, err := textureGrouper.Execute(getContext(), services.GroupRequest{InputDir: prefs.InputPath})
	if err != nil {
		fmt.Println(ui.FormatError(describeError(err)))
		return err
	}

	counts := roleCoverage(resp.Groups)

	fmt.Println(ui.FormatTitle("Slot Coverage"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Textures", fmt.Sprintf("%d", resp.Files)))
	fmt.Println(ui.RenderKeyValue("Groups", fmt.Sprintf("%d", len(resp.Groups))))
	fmt.Println(ui.RenderKeyValue("Skipped", fmt.Sprintf("%d", len(resp.Skipped))))
	fmt.Println(ui.RenderKeyValue("Replaced", fmt.Sprintf("%d", len(resp.Overwrites))))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Slot"},
		{Header: "Suffix"},
		{Header: "Groups", Align: "right"},
	})
	for i, role := range domain.Roles() {
		table.AddRow([]string{string(domain.SlotForRole(role)), role.Suffix(), fmt.Sprintf("%d", counts[i])})
	}
	fmt.Print(table.Render())

	if reportHTML != "" {
		if err := writeCoverageChart(reportHTML, prefs.InputPath, counts); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Chart written to " + reportHTML))
	}
	return nil
}

// writeCoverageChart renders the coverage counts as a bar chart page
func writeCoverageChart(path, input string, counts []int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Slot Coverage",
			Subtitle: input,
		}),
	)

	labels := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for i, role := range domain.Roles() {
		labels = append(labels, role.String())
		data = append(data, opts.BarData{Value: counts[i]})
	}
	bar.SetXAxis(labels).AddSeries("Groups", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
