package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var (
	groupsInput       string
	groupsInteractive bool
)

// groupsCmd previews how textures will be grouped
var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show how textures are grouped, without writing anything",
	Long: `Scan the input folder and list every material that would be created,
with the slots its textures fill.

With --interactive, pick a group in a fuzzy finder to see its files;
the material path it would be written to is copied to the clipboard.`,
	RunE: runGroups,
}

func init() {
	groupsCmd.Flags().StringVarP(&groupsInput, "input", "i", "", "Input texture folder")
	groupsCmd.Flags().BoolVarP(&groupsInteractive, "interactive", "I", false, "Pick a group interactively")
}

func runGroups(cmd *cobra.Command, args []string) error {
	prefs, err := resolvePaths(groupsInput, "")
	if err != nil {
		return err
	}

	resp, err := textureGrouper.Execute(getContext(), services.GroupRequest{InputDir: prefs.InputPath})
	if err != nil {
		fmt.Println(ui.FormatError(describeError(err)))
		return err
	}

	if len(resp.Groups) == 0 {
		fmt.Println(ui.FormatWarning("No textures with a recognised suffix in " + prefs.InputPath))
		return nil
	}

	if groupsInteractive {
		return runInteractiveGroupPick(resp, prefs)
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("%s %d groups in %s", ui.IconTexture, len(resp.Groups), prefs.InputPath)))
	fmt.Println()
	fmt.Print(renderGroupTable(resp.Groups))

	if len(resp.Skipped) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatMuted(fmt.Sprintf("%d files without a recognised suffix:", len(resp.Skipped))))
		skipped := make([]string, len(resp.Skipped))
		for i, s := range resp.Skipped {
			skipped[i] = relPath(prefs.InputPath, s)
		}
		fmt.Print(ui.RenderSimpleList(skipped))
	}
	return nil
}

// runInteractiveGroupPick launches the fuzzy finder over the groups
func runInteractiveGroupPick(resp *services.GroupResponse, prefs domain.Preferences) error {
	keys := resp.Groups.Keys()

	idx, err := fuzzyfinder.Find(
		keys,
		func(i int) string { return keys[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return groupPreview(resp.Groups[keys[i]], prefs.InputPath)
		}),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := keys[idx]
	outPath := materialAssembler.OutputPath(prefs.OutputPath, selected)

	fmt.Println(ui.FormatSuccess("Selected: " + selected))
	fmt.Println(ui.RenderKeyValue("Material", outPath))

	if err := clipboard.WriteAll(outPath); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
	} else {
		fmt.Println(ui.FormatMuted("(Copied to clipboard)"))
	}
	return nil
}

// groupPreview lists the files bound to each role of g
func groupPreview(g *domain.TextureGroup, base string) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Group: %s\n\n", g.Key))
	for _, role := range domain.Roles() {
		tex := g.Get(role)
		if tex == nil {
			s.WriteString(fmt.Sprintf("%-16s -\n", role))
			continue
		}
		s.WriteString(fmt.Sprintf("%-16s %s\n", role, relPath(base, tex.Path)))
	}
	return s.String()
}
