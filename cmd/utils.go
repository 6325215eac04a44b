package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

// suffixList renders the recognised suffixes for help text
func suffixList() string {
	quoted := make([]string, 0, len(domain.Suffixes()))
	for _, s := range domain.Suffixes() {
		quoted = append(quoted, `"`+s+`"`)
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
}

// GetPreferredEditor returns the editor command from config, env, or default
func GetPreferredEditor() string {
	// 1. Check Config
	if appConfig != nil && appConfig.Editor != "" {
		return appConfig.Editor
	}
	// 2. Check Environment
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	// 3. Fallback
	return "vi"
}

// resolvePaths fills blank flag values from the stored preferences
func resolvePaths(input, output string) (domain.Preferences, error) {
	prefs, err := preferencesService.Load(getContext())
	if err != nil {
		return prefs, err
	}
	if input != "" {
		prefs.InputPath = input
	}
	if output != "" {
		prefs.OutputPath = output
	}
	return prefs, nil
}

// relPath shortens path relative to base for display
func relPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// renderGroupTable renders one row per group with a mark per role
func renderGroupTable(groups domain.TextureSet) string {
	columns := []ui.TableColumn{{Header: "Group"}}
	for _, role := range domain.Roles() {
		columns = append(columns, ui.TableColumn{Header: role.String(), Align: "center"})
	}
	table := ui.NewTable(columns)

	for _, key := range groups.Keys() {
		g := groups[key]
		row := []string{key}
		for _, role := range domain.Roles() {
			row = append(row, ui.Mark(g.Has(role)))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// printConversion reports a pass, including partial results of a failed one
func printConversion(resp *services.ConvertResponse, err error) {
	if resp != nil && resp.Grouping != nil {
		g := resp.Grouping
		fmt.Println(ui.FormatInfo(fmt.Sprintf("Scanned %d textures into %d groups", g.Files, len(g.Groups))))
		for _, skipped := range g.Skipped {
			fmt.Println(ui.FormatMuted("  skipped " + skipped))
		}
		for _, o := range g.Overwrites {
			fmt.Println(ui.FormatMuted(fmt.Sprintf("  %s %s: %s replaced %s", o.Key, o.Role, o.Current, o.Previous)))
		}
	}

	for _, created := range resp.Created() {
		fmt.Println(ui.FormatMaterial("Material created at " + created.Path))
	}

	if err != nil {
		fmt.Println(ui.FormatError(describeError(err)))
		if resp != nil && resp.Assembly != nil && resp.Assembly.Failed != "" {
			fmt.Println(ui.FormatWarning(fmt.Sprintf("Stopped at group %q after %d materials", resp.Assembly.Failed, len(resp.Created()))))
		}
		return
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Created %d materials", len(resp.Created()))))
}

// describeError turns the error taxonomy into a user-facing line
func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Folder not found: " + err.Error()
	case errors.Is(err, domain.ErrConfiguration):
		return "Shader configuration problem: " + err.Error()
	case errors.Is(err, domain.ErrUnmatchedTexture), errors.Is(err, domain.ErrDuplicateRole):
		return "Strict mode: " + err.Error()
	case errors.Is(err, domain.ErrConversionInProgress):
		return "A conversion is already running"
	default:
		return err.Error()
	}
}
