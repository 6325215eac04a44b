package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/core/domain"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var (
	watchInput  string
	watchOutput string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reconvert whenever textures change",
	Long: `Run a conversion pass, then watch the input folder and run a full pass
again whenever textures are created, modified, renamed or deleted.

Passes run one at a time; bursts of changes are debounced
(watch_debounce_ms in the config, 500ms by default).`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "Input texture folder")
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output material folder")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt)
	defer stop()

	prefs, err := resolvePaths(watchInput, watchOutput)
	if err != nil {
		return err
	}
	req := services.ConvertRequest{InputDir: prefs.InputPath, OutputDir: prefs.OutputPath}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, prefs.InputPath); err != nil {
		return err
	}

	fmt.Println(ui.FormatRocket("Watching " + prefs.InputPath))
	fmt.Println(ui.FormatMuted("Materials go to " + prefs.OutputPath))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	runPass := func() {
		resp, err := convertService.Execute(ctx, req)
		printConversion(resp, err)
		fmt.Println()
	}
	runPass()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// New directories need their own watch
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						appLogger.Warn("failed to watch directory", "dir", event.Name, "err", err)
					}
					continue
				}
			}

			if !isTextureEvent(event) {
				continue
			}
			appLogger.Debug("texture changed", "path", event.Name, "op", event.Op.String())

			if timer == nil {
				timer = time.NewTimer(debounce())
			} else {
				timer.Reset(debounce())
			}
			fire = timer.C

		case <-fire:
			fire = nil
			fmt.Println(ui.FormatInfo("Changes detected, converting..."))
			runPass()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLogger.Error("watcher error", "err", err)

		case <-ctx.Done():
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watcher stopped"))
			return nil
		}
	}
}

// watchTree adds root and every directory below it to the watcher
func watchTree(watcher *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return fmt.Errorf("%w: input directory %s", domain.ErrNotFound, root)
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// isTextureEvent reports whether event touches a file with the texture extension
func isTextureEvent(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), appConfig.TextureExtension) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return false
	}
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename)
}
