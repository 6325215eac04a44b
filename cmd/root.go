package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/tex2mat/internal/adapters/filesystem"
	"github.com/kamal-hamza/tex2mat/internal/adapters/preferences"
	"github.com/kamal-hamza/tex2mat/internal/adapters/repository"
	"github.com/kamal-hamza/tex2mat/internal/adapters/shader"
	"github.com/kamal-hamza/tex2mat/internal/core/services"
	"github.com/kamal-hamza/tex2mat/pkg/appdirs"
	"github.com/kamal-hamza/tex2mat/pkg/config"
	"github.com/kamal-hamza/tex2mat/pkg/logging"
	"github.com/kamal-hamza/tex2mat/pkg/ui"
)

var (
	// Global flags
	configPathFlag string
	verboseFlag    bool

	appDirs    *appdirs.Dirs
	appConfig  *config.Config
	appLogger  *log.Logger
	configPath string

	// Services
	preferencesService *services.PreferencesService
	textureGrouper     *services.TextureGrouper
	materialAssembler  *services.MaterialAssembler
	convertService     *services.ConvertService

	// Adapters
	scanner       *filesystem.Scanner
	assetStore    *repository.FileAssetStore
	shaderCatalog *shader.Catalog
	prefStore     *preferences.FileStore
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tex2mat",
	Short: "Batch-convert texture sets into materials",
	Long: ui.StyleTitle.Render("tex2mat") + " - Texture to Material Batch\n\n" +
		"Scans a folder of textures, groups them by name and writes one material per group.\n" +
		"Texture file names must end with " + suffixList() + " to be recognised.\n\n" +
		"Run without a subcommand to open the interactive converter.",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	RunE:              runWindow,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "", "Config file (default: $XDG_CONFIG_HOME/tex2mat/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	// Version needs nothing
	if cmd.Name() == "version" {
		return nil
	}

	d, err := appdirs.New()
	if err != nil {
		return err
	}
	appDirs = d

	configPath = appDirs.ConfigPath()
	if configPathFlag != "" {
		configPath = configPathFlag
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	level := appConfig.LogLevel
	if verboseFlag {
		level = "debug"
	}
	appLogger = logging.Default(level)

	catalogPath := appConfig.ShaderCatalog
	if catalogPath == "" {
		catalogPath = appDirs.ShaderCatalogPath()
	}

	// Initialize adapters
	scanner = filesystem.NewScanner()
	assetStore = repository.NewFileAssetStore()
	prefStore = preferences.NewFileStore(appDirs.PreferencesPath())
	shaderCatalog, err = shader.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	buildServices()
	return nil
}

// buildServices wires the services from the current config and adapters
func buildServices() {
	preferencesService = services.NewPreferencesService(prefStore)
	textureGrouper = services.NewTextureGrouper(scanner, assetStore, services.GroupOptions{
		Extension:       appConfig.TextureExtension,
		FailOnUnmatched: appConfig.StrictUnmatched,
		FailOnDuplicate: appConfig.StrictDuplicates,
	}, appLogger)
	materialAssembler = services.NewMaterialAssembler(shaderCatalog, assetStore, services.AssembleOptions{
		Shader:    appConfig.Shader,
		Extension: appConfig.MaterialExtension,
	}, appLogger)
	convertService = services.NewConvertService(preferencesService, textureGrouper, materialAssembler)
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}

// debounce returns the configured watch debounce
func debounce() time.Duration {
	return time.Duration(appConfig.WatchDebounceMS) * time.Millisecond
}
