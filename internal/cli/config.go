package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hashcalc-project/hashcalc/pkg/config"
	"github.com/hashcalc-project/hashcalc/pkg/errclass"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config <command>",
	Short: "Manage hashcalc configuration",
	Long: `Manage hashcalc configuration.

The config file is read from $HASHCALC_CONFIG, or config.yaml under the user
configuration directory. A missing file means built-in defaults.

Configuration keys:
  default_algorithm  - Algorithm used when --file is given without --mode
  progress_enabled   - Show progress bars (true, false)
  interface          - Interactive surface (auto, gui, tui)
  chunk.default      - Chunk size in bytes when the medium is unknown
  chunk.ssd          - Chunk size in bytes on solid-state drives
  chunk.hdd          - Chunk size in bytes on rotational drives
  medium.strategy    - Medium detection (auto, powershell, sysfs, none)
  medium.timeout     - Bound on medium detection (e.g. 10s)
  logging.level      - Log level (debug, info, warn, error)
  logging.format     - Log format (text, json)`,
	DisableFlagsInUseLine: true,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), cfg)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "# hashcalc configuration")
		fmt.Fprintf(cmd.OutOrStdout(), "# Location: %s\n\n", path)
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !configInitForce {
			return errclass.ErrUsage.WithMessagef("config file %s already exists (use --force to overwrite)", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			return errclass.ErrIO.Wrap(err, "save config")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a configuration value",
	Args:      usageArgs(cobra.ExactArgs(1)),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		value, err := cfg.Get(args[0])
		if err != nil {
			return errclass.ErrUsage.Wrap(err, "get config")
		}
		if value == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (not set)\n", args[0])
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(value, "\n"))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and save the config file.

Examples:
  hashcalc config set default_algorithm SHA256
  hashcalc config set chunk.ssd 1048576
  hashcalc config set medium.strategy none`,
	Args: usageArgs(cobra.ExactArgs(2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, cfg, err := loadConfig()
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		if err := cfg.Set(key, value); err != nil {
			return errclass.ErrUsage.Wrap(err, "set config")
		}
		if err := config.Save(path, cfg); err != nil {
			return errclass.ErrIO.Wrap(err, "save config")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

func loadConfig() (string, *config.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return "", nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", nil, errclass.ErrUsage.Wrap(err, "load config")
	}
	return path, cfg, nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
