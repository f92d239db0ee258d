package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/markschellhas/chic/internal/logging"
	"github.com/markschellhas/chic/internal/ui"
	"github.com/markschellhas/chic/pkg/config"
)

var (
	cfgFile string
	cfg     config.Config
	logger  = zap.NewNop()

	// appFs is where projects are read and generated. Tests swap in a memory fs.
	appFs afero.Fs = afero.NewOsFs()

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "chic",
	Short: "Scaffold SvelteKit resources from a database",
	Long: `A CLI tool that generates Sequelize models, controllers, forms, pages and
API routes for a SvelteKit project, either from the tables of an existing
database or from a field list.

Examples:
  chic init --dialect postgres --database blog --user blog
  chic scaffold db
  chic make posts title:string body:text published:boolean
  chic schema --format mermaid
  chic routes`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.NewPrinter(rootCmd.ErrOrStderr(), cfg.NoColor).Failed("error", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.chic.yaml or $HOME/.chic.yaml)")
	rootCmd.PersistentFlags().String("root", ".", "project directory; package.json is searched upwards from here")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))

	viper.SetDefault("database.env", "")
	viper.SetDefault("database.timeout", config.DefaultTimeout)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".chic")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CHIC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = log
	return nil
}

func printer(w io.Writer) *ui.Printer {
	return ui.NewPrinter(w, cfg.NoColor)
}
