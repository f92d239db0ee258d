package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/markschellhas/chic/internal/scaffold"
	"github.com/markschellhas/chic/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Prepare a SvelteKit project for chic",
	Long: `Writes chic.json, src/lib/db/database_config.json and src/lib/db/db.js.

Examples:
  chic init
  chic init --dialect mysql --database shop --user shop --password secret
  chic init --interactive`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("dialect", string(config.DialectSQLite), "database dialect: sqlite, mysql, postgres")
	initCmd.Flags().String("database", "chic.sqlite", "database name, or file path for sqlite")
	initCmd.Flags().String("host", "", "database host (default localhost)")
	initCmd.Flags().Int("port", 0, "database port (default: the dialect's port)")
	initCmd.Flags().String("user", "", "database user")
	initCmd.Flags().String("password", "", "database password")
	initCmd.Flags().String("sslmode", "", "postgres sslmode: disable, require, verify-ca, verify-full")
	initCmd.Flags().StringP("env", "e", config.DefaultEnv, "environment to configure")
	initCmd.Flags().Bool("force", false, "replace an existing database configuration")
	initCmd.Flags().BoolP("interactive", "i", false, "prompt for the database settings")
}

func runInit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	dialect, _ := flags.GetString("dialect")
	dbCfg := config.DBConfig{Dialect: config.ParseDialect(dialect)}
	dbCfg.Database, _ = flags.GetString("database")
	dbCfg.Host, _ = flags.GetString("host")
	dbCfg.Port, _ = flags.GetInt("port")
	dbCfg.User, _ = flags.GetString("user")
	dbCfg.Password, _ = flags.GetString("password")
	dbCfg.SSLMode, _ = flags.GetString("sslmode")
	env, _ := flags.GetString("env")
	force, _ := flags.GetBool("force")

	if interactive, _ := flags.GetBool("interactive"); interactive {
		if err := promptDBConfig(&dbCfg); err != nil {
			return err
		}
	}

	out := printer(cmd.OutOrStdout())
	out.Section("Initializing chic...")

	s := scaffold.New(appFs, nil, scaffold.Options{Root: cfg.Root, Reporter: out}, logger)
	if _, err := s.Init(env, dbCfg, force); err != nil {
		return err
	}
	out.Section("chic initialized successfully")
	return nil
}

func promptDBConfig(dbCfg *config.DBConfig) error {
	dialects := make([]string, 0, len(config.Dialects))
	for _, d := range config.Dialects {
		dialects = append(dialects, string(d))
	}

	var dialect string
	if err := survey.AskOne(&survey.Select{
		Message: "Database dialect:",
		Options: dialects,
		Default: string(dbCfg.Dialect),
	}, &dialect); err != nil {
		return err
	}
	dbCfg.Dialect = config.Dialect(dialect)

	message := "Database name:"
	if dbCfg.Dialect == config.DialectSQLite {
		message = "Database file:"
	}
	if err := survey.AskOne(&survey.Input{Message: message, Default: dbCfg.Database}, &dbCfg.Database, survey.WithValidator(survey.Required)); err != nil {
		return err
	}
	if dbCfg.Dialect == config.DialectSQLite {
		return nil
	}

	host := dbCfg.Host
	if host == "" {
		host = "localhost"
	}
	port := dbCfg.Port
	if port == 0 {
		port = dbCfg.Dialect.DefaultPort()
	}

	answers := struct {
		Host     string
		Port     string
		User     string
		Password string
	}{}
	questions := []*survey.Question{
		{Name: "host", Prompt: &survey.Input{Message: "Host:", Default: host}},
		{Name: "port", Prompt: &survey.Input{Message: "Port:", Default: strconv.Itoa(port)}, Validate: validatePort},
		{Name: "user", Prompt: &survey.Input{Message: "User:", Default: dbCfg.User}},
		{Name: "password", Prompt: &survey.Password{Message: "Password:"}},
	}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	dbCfg.Host = answers.Host
	dbCfg.Port, _ = strconv.Atoi(answers.Port)
	dbCfg.User = answers.User
	if answers.Password != "" {
		dbCfg.Password = answers.Password
	}
	return nil
}

func validatePort(ans interface{}) error {
	s, _ := ans.(string)
	port, err := strconv.Atoi(s)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be a number between 1 and 65535")
	}
	return nil
}
