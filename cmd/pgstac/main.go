// Command pgstac is a small CLI over a pgstac database: inspect the
// installation, search items, and load records from newline-delimited JSON.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	pgstac "github.com/lk2023060901/pgstac-go"
	"github.com/lk2023060901/pgstac-go/internal/pkg/logger"
)

var (
	cfgFile string
	log     *zap.Logger
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pgstac",
		Short:         "Client for a pgstac database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default pgstac.yaml)")
	flags.String("host", "localhost", "database host")
	flags.Int("port", 5432, "database port")
	flags.String("user", "postgres", "database user")
	flags.String("password", "postgres", "database password")
	flags.String("dbname", "postgis", "database name")
	flags.String("sslmode", "disable", "sslmode")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(versionCmd(), settingCmd(), searchCmd(), loadCmd())
	return root
}

// initConfig layers configuration: flags over environment (PGSTAC_*) over
// an optional config file.
func initConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pgstac")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("PGSTAC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = viper.GetString("log-level")
	var err error
	log, err = logger.New(logCfg)
	return err
}

// connect builds the pool and the client from the resolved configuration.
func connect(ctx context.Context) (*pgxpool.Pool, *pgstac.Client, error) {
	cfg := pgstac.DefaultConfig()
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.User = viper.GetString("user")
	cfg.Password = viper.GetString("password")
	cfg.DBName = viper.GetString("dbname")
	cfg.SSLMode = viper.GetString("sslmode")

	pool, err := pgstac.Connect(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return pool, pgstac.New(pool, log), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pgstac version of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			version, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(version)
			return nil
		},
	}
}

func settingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setting <name>",
		Short: "Print the value of a pgstac setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			value, err := client.Setting(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}
