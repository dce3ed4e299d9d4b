// Package cmd wires the matchserver binary's cobra root command: flags
// bound through viper to internal/config.Config, rather than bare
// flag.Parse().
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/zerchniv/matchserver/internal/catalog"
	"github.com/zerchniv/matchserver/internal/config"
	"github.com/zerchniv/matchserver/internal/logging"
	"github.com/zerchniv/matchserver/internal/match"
	"github.com/zerchniv/matchserver/internal/match/rules"
	"github.com/zerchniv/matchserver/internal/transport"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "matchserver",
	Short:        "matchserver hosts the hex-grid tactical card game match runtime",
	SilenceUsage: true,
	Long: `matchserver listens for WebSocket connections and routes them into a
registry of per-match actors, each the sole writer of one match's state.

Examples:
  matchserver                       Start listening with defaults
  matchserver --listen :9000        Listen on a different port
  matchserver --catalog cards.json  Load a catalog file instead of the built-in seed set`,
	RunE: runServe,
}

// Execute runs the root command; it is the only entry point cmd/matchserver
// calls into.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	def := config.Default()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.matchserver.yaml)")
	rootCmd.Flags().String("listen", def.ListenAddr, "listen address (env: MATCHSERVER_LISTEN)")
	rootCmd.Flags().Duration("turn-duration", def.TurnDuration, "per-turn timer duration (env: MATCHSERVER_TURN_DURATION)")
	rootCmd.Flags().Duration("idle-duration", def.IdleDuration, "match idle timeout (env: MATCHSERVER_IDLE_DURATION)")
	rootCmd.Flags().String("catalog", def.CatalogPath, "path to a catalog JSON file (env: MATCHSERVER_CATALOG); empty uses the built-in seed set")
	rootCmd.Flags().String("log-level", def.LogLevel, "log level: debug, info, warn, error (env: MATCHSERVER_LOG_LEVEL)")
	rootCmd.Flags().String("log-format", def.LogFormat, "log format: console or json (env: MATCHSERVER_LOG_FORMAT)")

	viper.BindPFlag("listen", rootCmd.Flags().Lookup("listen"))
	viper.BindPFlag("turn-duration", rootCmd.Flags().Lookup("turn-duration"))
	viper.BindPFlag("idle-duration", rootCmd.Flags().Lookup("idle-duration"))
	viper.BindPFlag("catalog", rootCmd.Flags().Lookup("catalog"))
	viper.BindPFlag("log-level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log-format", rootCmd.Flags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".matchserver")
	}

	viper.SetEnvPrefix("MATCHSERVER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func loadConfig() config.Config {
	return config.Config{
		ListenAddr:   viper.GetString("listen"),
		TurnDuration: viper.GetDuration("turn-duration"),
		IdleDuration: viper.GetDuration("idle-duration"),
		CatalogPath:  viper.GetString("catalog"),
		LogLevel:     viper.GetString("log-level"),
		LogFormat:    viper.GetString("log-format"),
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	log, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("matchserver: build logger: %w", err)
	}
	defer log.Sync()

	reg, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("matchserver: load catalog: %w", err)
	}

	hooks := rules.NewEngine()
	rules.RegisterBuiltinHooks(hooks)

	registry := match.NewRegistry(reg, hooks, log)
	defer registry.Shutdown()

	srv := transport.NewServer(registry, log, match.Config{
		TurnDuration: cfg.TurnDuration,
		IdleDuration: cfg.IdleDuration,
		InboxSize:    32,
		OutboxSize:   64,
	})

	log.Info("matchserver listening", zap.String("addr", cfg.ListenAddr))
	return http.ListenAndServe(cfg.ListenAddr, srv.Handler())
}
