package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chatapp/chatsummary/config"
	"github.com/chatapp/chatsummary/internal"
	"github.com/chatapp/chatsummary/pkg/auth"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
	tokenTTL    time.Duration
)

var cmd = &cobra.Command{
	Use:   "chatsummary",
	Short: "chatsummary summarizes chat conversations with a few-shot prompt sent to an LLM inference backend",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJSONSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for the configuration file",
	Example: "chatsummary json-schema > config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

var generateTokenCmd = &cobra.Command{
	Use:   "generate-token",
	Short: "Generates a JWT for callers when auth.required is set",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		token, err := auth.GenerateJWT(&cfg.Auth, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	},
}

func init() {
	cmd.AddCommand(dumpJSONSchemaCmd)
	cmd.AddCommand(generateTokenCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")

	generateTokenCmd.Flags().
		DurationVar(&tokenTTL, "ttl", 0, "token lifetime, 0 for a token that never expires")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
