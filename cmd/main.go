// Copyright IBM Corp. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/copa-europe-marketplace/pkg/config"
	"github.com/copa-europe-marketplace/pkg/server"
	"github.com/hyperledger-labs/orion-server/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	configPath string
	// PathEnv is an environment variable that can hold the absolute path of the config file
	pathEnv = "MARKETPLACE_CONFIG_PATH"
)

func main() {
	cmd := marketplaceCmd()

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if cmd.Execute() != nil {
		os.Exit(1)
	}
}

func marketplaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "marketplace",
		Short: "To start and interact with a marketplace listing and settlement server.",
	}
	cmd.AddCommand(versionCmd())
	cmd.AddCommand(startCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of the marketplace server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("trailing arguments detected")
			}

			cmd.SilenceUsage = true
			cmd.Println("marketplace v0.1")

			return nil
		},
	}

	return cmd
}

func startCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Starts a marketplace server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			switch {
			case configPath != "":
				path = configPath
			case os.Getenv(pathEnv) != "":
				path = os.Getenv(pathEnv)
			default:
				log.Fatalf("Neither --configpath nor %s path environment is set", pathEnv)
			}

			conf, err := config.Read(path)
			if err != nil {
				return err
			}

			lg, err := logger.New(&logger.Config{
				Level:         conf.LogLevel,
				OutputPath:    []string{"stdout"},
				ErrOutputPath: []string{"stderr"},
				Encoding:      "console",
				Name:          "marketplace",
			})
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			lg.Info("Starting a marketplace server")
			marketServer, err := server.NewMarketplaceServer(conf, lg)
			if err != nil {
				return err
			}

			if err = marketServer.Start(); err != nil {
				return err
			}

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
			sig := <-signals
			lg.Infof("Received signal: %s", sig)

			return marketServer.Stop()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "configpath", "", "set the absolute path of config directory")
	return cmd
}
