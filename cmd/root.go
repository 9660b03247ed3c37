// Copyright 2021 Speedyrails, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the build, set via ldflags
var Version = "dev"

// GitCommit of the build, set via ldflags
var GitCommit = "unknown"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "oneoff",
	Short:   "Run one-off ECS tasks cloned from existing task definitions",
	Version: fmt.Sprintf("%s, build %s", Version, GitCommit),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) < 2 {
		rootCmd.SetOut(os.Stderr)
		rootCmd.Help()
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags available to all subcommands
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to perform the tasks")
	rootCmd.PersistentFlags().StringP("region", "r", "", "AWS region to perform the tasks")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	// Bind flags to environment variables if they are present
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {

	// Environment variables will be prefixed with "ONEOFF_"
	viper.SetEnvPrefix("oneoff")

	home, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	// Search config in home directory with name ".oneoff" (without extension)
	viper.AddConfigPath(home)
	viper.SetConfigName(".oneoff")

	viper.AutomaticEnv()
	viper.ReadInConfig()

	if viper.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
