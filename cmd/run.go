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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"syscall"

	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/sirupsen/logrus"
	"github.com/speedyrails/oneoff/config"
	"github.com/speedyrails/oneoff/logs"
	"github.com/speedyrails/oneoff/task"
	"github.com/speedyrails/oneoff/workflow"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func closeHandler(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
		fmt.Println(workflow.Yellow(" Cleaning up before exiting..."))
	}()
}

// defaultsPath returns the location of the optional cluster defaults file
func defaultsPath() string {
	if p := viper.GetString("defaults-file"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return path.Join(home, ".oneoff", "defaults.yaml")
}

// NewRunCommand returns a command that creates and runs a one-off task
func NewRunCommand() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Create and run a one-off task from a task definition already created",
		Run: func(cmd *cobra.Command, args []string) {

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			closeHandler(cancel)

			cfg := getRunConfig()

			// Fill in cluster and network settings from the defaults file
			// for any flags that were not given
			if p := defaultsPath(); p != "" && fileExists(p) {
				defaults, err := config.LoadDefaults(p)
				if err != nil {
					fatal(fmt.Errorf("Unable to read %s: %s", p, err))
				}
				cfg.ApplyDefaults(defaults)
			}

			if err := cfg.Validate(); err != nil {
				fatal(err)
			}

			sess, err := getSession(cfg.Profile, cfg.Region)
			if err != nil {
				fatal(err)
			}
			region := sessionRegion(sess)
			logrus.WithFields(logrus.Fields{
				"region":  region,
				"cluster": cfg.Cluster,
			}).Debug("Session established")

			ecsAPI := ecs.New(sess)
			logsAPI := cloudwatchlogs.New(sess)

			wf := &workflow.Workflow{
				Config:      cfg,
				Region:      region,
				Definitions: task.NewDefinitions(ecsAPI),
				Runner: task.NewRunner(ecsAPI, task.RunnerConfig{
					Cluster:      cfg.Cluster,
					PollInterval: cfg.PollInterval,
					MaxAttempts:  cfg.MaxAttempts,
				}),
				Logs: logs.NewCloudWatch(logsAPI, cfg.RetentionDays),
				Out:  os.Stdout,
			}

			code, err := wf.Run(ctx)
			if err != nil {
				fatal(err)
			}
			os.Exit(code)
		},
	}

	cmd.Flags().String("task-name", "", "Name for the one-off task")
	cmd.Flags().String("from-task", "", "Name of the reference task to create the one-off task")
	cmd.Flags().String("cluster", "", "ECS cluster name to connect")
	cmd.Flags().String("image", "", "Image URI for the one-off task")
	cmd.Flags().String("entrypoint", "", "Entrypoint for the one-off task, e.g.: 'sh -c'")
	cmd.Flags().StringSlice("command", nil, "Command for the one-off task")
	cmd.Flags().String("launch-type", config.LaunchTypeEC2, "Launch type on which to run the one-off task (EC2 | FARGATE)")
	cmd.Flags().StringSlice("networks-id", nil, "IDs of the subnets associated with the one-off task")
	cmd.Flags().StringSlice("security-groups-id", nil, "IDs of the security groups associated with the one-off task")
	cmd.Flags().Int64("retention-days", logs.DefaultRetentionDays, "Days to retain the log events in the task log group")
	cmd.Flags().Duration("poll-interval", task.DefaultPollInterval, "Interval between task status checks while waiting")
	cmd.Flags().Int("max-attempts", task.DefaultMaxAttempts, "Maximum number of task status checks while waiting")
	cmd.Flags().String("defaults-file", "", "YAML file with cluster defaults (default ~/.oneoff/defaults.yaml)")

	viper.BindPFlag("task-name", cmd.Flags().Lookup("task-name"))
	viper.BindPFlag("from-task", cmd.Flags().Lookup("from-task"))
	viper.BindPFlag("cluster", cmd.Flags().Lookup("cluster"))
	viper.BindPFlag("image", cmd.Flags().Lookup("image"))
	viper.BindPFlag("entrypoint", cmd.Flags().Lookup("entrypoint"))
	viper.BindPFlag("command", cmd.Flags().Lookup("command"))
	viper.BindPFlag("launch-type", cmd.Flags().Lookup("launch-type"))
	viper.BindPFlag("networks-id", cmd.Flags().Lookup("networks-id"))
	viper.BindPFlag("security-groups-id", cmd.Flags().Lookup("security-groups-id"))
	viper.BindPFlag("retention-days", cmd.Flags().Lookup("retention-days"))
	viper.BindPFlag("poll-interval", cmd.Flags().Lookup("poll-interval"))
	viper.BindPFlag("max-attempts", cmd.Flags().Lookup("max-attempts"))
	viper.BindPFlag("defaults-file", cmd.Flags().Lookup("defaults-file"))

	return cmd
}

func init() {
	rootCmd.AddCommand(NewRunCommand())
}
