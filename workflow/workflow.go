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
package workflow

import (
	"context"
	"fmt"
	"io"
	"strconv"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/speedyrails/oneoff/config"
	"github.com/speedyrails/oneoff/logs"
	"github.com/speedyrails/oneoff/task"
)

// Workflow runs the full one-off task pipeline: clone the reference task
// definition, ensure the log destination exists, run the task, wait for it
// to stop, and report the outcome
type Workflow struct {
	Config      config.Config
	Region      string
	Definitions task.Definitions
	Runner      task.Runner
	Logs        logs.Service
	Out         io.Writer
}

// Run executes the pipeline and returns the process exit code: 0 when the
// container exited with code zero, 1 otherwise
func (w *Workflow) Run(ctx context.Context) (int, error) {

	cfg := w.Config
	group := cfg.LogGroup()

	arn, err := w.Definitions.Clone(ctx, task.Options{
		Name:       cfg.TaskName,
		FromTask:   cfg.FromTask,
		Image:      cfg.Image,
		Command:    cfg.Command,
		Entrypoint: cfg.EntrypointTokens(),
		LaunchType: cfg.LaunchType,
		LogGroup:   group,
		LogRegion:  w.Region,
		LogPrefix:  config.LogStreamPrefix,
	})
	if err != nil {
		return 1, err
	}
	fmt.Fprintf(w.Out, "==> Created the task definition: %s\n", arn)

	if err := w.Logs.EnsureGroup(ctx, group); err != nil {
		return 1, err
	}
	fmt.Fprintf(w.Out, "\nUsing the '%s' CloudWatch Log Group to store the containers logs\n", group)

	startedBy := uuid.NewV4().String()
	logrus.WithField("started_by", startedBy).Debug("Submitting task")

	t, err := w.Runner.Run(ctx, task.RunOptions{
		TaskDefinition: arn,
		LaunchType:     cfg.LaunchType,
		Subnets:        cfg.Subnets,
		SecurityGroups: cfg.SecurityGroups,
		StartedBy:      startedBy,
	})
	if err != nil {
		return 1, err
	}
	fmt.Fprintf(w.Out, "\n==> Executed task ARN: %s\n", t.ARN)
	fmt.Fprintln(w.Out, "\nWaiting for the task to finish...")

	if err := w.Runner.WaitUntilStopped(ctx, t); err != nil {
		return 1, err
	}

	result, err := w.Runner.Describe(ctx, t)
	if err != nil {
		return 1, err
	}

	if result.Success() {
		fmt.Fprintln(w.Out, Green("\n==> The one-off task process has finished correctly!!"))
		if err := w.printOutput(ctx, group, t.ARN); err != nil {
			return 1, err
		}
		return 0, nil
	}

	fmt.Fprintln(w.Out, Red("\n==> The one-off task has failed!!"))
	fmt.Fprintf(w.Out, "Container exit code: %s\n", formatExitCode(result.ExitCode))
	fmt.Fprintf(w.Out, "Container exit reason: %s\n", formatReason(result.ExitReason))
	fmt.Fprintf(w.Out, "Stopped reason: %s\n", formatReason(result.StoppedReason))
	if err := w.printOutput(ctx, group, t.ARN); err != nil {
		return 1, err
	}
	return 1, nil
}

func (w *Workflow) printOutput(ctx context.Context, group, taskARN string) error {
	lines, err := w.Logs.Output(ctx, group, taskARN)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintln(w.Out, "Container output: None")
		return nil
	}
	fmt.Fprintln(w.Out, "Container output: ")
	for _, line := range lines {
		fmt.Fprintln(w.Out, line)
	}
	return nil
}

func formatExitCode(code *int64) string {
	if code == nil {
		return "None"
	}
	return strconv.FormatInt(*code, 10)
}

func formatReason(reason *string) string {
	if reason == nil {
		return "None"
	}
	return *reason
}
