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
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
	"github.com/sirupsen/logrus"
)

// Wait bounds matching the standard ECS tasks-stopped waiter
const (
	DefaultPollInterval = 6 * time.Second
	DefaultMaxAttempts  = 100
)

// RunnerConfig configures an ECS task runner
type RunnerConfig struct {
	Cluster      string
	PollInterval time.Duration
	MaxAttempts  int
}

type ecsRunner struct {
	api ecsiface.ECSAPI
	cfg RunnerConfig
}

// NewRunner returns a Runner backed by ECS. Zero wait bounds fall back to
// the defaults.
func NewRunner(api ecsiface.ECSAPI, cfg RunnerConfig) Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &ecsRunner{api: api, cfg: cfg}
}

// Run submits the one-off task to the cluster. Fargate tasks attach the
// supplied subnets and security groups with public IP assignment disabled.
func (r *ecsRunner) Run(ctx context.Context, opts RunOptions) (*Task, error) {

	input := &ecs.RunTaskInput{
		Cluster:        aws.String(r.cfg.Cluster),
		TaskDefinition: aws.String(opts.TaskDefinition),
	}
	if opts.StartedBy != "" {
		input.StartedBy = aws.String(opts.StartedBy)
	}
	if opts.LaunchType == ecs.LaunchTypeFargate {
		input.LaunchType = aws.String(ecs.LaunchTypeFargate)
		input.NetworkConfiguration = &ecs.NetworkConfiguration{
			AwsvpcConfiguration: &ecs.AwsVpcConfiguration{
				AssignPublicIp: aws.String(ecs.AssignPublicIpDisabled),
				Subnets:        aws.StringSlice(opts.Subnets),
				SecurityGroups: aws.StringSlice(opts.SecurityGroups),
			},
		}
	}

	result, err := r.api.RunTaskWithContext(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("Failed to run task: %s", err)
	}
	if len(result.Failures) > 0 {
		failure := result.Failures[0]
		return nil, fmt.Errorf("Failed to run task: %s: %s",
			aws.StringValue(failure.Arn), aws.StringValue(failure.Reason))
	}
	if len(result.Tasks) == 0 {
		return nil, fmt.Errorf("Failed to run task: no tasks started")
	}

	taskARN := aws.StringValue(result.Tasks[0].TaskArn)
	return &Task{ARN: taskARN, ID: taskID(taskARN)}, nil
}

// WaitUntilStopped polls the task status until it reaches STOPPED, the
// attempt budget runs out, or the context is canceled
func (r *ecsRunner) WaitUntilStopped(ctx context.Context, t *Task) error {

	for attempt := 1; attempt <= r.cfg.MaxAttempts; attempt++ {
		resp, err := r.api.DescribeTasksWithContext(ctx, &ecs.DescribeTasksInput{
			Cluster: aws.String(r.cfg.Cluster),
			Tasks:   []*string{aws.String(t.ARN)},
		})
		if err != nil {
			return fmt.Errorf("Failed to describe task %s: %s", t.ARN, err)
		}
		if len(resp.Tasks) > 0 {
			status := aws.StringValue(resp.Tasks[0].LastStatus)
			logrus.WithFields(logrus.Fields{
				"task":    t.ID,
				"status":  status,
				"attempt": attempt,
			}).Debug("Polled task status")
			if status == ecs.DesiredStatusStopped {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.cfg.PollInterval):
		}
	}
	return fmt.Errorf("Task %s did not stop after %d attempts", t.ARN, r.cfg.MaxAttempts)
}

// Describe reads the exit code and reasons from a stopped task
func (r *ecsRunner) Describe(ctx context.Context, t *Task) (*Result, error) {

	resp, err := r.api.DescribeTasksWithContext(ctx, &ecs.DescribeTasksInput{
		Cluster: aws.String(r.cfg.Cluster),
		Tasks:   []*string{aws.String(t.ARN)},
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to describe task %s: %s", t.ARN, err)
	}
	if len(resp.Tasks) == 0 {
		return nil, fmt.Errorf("Task not found: %s", t.ARN)
	}

	stopped := resp.Tasks[0]
	result := &Result{StoppedReason: stopped.StoppedReason}
	if len(stopped.Containers) > 0 {
		result.ExitCode = stopped.Containers[0].ExitCode
		result.ExitReason = stopped.Containers[0].Reason
	}
	return result, nil
}

// taskID extracts the task ID, the third slash-delimited segment of a task
// ARN, e.g. arn:aws:ecs:us-east-1:123456789012:task/mycluster/abcd1234
func taskID(taskARN string) string {
	parts := strings.Split(taskARN, "/")
	if len(parts) < 3 {
		return taskARN
	}
	return parts[2]
}
