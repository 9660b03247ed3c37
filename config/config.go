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
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Launch types supported for one-off tasks
const (
	LaunchTypeEC2     = "EC2"
	LaunchTypeFargate = "FARGATE"
)

// LogStreamPrefix is the awslogs stream prefix used for all one-off tasks
const LogStreamPrefix = "ecs"

// Config carries the settings for a single one-off task run. It is built
// once from the command line and not modified afterwards.
type Config struct {
	Profile        string
	Region         string
	TaskName       string
	FromTask       string
	Cluster        string
	Image          string
	Entrypoint     string
	Command        []string
	LaunchType     string
	Subnets        []string
	SecurityGroups []string
	RetentionDays  int64
	PollInterval   time.Duration
	MaxAttempts    int
}

// Validate checks that the configuration is complete enough to run a task.
// All problems found are reported together. No remote calls are made.
func (c Config) Validate() error {

	var result *multierror.Error

	if c.TaskName == "" {
		result = multierror.Append(result, errors.New("The --task-name flag is required"))
	}
	if c.FromTask == "" {
		result = multierror.Append(result, errors.New("The --from-task flag is required"))
	}
	if c.Cluster == "" {
		result = multierror.Append(result, errors.New("The --cluster flag is required"))
	}
	if c.Image == "" {
		result = multierror.Append(result, errors.New("The --image flag is required"))
	}
	if len(c.Command) == 0 {
		result = multierror.Append(result, errors.New("The --command flag is required"))
	}

	switch c.LaunchType {
	case LaunchTypeEC2:
	case LaunchTypeFargate:
		if len(c.Subnets) == 0 || len(c.SecurityGroups) == 0 {
			result = multierror.Append(result, errors.New(
				"For launch type 'FARGATE' the network configuration must be provided "+
					"using the --networks-id and --security-groups-id flags"))
		}
	default:
		result = multierror.Append(result,
			fmt.Errorf("Invalid launch type: %s (expected EC2 or FARGATE)", c.LaunchType))
	}

	return result.ErrorOrNil()
}

// LogGroup returns the CloudWatch Log Group that stores the container logs
func (c Config) LogGroup() string {
	return fmt.Sprintf("/ecs/%s", c.TaskName)
}

// EntrypointTokens splits the entrypoint string on whitespace, so that
// "sh -c" becomes ["sh", "-c"]
func (c Config) EntrypointTokens() []string {
	return strings.Fields(c.Entrypoint)
}
