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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		TaskName:   "nightly-job",
		FromTask:   "web-ref",
		Cluster:    "mycluster",
		Image:      "repo/img:tag",
		Command:    []string{"python", "job.py"},
		LaunchType: LaunchTypeEC2,
	}
}

func TestValidateOK(t *testing.T) {
	require.Nil(t, validConfig().Validate())
}

func TestValidateRequiredFlags(t *testing.T) {
	err := Config{LaunchType: LaunchTypeEC2}.Validate()
	require.NotNil(t, err)
	for _, flag := range []string{
		"--task-name",
		"--from-task",
		"--cluster",
		"--image",
		"--command",
	} {
		assert.Contains(t, err.Error(), flag)
	}
}

func TestValidateFargateRequiresNetwork(t *testing.T) {

	cfg := validConfig()
	cfg.LaunchType = LaunchTypeFargate
	err := cfg.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "--networks-id")
	assert.Contains(t, err.Error(), "--security-groups-id")

	// Subnets alone are not enough
	cfg.Subnets = []string{"subnet-1234"}
	require.NotNil(t, cfg.Validate())

	cfg.SecurityGroups = []string{"sg-1234"}
	require.Nil(t, cfg.Validate())
}

func TestValidateEC2WithoutNetwork(t *testing.T) {
	// EC2 tasks do not need subnets or security groups
	cfg := validConfig()
	cfg.Subnets = nil
	cfg.SecurityGroups = nil
	require.Nil(t, cfg.Validate())
}

func TestValidateLaunchType(t *testing.T) {
	cfg := validConfig()
	cfg.LaunchType = "ECS"
	err := cfg.Validate()
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Invalid launch type")
}

func TestLogGroup(t *testing.T) {
	assert.Equal(t, "/ecs/nightly-job", validConfig().LogGroup())
}

func TestEntrypointTokens(t *testing.T) {
	cfg := validConfig()

	cfg.Entrypoint = "sh -c"
	assert.Equal(t, []string{"sh", "-c"}, cfg.EntrypointTokens())

	cfg.Entrypoint = "  sh   -c  "
	assert.Equal(t, []string{"sh", "-c"}, cfg.EntrypointTokens())

	cfg.Entrypoint = ""
	assert.Len(t, cfg.EntrypointTokens(), 0)
}

func TestValidRegion(t *testing.T) {
	assert.True(t, ValidRegion("us-east-1"))
	assert.True(t, ValidRegion("eu-west-1"))
	assert.False(t, ValidRegion("us-moon-1"))
	assert.False(t, ValidRegion(""))
}
