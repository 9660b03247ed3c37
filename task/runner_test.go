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
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTaskARN = "arn:aws:ecs:us-east-1:123456789012:task/mycluster/abcd1234"

type fakeRunnerAPI struct {
	ecsiface.ECSAPI
	runIn       *ecs.RunTaskInput
	runOut      *ecs.RunTaskOutput
	runErr      error
	describeIns []*ecs.DescribeTasksInput
	statuses    []string
	describeOut *ecs.DescribeTasksOutput
	describeErr error
}

func (f *fakeRunnerAPI) RunTaskWithContext(ctx aws.Context, input *ecs.RunTaskInput, opts ...request.Option) (*ecs.RunTaskOutput, error) {
	f.runIn = input
	return f.runOut, f.runErr
}

func (f *fakeRunnerAPI) DescribeTasksWithContext(ctx aws.Context, input *ecs.DescribeTasksInput, opts ...request.Option) (*ecs.DescribeTasksOutput, error) {
	f.describeIns = append(f.describeIns, input)
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if len(f.statuses) > 0 {
		// Replay one scripted status per call, holding the last one
		status := f.statuses[0]
		if len(f.statuses) > 1 {
			f.statuses = f.statuses[1:]
		}
		return &ecs.DescribeTasksOutput{
			Tasks: []*ecs.Task{{
				TaskArn:    aws.String(testTaskARN),
				LastStatus: aws.String(status),
			}},
		}, nil
	}
	return f.describeOut, nil
}

func runOptions() RunOptions {
	return RunOptions{
		TaskDefinition: "arn:aws:ecs:us-east-1:123456789012:task-definition/nightly-job:1",
		LaunchType:     ecs.LaunchTypeEc2,
		StartedBy:      "52a622c6-5322-473b-9c7c-1df6a98cc68e",
	}
}

func startedTask() *ecs.RunTaskOutput {
	return &ecs.RunTaskOutput{
		Tasks: []*ecs.Task{{TaskArn: aws.String(testTaskARN)}},
	}
}

func TestRunEC2(t *testing.T) {

	api := &fakeRunnerAPI{runOut: startedTask()}
	runner := NewRunner(api, RunnerConfig{Cluster: "mycluster"})

	task, err := runner.Run(context.Background(), runOptions())
	require.Nil(t, err)
	assert.Equal(t, testTaskARN, task.ARN)
	assert.Equal(t, "abcd1234", task.ID)

	input := api.runIn
	require.NotNil(t, input)
	assert.Equal(t, "mycluster", aws.StringValue(input.Cluster))
	assert.Equal(t, "arn:aws:ecs:us-east-1:123456789012:task-definition/nightly-job:1",
		aws.StringValue(input.TaskDefinition))
	assert.Equal(t, "52a622c6-5322-473b-9c7c-1df6a98cc68e", aws.StringValue(input.StartedBy))

	// EC2 runs carry no launch type or network configuration
	assert.Nil(t, input.LaunchType)
	assert.Nil(t, input.NetworkConfiguration)
}

func TestRunFargate(t *testing.T) {

	api := &fakeRunnerAPI{runOut: startedTask()}
	runner := NewRunner(api, RunnerConfig{Cluster: "mycluster"})

	opts := runOptions()
	opts.LaunchType = ecs.LaunchTypeFargate
	opts.Subnets = []string{"subnet-aaaa", "subnet-bbbb"}
	opts.SecurityGroups = []string{"sg-cccc"}

	_, err := runner.Run(context.Background(), opts)
	require.Nil(t, err)

	input := api.runIn
	assert.Equal(t, "FARGATE", aws.StringValue(input.LaunchType))
	require.NotNil(t, input.NetworkConfiguration)
	vpcConfig := input.NetworkConfiguration.AwsvpcConfiguration
	require.NotNil(t, vpcConfig)
	assert.Equal(t, "DISABLED", aws.StringValue(vpcConfig.AssignPublicIp))
	assert.Equal(t, []string{"subnet-aaaa", "subnet-bbbb"}, aws.StringValueSlice(vpcConfig.Subnets))
	assert.Equal(t, []string{"sg-cccc"}, aws.StringValueSlice(vpcConfig.SecurityGroups))
}

func TestRunFailure(t *testing.T) {

	api := &fakeRunnerAPI{
		runOut: &ecs.RunTaskOutput{
			Failures: []*ecs.Failure{{
				Arn:    aws.String("arn:aws:ecs:us-east-1:123456789012:container-instance/xyz"),
				Reason: aws.String("RESOURCE:MEMORY"),
			}},
		},
	}
	runner := NewRunner(api, RunnerConfig{Cluster: "mycluster"})

	_, err := runner.Run(context.Background(), runOptions())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "RESOURCE:MEMORY")
}

func TestRunNoTasks(t *testing.T) {
	api := &fakeRunnerAPI{runOut: &ecs.RunTaskOutput{}}
	runner := NewRunner(api, RunnerConfig{Cluster: "mycluster"})
	_, err := runner.Run(context.Background(), runOptions())
	require.NotNil(t, err)
}

func TestWaitUntilStopped(t *testing.T) {

	api := &fakeRunnerAPI{statuses: []string{"PROVISIONING", "RUNNING", "STOPPED"}}
	runner := NewRunner(api, RunnerConfig{
		Cluster:      "mycluster",
		PollInterval: time.Millisecond,
		MaxAttempts:  10,
	})

	err := runner.WaitUntilStopped(context.Background(), &Task{ARN: testTaskARN, ID: "abcd1234"})
	require.Nil(t, err)
	assert.Len(t, api.describeIns, 3)
	assert.Equal(t, "mycluster", aws.StringValue(api.describeIns[0].Cluster))
	assert.Equal(t, []string{testTaskARN}, aws.StringValueSlice(api.describeIns[0].Tasks))
}

func TestWaitUntilStoppedExhausted(t *testing.T) {

	api := &fakeRunnerAPI{statuses: []string{"RUNNING"}}
	runner := NewRunner(api, RunnerConfig{
		Cluster:      "mycluster",
		PollInterval: time.Millisecond,
		MaxAttempts:  3,
	})

	err := runner.WaitUntilStopped(context.Background(), &Task{ARN: testTaskARN, ID: "abcd1234"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "did not stop after 3 attempts")
	assert.Len(t, api.describeIns, 3)
}

func TestWaitUntilStoppedCanceled(t *testing.T) {

	api := &fakeRunnerAPI{statuses: []string{"RUNNING"}}
	runner := NewRunner(api, RunnerConfig{
		Cluster:      "mycluster",
		PollInterval: time.Minute,
		MaxAttempts:  3,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.WaitUntilStopped(ctx, &Task{ARN: testTaskARN, ID: "abcd1234"})
	require.NotNil(t, err)
	assert.Equal(t, context.Canceled, err)
}

func TestDescribe(t *testing.T) {

	api := &fakeRunnerAPI{
		describeOut: &ecs.DescribeTasksOutput{
			Tasks: []*ecs.Task{{
				TaskArn:       aws.String(testTaskARN),
				LastStatus:    aws.String("STOPPED"),
				StoppedReason: aws.String("Essential container in task exited"),
				Containers: []*ecs.Container{{
					ExitCode: aws.Int64(2),
					Reason:   aws.String("OutOfMemoryError"),
				}},
			}},
		},
	}
	runner := NewRunner(api, RunnerConfig{Cluster: "mycluster"})

	result, err := runner.Describe(context.Background(), &Task{ARN: testTaskARN, ID: "abcd1234"})
	require.Nil(t, err)
	assert.Equal(t, int64(2), aws.Int64Value(result.ExitCode))
	assert.Equal(t, "OutOfMemoryError", aws.StringValue(result.ExitReason))
	assert.Equal(t, "Essential container in task exited", aws.StringValue(result.StoppedReason))
}

func TestResultSuccess(t *testing.T) {
	// Exactly zero means success; a missing exit code does not
	assert.True(t, (&Result{ExitCode: aws.Int64(0)}).Success())
	assert.False(t, (&Result{ExitCode: aws.Int64(1)}).Success())
	assert.False(t, (&Result{ExitCode: aws.Int64(-1)}).Success())
	assert.False(t, (&Result{}).Success())
}

func TestTaskID(t *testing.T) {
	assert.Equal(t, "abcd1234", taskID(testTaskARN))
	assert.Equal(t, "no-slashes", taskID("no-slashes"))
}
