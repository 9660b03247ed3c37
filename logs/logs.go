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
package logs

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go/service/cloudwatchlogs/cloudwatchlogsiface"
)

// DefaultRetentionDays is how long task logs are kept by default
const DefaultRetentionDays = 7

// Service manages the CloudWatch log destination for one-off tasks
type Service interface {

	// EnsureGroup creates the log group if it does not already exist
	EnsureGroup(ctx context.Context, group string) error

	// Output returns the log lines written by the task's container
	Output(ctx context.Context, group, taskARN string) ([]string, error)
}

type cwLogs struct {
	api           cloudwatchlogsiface.CloudWatchLogsAPI
	retentionDays int64
}

// NewCloudWatch returns a Service backed by CloudWatch Logs
func NewCloudWatch(api cloudwatchlogsiface.CloudWatchLogsAPI, retentionDays int64) Service {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	return &cwLogs{api: api, retentionDays: retentionDays}
}

// EnsureGroup creates the log group and sets its retention policy. A group
// that already exists is left untouched.
func (l *cwLogs) EnsureGroup(ctx context.Context, group string) error {

	_, err := l.api.CreateLogGroupWithContext(ctx, &cloudwatchlogs.CreateLogGroupInput{
		LogGroupName: aws.String(group),
	})
	if err != nil {
		if isAlreadyExists(err) {
			return nil
		}
		return fmt.Errorf("Failed to create log group %s: %s", group, err)
	}

	_, err = l.api.PutRetentionPolicyWithContext(ctx, &cloudwatchlogs.PutRetentionPolicyInput{
		LogGroupName:    aws.String(group),
		RetentionInDays: aws.Int64(l.retentionDays),
	})
	if err != nil {
		return fmt.Errorf("Failed to set retention policy on %s: %s", group, err)
	}
	return nil
}

// Output fetches the most recent events from the task's log stream. A
// missing stream means the container produced no output.
func (l *cwLogs) Output(ctx context.Context, group, taskARN string) ([]string, error) {

	stream, err := StreamName(group, taskARN)
	if err != nil {
		return nil, err
	}

	resp, err := l.api.GetLogEventsWithContext(ctx, &cloudwatchlogs.GetLogEventsInput{
		LogGroupName:  aws.String(group),
		LogStreamName: aws.String(stream),
		StartFromHead: aws.Bool(false),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("Failed to get log events from %s: %s", stream, err)
	}

	var lines []string
	for _, event := range resp.Events {
		lines = append(lines, aws.StringValue(event.Message))
	}
	return lines, nil
}

// StreamName derives the log stream name for a task. The awslogs driver
// writes to <prefix>/<container>/<task-id>, which for one-off tasks equals
// the group path without its leading slash followed by the task ID, the
// third slash-delimited segment of the task ARN.
func StreamName(group, taskARN string) (string, error) {
	parts := strings.Split(taskARN, "/")
	if len(parts) < 3 {
		return "", fmt.Errorf("Unexpected task ARN format: %s", taskARN)
	}
	return strings.TrimLeft(group, "/") + "/" + parts[2], nil
}

func isAlreadyExists(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == cloudwatchlogs.ErrCodeResourceAlreadyExistsException
	}
	return false
}

func isNotFound(err error) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == cloudwatchlogs.ErrCodeResourceNotFoundException
	}
	return false
}
