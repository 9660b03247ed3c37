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

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ecs"
	"github.com/aws/aws-sdk-go/service/ecs/ecsiface"
	"github.com/sirupsen/logrus"
)

// Fixed resource settings for one-off task containers. Fargate tasks
// additionally carry task-level cpu/memory as required by the service.
const (
	containerCPU        = 128
	containerMemory     = 400
	containerMemoryResv = 300
	fargateTaskCPU      = "256"
	fargateTaskMemory   = "512"
)

type ecsDefinitions struct {
	api ecsiface.ECSAPI
}

// NewDefinitions returns a Definitions backed by ECS
func NewDefinitions(api ecsiface.ECSAPI) Definitions {
	return &ecsDefinitions{api: api}
}

// Clone fetches the latest active revision of the reference task definition
// and registers a new single-container definition derived from it
func (d *ecsDefinitions) Clone(ctx context.Context, opts Options) (string, error) {

	ref, err := d.api.DescribeTaskDefinitionWithContext(ctx, &ecs.DescribeTaskDefinitionInput{
		TaskDefinition: aws.String(opts.FromTask),
	})
	if err != nil {
		return "", fmt.Errorf("Failed to describe task definition %s: %s", opts.FromTask, err)
	}

	resp, err := d.api.RegisterTaskDefinitionWithContext(ctx,
		newDefinitionInput(opts, ref.TaskDefinition))
	if err != nil {
		return "", fmt.Errorf("Failed to register task definition %s: %s", opts.Name, err)
	}

	arn := aws.StringValue(resp.TaskDefinition.TaskDefinitionArn)
	logrus.WithFields(logrus.Fields{
		"family": opts.Name,
		"arn":    arn,
	}).Debug("Registered task definition")
	return arn, nil
}

// newDefinitionInput assembles the registration request for the one-off
// task. The request is built from scratch, so server-assigned fields on the
// reference (ARN, revision, status, compatibilities, registration metadata)
// are never resubmitted.
func newDefinitionInput(opts Options, ref *ecs.TaskDefinition) *ecs.RegisterTaskDefinitionInput {

	container := &ecs.ContainerDefinition{
		Name:              aws.String(opts.Name),
		Image:             aws.String(opts.Image),
		Command:           aws.StringSlice(opts.Command),
		Cpu:               aws.Int64(containerCPU),
		Memory:            aws.Int64(containerMemory),
		MemoryReservation: aws.Int64(containerMemoryResv),
		PortMappings:      []*ecs.PortMapping{},
		VolumesFrom:       []*ecs.VolumeFrom{},
		LogConfiguration: &ecs.LogConfiguration{
			LogDriver: aws.String(ecs.LogDriverAwslogs),
			Options: map[string]*string{
				"awslogs-group":         aws.String(opts.LogGroup),
				"awslogs-region":        aws.String(opts.LogRegion),
				"awslogs-stream-prefix": aws.String(opts.LogPrefix),
			},
		},
	}

	if len(opts.Entrypoint) > 0 {
		container.EntryPoint = aws.StringSlice(opts.Entrypoint)
	}

	input := &ecs.RegisterTaskDefinitionInput{
		Family:               aws.String(opts.Name),
		ContainerDefinitions: []*ecs.ContainerDefinition{container},
	}

	if opts.LaunchType == ecs.LaunchTypeFargate {
		input.NetworkMode = aws.String(ecs.NetworkModeAwsvpc)
		input.RequiresCompatibilities = aws.StringSlice([]string{ecs.CompatibilityFargate})
		input.Cpu = aws.String(fargateTaskCPU)
		input.Memory = aws.String(fargateTaskMemory)
	}

	if ref == nil {
		return input
	}

	// Carry the execution role and the first container's secrets,
	// environment files and environment variables forward from the
	// reference definition, each only when present
	if ref.ExecutionRoleArn != nil {
		input.ExecutionRoleArn = ref.ExecutionRoleArn
	}
	if len(ref.ContainerDefinitions) > 0 {
		refContainer := ref.ContainerDefinitions[0]
		if len(refContainer.Secrets) > 0 {
			container.Secrets = refContainer.Secrets
		}
		if len(refContainer.EnvironmentFiles) > 0 {
			container.EnvironmentFiles = refContainer.EnvironmentFiles
		}
		if len(refContainer.Environment) > 0 {
			container.Environment = refContainer.Environment
		}
	}

	return input
}
