package task

import (
	"context"
)

// Options configures the one-off task definition to register
type Options struct {
	Name       string
	FromTask   string
	Image      string
	Command    []string
	Entrypoint []string
	LaunchType string
	LogGroup   string
	LogRegion  string
	LogPrefix  string
}

// RunOptions configures a single task run
type RunOptions struct {
	TaskDefinition string
	LaunchType     string
	Subnets        []string
	SecurityGroups []string
	StartedBy      string
}

// Task that was run
type Task struct {
	ARN string `json:"arn"`
	ID  string `json:"id"`
}

// Result is a read-only view of a stopped task
type Result struct {
	ExitCode      *int64
	ExitReason    *string
	StoppedReason *string
}

// Success is true only when the container reported an exit code of exactly
// zero. A missing exit code is a failure.
func (r *Result) Success() bool {
	return r.ExitCode != nil && *r.ExitCode == 0
}

// Definitions registers one-off task definitions cloned from existing ones
type Definitions interface {

	// Clone registers a new task definition derived from the reference one
	// and returns its ARN
	Clone(ctx context.Context, opts Options) (string, error)
}

// Runner is an interface used to run tasks
type Runner interface {

	// Run submits the task to the cluster
	Run(ctx context.Context, opts RunOptions) (*Task, error)

	// WaitUntilStopped blocks until the task reaches a stopped state
	WaitUntilStopped(ctx context.Context, t *Task) error

	// Describe reads the final state of a stopped task
	Describe(ctx context.Context, t *Task) (*Result, error)
}
