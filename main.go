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
package main

//go:generate mockgen -source=task/task.go -package task -destination task/task_mock.go
//go:generate mockgen -source=logs/logs.go -package logs -destination logs/logs_mock.go

import (
	"github.com/speedyrails/oneoff/cmd"
)

func main() {
	cmd.Execute()
}
