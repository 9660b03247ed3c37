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
	"fmt"
	"os"

	"github.com/speedyrails/oneoff/config"
	"github.com/spf13/viper"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}

func getRunConfig() config.Config {
	return config.Config{
		Profile:        viper.GetString("profile"),
		Region:         viper.GetString("region"),
		TaskName:       viper.GetString("task-name"),
		FromTask:       viper.GetString("from-task"),
		Cluster:        viper.GetString("cluster"),
		Image:          viper.GetString("image"),
		Entrypoint:     viper.GetString("entrypoint"),
		Command:        viper.GetStringSlice("command"),
		LaunchType:     viper.GetString("launch-type"),
		Subnets:        viper.GetStringSlice("networks-id"),
		SecurityGroups: viper.GetStringSlice("security-groups-id"),
		RetentionDays:  viper.GetInt64("retention-days"),
		PollInterval:   viper.GetDuration("poll-interval"),
		MaxAttempts:    viper.GetInt("max-attempts"),
	}
}

func fileExists(p string) bool {
	if _, err := os.Stat(p); err == nil {
		return true
	}
	return false
}
