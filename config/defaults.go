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
	"io/ioutil"

	"github.com/go-yaml/yaml"
)

// Defaults carries optional settings read from a YAML file in the home
// directory, so that common cluster parameters do not need to be repeated
// on every invocation
type Defaults struct {
	Profile        string   `yaml:"profile"`
	Region         string   `yaml:"region"`
	Cluster        string   `yaml:"cluster"`
	Subnets        []string `yaml:"subnets"`
	SecurityGroups []string `yaml:"security_groups"`
}

// LoadDefaults reads cluster defaults from the given YAML file
func LoadDefaults(path string) (*Defaults, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ApplyDefaults fills in unset fields on the Config from the Defaults.
// Values given on the command line always win.
func (c *Config) ApplyDefaults(d *Defaults) {
	if c.Profile == "" {
		c.Profile = d.Profile
	}
	if c.Region == "" {
		c.Region = d.Region
	}
	if c.Cluster == "" {
		c.Cluster = d.Cluster
	}
	if len(c.Subnets) == 0 {
		c.Subnets = d.Subnets
	}
	if len(c.SecurityGroups) == 0 {
		c.SecurityGroups = d.SecurityGroups
	}
}
