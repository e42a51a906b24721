/*
Copyright 2023 The KubeSphere Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config saves configuration for esctl.
// Configuration is read from a yaml file named esclient.yaml, e.g.
//
//	elasticsearch:
//	  host: http://elasticsearch-logging-data.kubesphere-logging-system.svc:9200
//	  transport: elasticsearch
//	  timeout: 30s
//	  urlParams:
//	    pretty: "true"
//
// The file is searched in /etc/esclient and the working directory.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"kubesphere.io/esclient/pkg/simple/client/es"
)

const (
	// DefaultConfigurationName is the default name of configuration
	defaultConfigurationName = "esclient"

	// DefaultConfigurationPath the default location of the configuration file
	defaultConfigurationPath = "/etc/esclient"
)

// Config defines everything needed for esctl to deal with external services
type Config struct {
	ElasticsearchOptions *es.Options `json:"elasticsearch,omitempty" yaml:"elasticsearch,omitempty" mapstructure:"elasticsearch"`
}

// New config creates a default non-empty Config
func New() *Config {
	return &Config{
		ElasticsearchOptions: es.NewElasticsearchOptions(),
	}
}

// TryLoadFromDisk loads configuration from default location after server startup
// return nil error if configuration file not exists
func TryLoadFromDisk() (*Config, error) {
	v := viper.New()
	v.SetConfigName(defaultConfigurationName)
	v.AddConfigPath(defaultConfigurationPath)

	// Load from current working directory, only used for debugging
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, err
		} else {
			return nil, fmt.Errorf("error parsing configuration file %s", err)
		}
	}

	conf := New()

	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate validates every non-empty option set.
func (conf *Config) Validate() []error {
	var errs []error
	if conf.ElasticsearchOptions != nil {
		errs = append(errs, conf.ElasticsearchOptions.Validate()...)
	}
	return errs
}
