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

package options

import (
	"flag"
	"strings"

	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"

	"kubesphere.io/esclient/pkg/config"
	"kubesphere.io/esclient/pkg/simple/client/es"
	"kubesphere.io/esclient/pkg/version"
)

type EsctlOptions struct {
	*config.Config
}

func NewEsctlOptions() *EsctlOptions {
	return &EsctlOptions{
		Config: config.New(),
	}
}

func (s *EsctlOptions) Flags() (fss cliflag.NamedFlagSets) {
	s.ElasticsearchOptions.AddFlags(fss.FlagSet("elasticsearch"), s.ElasticsearchOptions)

	fs := fss.FlagSet("klog")
	local := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(local)
	local.VisitAll(func(fl *flag.Flag) {
		fl.Name = strings.Replace(fl.Name, "_", "-", -1)
		fs.AddGoFlag(fl)
	})

	return fss
}

// Validate validates esctl options
func (s *EsctlOptions) Validate() []error {
	return s.Config.Validate()
}

// NewClient creates the client and the base request params described by the options.
func (s *EsctlOptions) NewClient() (*es.Client, *es.RequestParams, error) {
	c, params, err := es.NewClientFromOptions(s.ElasticsearchOptions)
	if err != nil {
		return nil, nil, err
	}
	// header names from flags and the config file are not canonical
	if params.Headers().Get("User-Agent") == "" {
		params = params.Header("User-Agent", version.UserAgent())
	}
	return c, params, nil
}
