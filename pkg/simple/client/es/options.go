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

package es

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// Options contains the connection settings of an Elasticsearch node
type Options struct {
	Host               string            `json:"host" yaml:"host"`
	Transport          string            `json:"transport,omitempty" yaml:"transport"`
	Timeout            time.Duration     `json:"timeout,omitempty" yaml:"timeout"`
	InsecureSkipVerify bool              `json:"insecureSkipVerify,omitempty" yaml:"insecureSkipVerify"`
	URLParams          map[string]string `json:"urlParams,omitempty" yaml:"urlParams,omitempty"`
	Headers            map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// NewElasticsearchOptions creates a default Elasticsearch Option
func NewElasticsearchOptions() *Options {
	return &Options{
		Host:      DefaultBaseURL,
		Transport: TransportHTTP,
		Timeout:   30 * time.Second,
	}
}

// Validate check options values
func (s *Options) Validate() []error {
	var errs []error

	if !govalidator.IsRequestURL(s.Host) {
		errs = append(errs, fmt.Errorf("elasticsearch host %q is not a valid url", s.Host))
	}

	switch s.Transport {
	case TransportHTTP, TransportElasticsearch, TransportOpensearch:
	default:
		errs = append(errs, fmt.Errorf("unsupported transport %q, must be one of %s, %s, %s",
			s.Transport, TransportHTTP, TransportElasticsearch, TransportOpensearch))
	}

	if s.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must not be negative, got %s", s.Timeout))
	}

	return errs
}

// ApplyTo overrides options if it's valid, which host is not empty
func (s *Options) ApplyTo(options *Options) {
	if s.Host == "" {
		return
	}
	if err := mergo.Merge(options, s, mergo.WithOverride); err != nil {
		klog.Errorf("failed to apply elasticsearch options: %v", err)
	}
}

// AddFlags add options flags to command line flags
func (s *Options) AddFlags(fs *pflag.FlagSet, c *Options) {
	fs.StringVar(&s.Host, "elasticsearch-host", c.Host, ""+
		"Base url of the Elasticsearch node, e.g. http://localhost:9200.")

	fs.StringVar(&s.Transport, "transport", c.Transport, ""+
		"Transport used to send requests, one of http, elasticsearch or opensearch. "+
		"The elasticsearch and opensearch transports use the official clients.")

	fs.DurationVar(&s.Timeout, "timeout", c.Timeout, ""+
		"Request timeout, 0 means no timeout.")

	fs.BoolVar(&s.InsecureSkipVerify, "insecure-skip-verify", c.InsecureSkipVerify, ""+
		"Skip verification of the server's TLS certificate.")

	fs.StringToStringVar(&s.URLParams, "url-param", c.URLParams, ""+
		"Url query parameters sent with every request, e.g. pretty=true.")

	fs.StringToStringVar(&s.Headers, "header", c.Headers, ""+
		"Headers sent with every request, e.g. X-Opaque-Id=esctl.")
}

// RequestParams creates the request params described by the options.
func (s *Options) RequestParams() *RequestParams {
	params := NewRequestParams(s.Host)
	for k, v := range s.URLParams {
		params = params.URLParam(k, v)
	}
	for k, v := range s.Headers {
		params = params.Header(k, v)
	}
	return params
}

// NewClientFromOptions creates a client using the transport selected by the options,
// along with the request params to use with it.
func NewClientFromOptions(s *Options) (*Client, *RequestParams, error) {
	transport, err := NewTransport(s)
	if err != nil {
		return nil, nil, err
	}
	return NewClient(transport), s.RequestParams(), nil
}
