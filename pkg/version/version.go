/*
Copyright 2018 The KubeSphere Authors.

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

package version

import (
	"fmt"
	"runtime"
)

// Set by -ldflags "-X kubesphere.io/esclient/pkg/version.gitVersion=..." at build time.
var (
	gitVersion = "v0.0.0"
	buildDate  = "1970-01-01T00:00:00Z"
)

type Info struct {
	GitVersion string `json:"gitVersion"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

// Get returns the version of the running binary.
func Get() Info {
	return Info{
		GitVersion: gitVersion,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (info Info) String() string {
	return fmt.Sprintf("Version: %s\nBuildDate: %s\nGoVersion: %s\nPlatform: %s",
		info.GitVersion, info.BuildDate, info.GoVersion, info.Platform)
}

// UserAgent is sent by esctl with every request.
func UserAgent() string {
	return fmt.Sprintf("esctl/%s (%s)", gitVersion, runtime.GOOS)
}
