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
	"context"
	"io"
	"net/http"
	"sync"
)

// Future is the pending result of ElasticReqAsync.
type Future struct {
	done    chan struct{}
	res     *http.Response
	err     error
	abandon sync.Once
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(res *http.Response, err error) {
	f.res = res
	f.err = err
	close(f.done)
}

// Done is closed once the response or error is available.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the request completes. It may be called any number of times.
func (f *Future) Wait() (*http.Response, error) {
	<-f.done
	return f.res, f.err
}

// WaitContext is like Wait but gives up when ctx is done. The request itself
// is bound to the context passed to ElasticReqAsync, not to ctx.
//
// Once WaitContext gives up, the response body is drained and closed as soon
// as it arrives. A later Wait still returns the response, with its body closed.
func (f *Future) WaitContext(ctx context.Context) (*http.Response, error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		f.abandon.Do(func() {
			go f.discard()
		})
		return nil, ctx.Err()
	}
}

func (f *Future) discard() {
	<-f.done
	if f.res != nil && f.res.Body != nil {
		io.Copy(io.Discard, f.res.Body)
		f.res.Body.Close()
	}
}
