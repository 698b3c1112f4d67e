// Copyright (C) 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package crash reports unrecoverable faults in the layer to registered
// reporters before the process is taken down.
//
// crash does not offer any sort of recovery mechanism: the layer lives
// inside an application whose graphics state it can no longer vouch for once
// an invariant is broken.
package crash

import (
	"runtime/debug"
	"sync"

	"github.com/cdglove/orbit/core/fault"
)

var (
	mutex     sync.RWMutex
	reporters []Reporter
)

// Reporter is a function that is handed an unrecoverable fault together with
// the stack of the crashing goroutine.
type Reporter func(err error, stack []byte)

// Register adds r to the list of functions notified when the layer hits an
// unrecoverable fault.
func Register(r Reporter) {
	mutex.Lock()
	defer mutex.Unlock()
	reporters = append(reporters, r)
}

var crashOnce sync.Once

// Crash invokes each of the registered reporters with e, then panics with e.
// Reporters run at most once per process even if the panic is itself caught
// and re-raised as another Crash.
func Crash(e interface{}) {
	stack := debug.Stack()
	crashOnce.Do(func() {
		mutex.RLock()
		defer mutex.RUnlock()
		err := fault.From(e)
		for _, r := range reporters {
			r(err, stack)
		}
	})
	panic(e)
}
