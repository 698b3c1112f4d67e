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

package dispatch

import (
	"unsafe"

	"github.com/cdglove/orbit/core/vulkan/vk"
)

// Key identifies the instance or device a dispatchable handle belongs to.
// Handles of different dispatchable objects created from the same device
// (command buffers, queues) map to the same Key. A Key may be reused by the
// driver for an unrelated object once its record has been unregistered.
type Key uintptr

// KeyFunc derives the Key for a dispatchable handle. The production extractor
// is LoaderKey; tests supply their own.
type KeyFunc func(h vk.Handle) Key

// LoaderKey extracts the loader's dispatch key from a dispatchable handle.
//
// Every dispatchable Vulkan object starts with a pointer to the loader's
// internal dispatch table, and that pointer is shared between an instance or
// device and all dispatchable objects created from it. Reading it gives a
// stable identity without any handle-to-record bookkeeping of our own.
func LoaderKey(h vk.Handle) Key {
	return *(*Key)(unsafe.Pointer(uintptr(h)))
}
