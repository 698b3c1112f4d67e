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

// Package vk holds the small vocabulary of Vulkan types the layer needs to
// talk about the driver: dispatchable handles, raw entry-point addresses and
// the resolver capability supplied by the loader chain.
//
// It deliberately contains no bindings to a Vulkan implementation. The layer
// never calls through these addresses itself, it only stores and forwards
// them.
package vk

// Handle is the raw value of a dispatchable Vulkan handle.
//
// Dispatchable handles are pointers into loader-owned memory; the loader
// writes its dispatch key into the first pointer-sized word of the object a
// handle refers to.
type Handle uintptr

// ProcAddr is the address of a driver entry point, as returned by the
// loader's resolution chain. The zero value means the driver does not provide
// the entry point.
type ProcAddr uintptr

// IsNull returns true if the address does not refer to an entry point.
func (p ProcAddr) IsNull() bool { return p == 0 }

// ProcResolver resolves an entry-point name to its address for the given
// dispatchable object. It returns 0 if the entry point is unavailable.
// Resolvers are sourced from the next vkGet*ProcAddr in the dispatch chain.
type ProcResolver func(handle Handle, name string) ProcAddr

// Dispatchable is implemented by every handle type that begins with a loader
// dispatch key, i.e. every handle the registry can derive an identity from.
type Dispatchable interface {
	Handle() Handle
}

// Instance is a VkInstance handle.
type Instance Handle

// Device is a VkDevice handle.
type Device Handle

// PhysicalDevice is a VkPhysicalDevice handle.
type PhysicalDevice Handle

// Queue is a VkQueue handle.
type Queue Handle

// CommandBuffer is a VkCommandBuffer handle.
type CommandBuffer Handle

func (i Instance) Handle() Handle       { return Handle(i) }
func (d Device) Handle() Handle         { return Handle(d) }
func (p PhysicalDevice) Handle() Handle { return Handle(p) }
func (q Queue) Handle() Handle          { return Handle(q) }
func (c CommandBuffer) Handle() Handle  { return Handle(c) }
