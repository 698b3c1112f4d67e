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
	"github.com/cdglove/orbit/core/app/crash"
	"github.com/cdglove/orbit/core/vulkan/vk"
)

// ViolationHandler is invoked with the protocol violation that made a Strict
// accessor fail. It is expected not to return; if it does, the accessor
// returns the zero value.
type ViolationHandler func(err error)

// CrashOnViolation is the production ViolationHandler: it logs the violation
// at critical and takes the process down through the crash package.
func CrashOnViolation(err error) {
	log.Criticalf("dispatch protocol violation: %v", err)
	crash.Crash(err)
}

// Strict wraps a Table with the termination policy the hook functions want
// in production: accessors return bare values and any protocol violation is
// routed to the handler instead of an error return.
//
// The invariant checks live in Table; Strict only decides what a failed
// check does. Tests exercise Table directly or install a recording handler.
type Strict struct {
	table     *Table
	violation ViolationHandler
}

// NewStrict returns a Strict view over table. A nil handler selects
// CrashOnViolation.
func NewStrict(table *Table, handler ViolationHandler) Strict {
	if handler == nil {
		handler = CrashOnViolation
	}
	return Strict{table: table, violation: handler}
}

// Table returns the underlying registry, for registration calls and
// diagnostics.
func (s Strict) Table() *Table { return s.table }

func (s Strict) pfn(p vk.ProcAddr, err error) vk.ProcAddr {
	if err != nil {
		s.violation(err)
		return 0
	}
	return p
}

func (s Strict) flag(b bool, err error) bool {
	if err != nil {
		s.violation(err)
		return false
	}
	return b
}

func (s Strict) DestroyInstance(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.DestroyInstance(d))
}

func (s Strict) GetInstanceProcAddr(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetInstanceProcAddr(d))
}

func (s Strict) EnumerateDeviceExtensionProperties(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.EnumerateDeviceExtensionProperties(d))
}

func (s Strict) GetPhysicalDeviceProperties(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetPhysicalDeviceProperties(d))
}

func (s Strict) DestroyDevice(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.DestroyDevice(d))
}

func (s Strict) GetDeviceProcAddr(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetDeviceProcAddr(d))
}

func (s Strict) ResetCommandPool(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.ResetCommandPool(d))
}

func (s Strict) AllocateCommandBuffers(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.AllocateCommandBuffers(d))
}

func (s Strict) FreeCommandBuffers(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.FreeCommandBuffers(d))
}

func (s Strict) BeginCommandBuffer(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.BeginCommandBuffer(d))
}

func (s Strict) EndCommandBuffer(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.EndCommandBuffer(d))
}

func (s Strict) ResetCommandBuffer(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.ResetCommandBuffer(d))
}

func (s Strict) QueueSubmit(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.QueueSubmit(d))
}

func (s Strict) QueuePresentKHR(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.QueuePresentKHR(d))
}

func (s Strict) GetDeviceQueue(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetDeviceQueue(d))
}

func (s Strict) GetDeviceQueue2(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetDeviceQueue2(d))
}

func (s Strict) CreateQueryPool(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CreateQueryPool(d))
}

func (s Strict) ResetQueryPoolEXT(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.ResetQueryPoolEXT(d))
}

func (s Strict) CmdWriteTimestamp(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CmdWriteTimestamp(d))
}

func (s Strict) GetQueryPoolResults(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.GetQueryPoolResults(d))
}

func (s Strict) CmdBeginDebugUtilsLabelEXT(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CmdBeginDebugUtilsLabelEXT(d))
}

func (s Strict) CmdEndDebugUtilsLabelEXT(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CmdEndDebugUtilsLabelEXT(d))
}

func (s Strict) CmdDebugMarkerBeginEXT(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CmdDebugMarkerBeginEXT(d))
}

func (s Strict) CmdDebugMarkerEndEXT(d vk.Dispatchable) vk.ProcAddr {
	return s.pfn(s.table.CmdDebugMarkerEndEXT(d))
}

func (s Strict) IsDebugUtilsExtensionSupported(d vk.Dispatchable) bool {
	return s.flag(s.table.IsDebugUtilsExtensionSupported(d))
}

func (s Strict) IsDebugMarkerExtensionSupported(d vk.Dispatchable) bool {
	return s.flag(s.table.IsDebugMarkerExtensionSupported(d))
}
