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

import "github.com/cdglove/orbit/core/vulkan/vk"

// InstanceFunctions is the set of forwarding pointers for instance-scope
// calls. It is filled once at registration and never mutated afterwards.
type InstanceFunctions struct {
	DestroyInstance                    vk.ProcAddr
	GetInstanceProcAddr                vk.ProcAddr
	EnumerateDeviceExtensionProperties vk.ProcAddr
	GetPhysicalDeviceProperties        vk.ProcAddr
}

// DeviceFunctions is the set of forwarding pointers for device-scope calls,
// plus the capability flags derived from them. Filled once at registration,
// never mutated afterwards.
type DeviceFunctions struct {
	DestroyDevice          vk.ProcAddr
	GetDeviceProcAddr      vk.ProcAddr
	ResetCommandPool       vk.ProcAddr
	AllocateCommandBuffers vk.ProcAddr
	FreeCommandBuffers     vk.ProcAddr
	BeginCommandBuffer     vk.ProcAddr
	EndCommandBuffer       vk.ProcAddr
	ResetCommandBuffer     vk.ProcAddr
	QueueSubmit            vk.ProcAddr
	QueuePresentKHR        vk.ProcAddr
	GetDeviceQueue         vk.ProcAddr
	GetDeviceQueue2        vk.ProcAddr
	CreateQueryPool        vk.ProcAddr
	ResetQueryPoolEXT      vk.ProcAddr
	CmdWriteTimestamp      vk.ProcAddr
	GetQueryPoolResults    vk.ProcAddr

	CmdBeginDebugUtilsLabelEXT vk.ProcAddr
	CmdEndDebugUtilsLabelEXT   vk.ProcAddr
	CmdDebugMarkerBeginEXT     vk.ProcAddr
	CmdDebugMarkerEndEXT       vk.ProcAddr

	// Capability flags, computed once at registration. A feature counts as
	// supported only if both entry points of the pair resolved.
	SupportsDebugUtils  bool
	SupportsDebugMarker bool
}

func resolveInstanceFunctions(instance vk.Instance, resolve vk.ProcResolver) *InstanceFunctions {
	h := instance.Handle()
	return &InstanceFunctions{
		DestroyInstance:                    resolve(h, vk.DestroyInstance),
		GetInstanceProcAddr:                resolve(h, vk.GetInstanceProcAddr),
		EnumerateDeviceExtensionProperties: resolve(h, vk.EnumerateDeviceExtensionProperties),
		GetPhysicalDeviceProperties:        resolve(h, vk.GetPhysicalDeviceProperties),
	}
}

func resolveDeviceFunctions(device vk.Device, resolve vk.ProcResolver) *DeviceFunctions {
	h := device.Handle()
	f := &DeviceFunctions{
		DestroyDevice:          resolve(h, vk.DestroyDevice),
		GetDeviceProcAddr:      resolve(h, vk.GetDeviceProcAddr),
		ResetCommandPool:       resolve(h, vk.ResetCommandPool),
		AllocateCommandBuffers: resolve(h, vk.AllocateCommandBuffers),
		FreeCommandBuffers:     resolve(h, vk.FreeCommandBuffers),
		BeginCommandBuffer:     resolve(h, vk.BeginCommandBuffer),
		EndCommandBuffer:       resolve(h, vk.EndCommandBuffer),
		ResetCommandBuffer:     resolve(h, vk.ResetCommandBuffer),
		QueueSubmit:            resolve(h, vk.QueueSubmit),
		QueuePresentKHR:        resolve(h, vk.QueuePresentKHR),
		GetDeviceQueue:         resolve(h, vk.GetDeviceQueue),
		GetDeviceQueue2:        resolve(h, vk.GetDeviceQueue2),
		CreateQueryPool:        resolve(h, vk.CreateQueryPool),
		ResetQueryPoolEXT:      resolve(h, vk.ResetQueryPoolEXT),
		CmdWriteTimestamp:      resolve(h, vk.CmdWriteTimestamp),
		GetQueryPoolResults:    resolve(h, vk.GetQueryPoolResults),

		CmdBeginDebugUtilsLabelEXT: resolve(h, vk.CmdBeginDebugUtilsLabelEXT),
		CmdEndDebugUtilsLabelEXT:   resolve(h, vk.CmdEndDebugUtilsLabelEXT),
		CmdDebugMarkerBeginEXT:     resolve(h, vk.CmdDebugMarkerBeginEXT),
		CmdDebugMarkerEndEXT:       resolve(h, vk.CmdDebugMarkerEndEXT),
	}
	f.SupportsDebugUtils = !f.CmdBeginDebugUtilsLabelEXT.IsNull() &&
		!f.CmdEndDebugUtilsLabelEXT.IsNull()
	f.SupportsDebugMarker = !f.CmdDebugMarkerBeginEXT.IsNull() &&
		!f.CmdDebugMarkerEndEXT.IsNull()
	return f
}
