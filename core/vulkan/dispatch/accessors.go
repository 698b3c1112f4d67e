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

// One accessor per forwarding pointer, named after its Vulkan entry point.
// Each takes any dispatchable object belonging to the instance or device and
// returns the recorded address. A missing record or a null address is a
// protocol violation.

// DestroyInstance returns the forwarding pointer for vkDestroyInstance.
func (t *Table) DestroyInstance(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.instanceProc(d, vk.DestroyInstance,
		func(f *InstanceFunctions) vk.ProcAddr { return f.DestroyInstance })
}

// GetInstanceProcAddr returns the forwarding pointer for vkGetInstanceProcAddr.
func (t *Table) GetInstanceProcAddr(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.instanceProc(d, vk.GetInstanceProcAddr,
		func(f *InstanceFunctions) vk.ProcAddr { return f.GetInstanceProcAddr })
}

// EnumerateDeviceExtensionProperties returns the forwarding pointer for
// vkEnumerateDeviceExtensionProperties.
func (t *Table) EnumerateDeviceExtensionProperties(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.instanceProc(d, vk.EnumerateDeviceExtensionProperties,
		func(f *InstanceFunctions) vk.ProcAddr { return f.EnumerateDeviceExtensionProperties })
}

// GetPhysicalDeviceProperties returns the forwarding pointer for
// vkGetPhysicalDeviceProperties.
func (t *Table) GetPhysicalDeviceProperties(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.instanceProc(d, vk.GetPhysicalDeviceProperties,
		func(f *InstanceFunctions) vk.ProcAddr { return f.GetPhysicalDeviceProperties })
}

// DestroyDevice returns the forwarding pointer for vkDestroyDevice.
func (t *Table) DestroyDevice(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.DestroyDevice,
		func(f *DeviceFunctions) vk.ProcAddr { return f.DestroyDevice })
}

// GetDeviceProcAddr returns the forwarding pointer for vkGetDeviceProcAddr.
func (t *Table) GetDeviceProcAddr(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.GetDeviceProcAddr,
		func(f *DeviceFunctions) vk.ProcAddr { return f.GetDeviceProcAddr })
}

// ResetCommandPool returns the forwarding pointer for vkResetCommandPool.
func (t *Table) ResetCommandPool(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.ResetCommandPool,
		func(f *DeviceFunctions) vk.ProcAddr { return f.ResetCommandPool })
}

// AllocateCommandBuffers returns the forwarding pointer for
// vkAllocateCommandBuffers.
func (t *Table) AllocateCommandBuffers(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.AllocateCommandBuffers,
		func(f *DeviceFunctions) vk.ProcAddr { return f.AllocateCommandBuffers })
}

// FreeCommandBuffers returns the forwarding pointer for vkFreeCommandBuffers.
func (t *Table) FreeCommandBuffers(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.FreeCommandBuffers,
		func(f *DeviceFunctions) vk.ProcAddr { return f.FreeCommandBuffers })
}

// BeginCommandBuffer returns the forwarding pointer for vkBeginCommandBuffer.
func (t *Table) BeginCommandBuffer(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.BeginCommandBuffer,
		func(f *DeviceFunctions) vk.ProcAddr { return f.BeginCommandBuffer })
}

// EndCommandBuffer returns the forwarding pointer for vkEndCommandBuffer.
func (t *Table) EndCommandBuffer(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.EndCommandBuffer,
		func(f *DeviceFunctions) vk.ProcAddr { return f.EndCommandBuffer })
}

// ResetCommandBuffer returns the forwarding pointer for vkResetCommandBuffer.
func (t *Table) ResetCommandBuffer(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.ResetCommandBuffer,
		func(f *DeviceFunctions) vk.ProcAddr { return f.ResetCommandBuffer })
}

// QueueSubmit returns the forwarding pointer for vkQueueSubmit.
func (t *Table) QueueSubmit(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.QueueSubmit,
		func(f *DeviceFunctions) vk.ProcAddr { return f.QueueSubmit })
}

// QueuePresentKHR returns the forwarding pointer for vkQueuePresentKHR.
func (t *Table) QueuePresentKHR(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.QueuePresentKHR,
		func(f *DeviceFunctions) vk.ProcAddr { return f.QueuePresentKHR })
}

// GetDeviceQueue returns the forwarding pointer for vkGetDeviceQueue.
func (t *Table) GetDeviceQueue(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.GetDeviceQueue,
		func(f *DeviceFunctions) vk.ProcAddr { return f.GetDeviceQueue })
}

// GetDeviceQueue2 returns the forwarding pointer for vkGetDeviceQueue2.
func (t *Table) GetDeviceQueue2(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.GetDeviceQueue2,
		func(f *DeviceFunctions) vk.ProcAddr { return f.GetDeviceQueue2 })
}

// CreateQueryPool returns the forwarding pointer for vkCreateQueryPool.
func (t *Table) CreateQueryPool(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CreateQueryPool,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CreateQueryPool })
}

// ResetQueryPoolEXT returns the forwarding pointer for vkResetQueryPoolEXT.
func (t *Table) ResetQueryPoolEXT(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.ResetQueryPoolEXT,
		func(f *DeviceFunctions) vk.ProcAddr { return f.ResetQueryPoolEXT })
}

// CmdWriteTimestamp returns the forwarding pointer for vkCmdWriteTimestamp.
func (t *Table) CmdWriteTimestamp(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CmdWriteTimestamp,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CmdWriteTimestamp })
}

// GetQueryPoolResults returns the forwarding pointer for vkGetQueryPoolResults.
func (t *Table) GetQueryPoolResults(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.GetQueryPoolResults,
		func(f *DeviceFunctions) vk.ProcAddr { return f.GetQueryPoolResults })
}

// CmdBeginDebugUtilsLabelEXT returns the forwarding pointer for
// vkCmdBeginDebugUtilsLabelEXT.
func (t *Table) CmdBeginDebugUtilsLabelEXT(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CmdBeginDebugUtilsLabelEXT,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CmdBeginDebugUtilsLabelEXT })
}

// CmdEndDebugUtilsLabelEXT returns the forwarding pointer for
// vkCmdEndDebugUtilsLabelEXT.
func (t *Table) CmdEndDebugUtilsLabelEXT(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CmdEndDebugUtilsLabelEXT,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CmdEndDebugUtilsLabelEXT })
}

// CmdDebugMarkerBeginEXT returns the forwarding pointer for
// vkCmdDebugMarkerBeginEXT.
func (t *Table) CmdDebugMarkerBeginEXT(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CmdDebugMarkerBeginEXT,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CmdDebugMarkerBeginEXT })
}

// CmdDebugMarkerEndEXT returns the forwarding pointer for
// vkCmdDebugMarkerEndEXT.
func (t *Table) CmdDebugMarkerEndEXT(d vk.Dispatchable) (vk.ProcAddr, error) {
	return t.deviceProc(d, vk.CmdDebugMarkerEndEXT,
		func(f *DeviceFunctions) vk.ProcAddr { return f.CmdDebugMarkerEndEXT })
}

// IsDebugUtilsExtensionSupported reports whether both VK_EXT_debug_utils
// label entry points resolved for the device owning d.
func (t *Table) IsDebugUtilsExtensionSupported(d vk.Dispatchable) (bool, error) {
	return t.deviceFlag(d, "debug utils support",
		func(f *DeviceFunctions) bool { return f.SupportsDebugUtils })
}

// IsDebugMarkerExtensionSupported reports whether both VK_EXT_debug_marker
// entry points resolved for the device owning d.
func (t *Table) IsDebugMarkerExtensionSupported(d vk.Dispatchable) (bool, error) {
	return t.deviceFlag(d, "debug marker support",
		func(f *DeviceFunctions) bool { return f.SupportsDebugMarker })
}
