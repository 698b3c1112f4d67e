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

package vk

// Entry-point names resolved by the layer, spelled exactly as the loader
// expects them.
const (
	// Instance scope.
	DestroyInstance                    = "vkDestroyInstance"
	GetInstanceProcAddr                = "vkGetInstanceProcAddr"
	EnumerateDeviceExtensionProperties = "vkEnumerateDeviceExtensionProperties"
	GetPhysicalDeviceProperties        = "vkGetPhysicalDeviceProperties"

	// Device scope.
	DestroyDevice          = "vkDestroyDevice"
	GetDeviceProcAddr      = "vkGetDeviceProcAddr"
	ResetCommandPool       = "vkResetCommandPool"
	AllocateCommandBuffers = "vkAllocateCommandBuffers"
	FreeCommandBuffers     = "vkFreeCommandBuffers"
	BeginCommandBuffer     = "vkBeginCommandBuffer"
	EndCommandBuffer       = "vkEndCommandBuffer"
	ResetCommandBuffer     = "vkResetCommandBuffer"
	QueueSubmit            = "vkQueueSubmit"
	QueuePresentKHR        = "vkQueuePresentKHR"
	GetDeviceQueue         = "vkGetDeviceQueue"
	GetDeviceQueue2        = "vkGetDeviceQueue2"
	CreateQueryPool        = "vkCreateQueryPool"
	ResetQueryPoolEXT      = "vkResetQueryPoolEXT"
	CmdWriteTimestamp      = "vkCmdWriteTimestamp"
	GetQueryPoolResults    = "vkGetQueryPoolResults"

	// Debug annotation extensions.
	CmdBeginDebugUtilsLabelEXT = "vkCmdBeginDebugUtilsLabelEXT"
	CmdEndDebugUtilsLabelEXT   = "vkCmdEndDebugUtilsLabelEXT"
	CmdDebugMarkerBeginEXT     = "vkCmdDebugMarkerBeginEXT"
	CmdDebugMarkerEndEXT       = "vkCmdDebugMarkerEndEXT"
)
