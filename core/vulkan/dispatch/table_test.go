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

package dispatch_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdglove/orbit/core/vulkan/dispatch"
	"github.com/cdglove/orbit/core/vulkan/vk"
)

// testKey treats the low byte of a handle as a sub-object discriminator, so
// a "device" 0xD100 and a "command buffer" 0xD101 share an identity, the way
// the loader dispatch key is shared on real handles.
func testKey(h vk.Handle) dispatch.Key {
	return dispatch.Key(h &^ 0xFF)
}

// recordingResolver hands out a distinct non-null address per entry-point
// name and remembers it, so tests can assert exact round-trips.
type recordingResolver struct {
	next  vk.ProcAddr
	addrs map[string]vk.ProcAddr
}

func newRecordingResolver() *recordingResolver {
	return &recordingResolver{next: 0x10000, addrs: map[string]vk.ProcAddr{}}
}

func (r *recordingResolver) resolve(_ vk.Handle, name string) vk.ProcAddr {
	if _, ok := r.addrs[name]; !ok {
		r.next++
		r.addrs[name] = r.next
	}
	return r.addrs[name]
}

// mapResolver returns exactly the addresses in m; everything else is null.
func mapResolver(m map[string]vk.ProcAddr) vk.ProcResolver {
	return func(_ vk.Handle, name string) vk.ProcAddr { return m[name] }
}

func TestInstanceRoundTrip(t *testing.T) {
	table := dispatch.NewTable(testKey)
	res := newRecordingResolver()
	instance := vk.Instance(0xA100)

	require.NoError(t, table.RegisterInstance(instance, res.resolve))

	accessors := map[string]func(vk.Dispatchable) (vk.ProcAddr, error){
		vk.DestroyInstance:                    table.DestroyInstance,
		vk.GetInstanceProcAddr:                table.GetInstanceProcAddr,
		vk.EnumerateDeviceExtensionProperties: table.EnumerateDeviceExtensionProperties,
		vk.GetPhysicalDeviceProperties:        table.GetPhysicalDeviceProperties,
	}
	got := map[string]vk.ProcAddr{}
	for name, accessor := range accessors {
		pfn, err := accessor(instance)
		require.NoError(t, err, name)
		got[name] = pfn
		// Repeated reads return the same address.
		again, err := accessor(instance)
		require.NoError(t, err, name)
		assert.Equal(t, pfn, again, name)
	}
	if diff := cmp.Diff(res.addrs, got); diff != "" {
		t.Errorf("resolved addresses mismatch (-want +got):\n%s", diff)
	}
}

func TestDeviceRoundTrip(t *testing.T) {
	table := dispatch.NewTable(testKey)
	res := newRecordingResolver()
	device := vk.Device(0xD100)

	require.NoError(t, table.RegisterDevice(device, res.resolve))

	accessors := map[string]func(vk.Dispatchable) (vk.ProcAddr, error){
		vk.DestroyDevice:              table.DestroyDevice,
		vk.GetDeviceProcAddr:          table.GetDeviceProcAddr,
		vk.ResetCommandPool:           table.ResetCommandPool,
		vk.AllocateCommandBuffers:     table.AllocateCommandBuffers,
		vk.FreeCommandBuffers:         table.FreeCommandBuffers,
		vk.BeginCommandBuffer:         table.BeginCommandBuffer,
		vk.EndCommandBuffer:           table.EndCommandBuffer,
		vk.ResetCommandBuffer:         table.ResetCommandBuffer,
		vk.QueueSubmit:                table.QueueSubmit,
		vk.QueuePresentKHR:            table.QueuePresentKHR,
		vk.GetDeviceQueue:             table.GetDeviceQueue,
		vk.GetDeviceQueue2:            table.GetDeviceQueue2,
		vk.CreateQueryPool:            table.CreateQueryPool,
		vk.ResetQueryPoolEXT:          table.ResetQueryPoolEXT,
		vk.CmdWriteTimestamp:          table.CmdWriteTimestamp,
		vk.GetQueryPoolResults:        table.GetQueryPoolResults,
		vk.CmdBeginDebugUtilsLabelEXT: table.CmdBeginDebugUtilsLabelEXT,
		vk.CmdEndDebugUtilsLabelEXT:   table.CmdEndDebugUtilsLabelEXT,
		vk.CmdDebugMarkerBeginEXT:     table.CmdDebugMarkerBeginEXT,
		vk.CmdDebugMarkerEndEXT:       table.CmdDebugMarkerEndEXT,
	}
	got := map[string]vk.ProcAddr{}
	for name, accessor := range accessors {
		pfn, err := accessor(device)
		require.NoError(t, err, name)
		got[name] = pfn
	}
	if diff := cmp.Diff(res.addrs, got); diff != "" {
		t.Errorf("resolved addresses mismatch (-want +got):\n%s", diff)
	}

	// Every pair resolved, so both extensions report supported.
	utils, err := table.IsDebugUtilsExtensionSupported(device)
	require.NoError(t, err)
	assert.True(t, utils)
	marker, err := table.IsDebugMarkerExtensionSupported(device)
	require.NoError(t, err)
	assert.True(t, marker)
}

func TestSubObjectSharesDeviceRecord(t *testing.T) {
	table := dispatch.NewTable(testKey)
	res := newRecordingResolver()
	device := vk.Device(0xD100)
	commandBuffer := vk.CommandBuffer(0xD101)
	queue := vk.Queue(0xD102)

	require.NoError(t, table.RegisterDevice(device, res.resolve))

	fromDevice, err := table.QueueSubmit(device)
	require.NoError(t, err)
	fromQueue, err := table.QueueSubmit(queue)
	require.NoError(t, err)
	fromBuffer, err := table.BeginCommandBuffer(commandBuffer)
	require.NoError(t, err)

	assert.Equal(t, fromDevice, fromQueue)
	assert.Equal(t, res.addrs[vk.BeginCommandBuffer], fromBuffer)
}

func TestDuplicateRegistrationFails(t *testing.T) {
	table := dispatch.NewTable(testKey)
	first := newRecordingResolver()
	device := vk.Device(0xD100)
	instance := vk.Instance(0xA100)

	require.NoError(t, table.RegisterInstance(instance, first.resolve))
	require.NoError(t, table.RegisterDevice(device, first.resolve))

	second := newRecordingResolver()
	err := table.RegisterInstance(instance, second.resolve)
	require.ErrorIs(t, err, dispatch.ErrAlreadyRegistered)
	assert.True(t, dispatch.IsProtocolViolation(err))

	err = table.RegisterDevice(device, second.resolve)
	require.ErrorIs(t, err, dispatch.ErrAlreadyRegistered)

	// The original records survive the failed registrations.
	pfn, err := table.DestroyInstance(instance)
	require.NoError(t, err)
	assert.Equal(t, first.addrs[vk.DestroyInstance], pfn)
	pfn, err = table.DestroyDevice(device)
	require.NoError(t, err)
	assert.Equal(t, first.addrs[vk.DestroyDevice], pfn)
}

func TestUnregisterWithoutRegisterFails(t *testing.T) {
	table := dispatch.NewTable(testKey)

	err := table.UnregisterInstance(vk.Instance(0xA100))
	require.ErrorIs(t, err, dispatch.ErrNotRegistered)
	assert.True(t, dispatch.IsProtocolViolation(err))

	err = table.UnregisterDevice(vk.Device(0xD100))
	require.ErrorIs(t, err, dispatch.ErrNotRegistered)
}

func TestIdentityReuseAfterUnregister(t *testing.T) {
	table := dispatch.NewTable(testKey)
	first := newRecordingResolver()
	instance := vk.Instance(0xA100)

	require.NoError(t, table.RegisterInstance(instance, first.resolve))
	require.NoError(t, table.UnregisterInstance(instance))

	_, err := table.DestroyInstance(instance)
	require.ErrorIs(t, err, dispatch.ErrNotRegistered)

	// The identity is free again: a new, unrelated instance may claim it.
	second := newRecordingResolver()
	second.next = 0x90000
	require.NoError(t, table.RegisterInstance(instance, second.resolve))

	pfn, err := table.DestroyInstance(instance)
	require.NoError(t, err)
	assert.Equal(t, second.addrs[vk.DestroyInstance], pfn)
	assert.NotEqual(t, first.addrs[vk.DestroyInstance], pfn)
}

func TestCapabilityFlagsNeedBothEntryPoints(t *testing.T) {
	for _, test := range []struct {
		name       string
		addrs      map[string]vk.ProcAddr
		wantUtils  bool
		wantMarker bool
	}{
		{
			name: "all four resolved",
			addrs: map[string]vk.ProcAddr{
				vk.CmdBeginDebugUtilsLabelEXT: 0x1,
				vk.CmdEndDebugUtilsLabelEXT:   0x2,
				vk.CmdDebugMarkerBeginEXT:     0x3,
				vk.CmdDebugMarkerEndEXT:       0x4,
			},
			wantUtils:  true,
			wantMarker: true,
		},
		{
			name: "half of each pair",
			addrs: map[string]vk.ProcAddr{
				vk.CmdBeginDebugUtilsLabelEXT: 0x1,
				vk.CmdDebugMarkerEndEXT:       0x4,
			},
		},
		{
			name:  "none resolved",
			addrs: map[string]vk.ProcAddr{},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			table := dispatch.NewTable(testKey)
			device := vk.Device(0xD100)
			require.NoError(t, table.RegisterDevice(device, mapResolver(test.addrs)))

			utils, err := table.IsDebugUtilsExtensionSupported(device)
			require.NoError(t, err)
			assert.Equal(t, test.wantUtils, utils)
			marker, err := table.IsDebugMarkerExtensionSupported(device)
			require.NoError(t, err)
			assert.Equal(t, test.wantMarker, marker)
		})
	}
}

// The worked example: a device whose driver resolves vkDestroyDevice and one
// half of the debug-utils pair, nothing else.
func TestPartiallyResolvedDevice(t *testing.T) {
	table := dispatch.NewTable(testKey)
	device := vk.Device(0xD100)
	require.NoError(t, table.RegisterDevice(device, mapResolver(map[string]vk.ProcAddr{
		vk.DestroyDevice:              0xAAA,
		vk.CmdBeginDebugUtilsLabelEXT: 0xBBB,
	})))

	pfn, err := table.DestroyDevice(device)
	require.NoError(t, err)
	assert.Equal(t, vk.ProcAddr(0xAAA), pfn)

	utils, err := table.IsDebugUtilsExtensionSupported(device)
	require.NoError(t, err)
	assert.False(t, utils)

	_, err = table.QueueSubmit(device)
	require.ErrorIs(t, err, dispatch.ErrUnresolvedEntryPoint)
	assert.True(t, dispatch.IsProtocolViolation(err))
}

func TestCounts(t *testing.T) {
	table := dispatch.NewTable(testKey)
	res := newRecordingResolver()

	require.NoError(t, table.RegisterInstance(vk.Instance(0xA100), res.resolve))
	require.NoError(t, table.RegisterDevice(vk.Device(0xD100), res.resolve))
	require.NoError(t, table.RegisterDevice(vk.Device(0xE100), res.resolve))

	instances, devices := table.Counts()
	assert.Equal(t, 1, instances)
	assert.Equal(t, 2, devices)

	require.NoError(t, table.UnregisterDevice(vk.Device(0xD100)))
	instances, devices = table.Counts()
	assert.Equal(t, 1, instances)
	assert.Equal(t, 1, devices)
}

func TestConcurrentRegistrationAndLookup(t *testing.T) {
	const (
		writers        = 8
		readers        = 8
		devicesEach    = 32
		lookupsPerRead = 200
	)

	table := dispatch.NewTable(testKey)
	res := newRecordingResolver()
	// Writers need a resolver without internal state, as they run in
	// parallel.
	pure := func(_ vk.Handle, name string) vk.ProcAddr {
		return vk.ProcAddr(0xF000 + len(name))
	}

	// Pre-register the devices the readers will hammer.
	readerDevices := make([]vk.Device, readers)
	for i := range readerDevices {
		readerDevices[i] = vk.Device(0x100000 + uintptr(i)<<8)
		require.NoError(t, table.RegisterDevice(readerDevices[i], res.resolve))
	}
	want, err := table.QueueSubmit(readerDevices[0])
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, writers+readers)

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < devicesEach; i++ {
				d := vk.Device(0x200000 + uintptr(w)<<16 + uintptr(i)<<8)
				if err := table.RegisterDevice(d, pure); err != nil {
					errs <- err
					return
				}
				if err := table.UnregisterDevice(d); err != nil {
					errs <- err
					return
				}
			}
		}(w)
	}
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			d := readerDevices[r]
			for i := 0; i < lookupsPerRead; i++ {
				pfn, err := table.QueueSubmit(d)
				if err != nil {
					errs <- err
					return
				}
				if pfn != want {
					errs <- errTornRead
					return
				}
				if _, err := table.IsDebugMarkerExtensionSupported(d); err != nil {
					errs <- err
					return
				}
			}
		}(r)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent access: %v", err)
	}
}

var errTornRead = errors.New("lookup observed a torn record")
