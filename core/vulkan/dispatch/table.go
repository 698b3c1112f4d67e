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

// Package dispatch is the per-object dispatch registry of the interception
// layer.
//
// It remembers, for every live instance and device, the forwarding pointers
// resolved from the next link of the loader's dispatch chain, and serves them
// to the layer's hook functions. Records are written once at creation, read
// on every intercepted call, and removed at destruction; a single
// reader/writer lock keeps lookups concurrent across application threads.
//
// Every misuse of the registry is a protocol violation by the surrounding
// layer (see errors.go), never a recoverable condition.
package dispatch

import (
	"sync"

	perrors "github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"github.com/cdglove/orbit/core/vulkan/vk"
)

var log = commonlog.GetLogger("vulkan.dispatch")

// Table maps instance and device identities to their forwarding records.
//
// A Table is internally synchronized and safe for concurrent use from any
// number of application threads. Construct one per layer load with NewTable;
// there is deliberately no package-level instance so tests get a fresh one.
type Table struct {
	keyOf KeyFunc

	// Registered once per instance/device and read on every intercepted
	// call, so guarded by a read/write lock rather than a plain mutex.
	mu        sync.RWMutex
	instances map[Key]*InstanceFunctions
	devices   map[Key]*DeviceFunctions
}

// NewTable returns an empty registry. keyOf derives object identities from
// handles; passing nil selects LoaderKey, the loader-ABI extractor.
func NewTable(keyOf KeyFunc) *Table {
	if keyOf == nil {
		keyOf = LoaderKey
	}
	return &Table{
		keyOf:     keyOf,
		instances: map[Key]*InstanceFunctions{},
		devices:   map[Key]*DeviceFunctions{},
	}
}

// RegisterInstance resolves the instance-scope forwarding pointers for
// instance and records them under its identity. Entry points the driver does
// not provide are stored as null; accessors report those on use.
//
// Registering an identity that already has a record is a protocol violation.
func (t *Table) RegisterInstance(instance vk.Instance, resolve vk.ProcResolver) error {
	funcs := resolveInstanceFunctions(instance, resolve)
	key := t.keyOf(instance.Handle())

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.instances[key]; ok {
		return perrors.Wrapf(ErrAlreadyRegistered, "instance %#x", key)
	}
	t.instances[key] = funcs
	log.Debugf("registered instance dispatch for key %#x", key)
	return nil
}

// UnregisterInstance removes the record for instance. Removing an identity
// that has no record is a protocol violation.
func (t *Table) UnregisterInstance(instance vk.Instance) error {
	key := t.keyOf(instance.Handle())

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.instances[key]; !ok {
		return perrors.Wrapf(ErrNotRegistered, "instance %#x", key)
	}
	delete(t.instances, key)
	log.Debugf("unregistered instance dispatch for key %#x", key)
	return nil
}

// RegisterDevice resolves the device-scope forwarding pointers for device,
// computes the debug-annotation capability flags, and records both under the
// device's identity.
//
// Registering an identity that already has a record is a protocol violation.
func (t *Table) RegisterDevice(device vk.Device, resolve vk.ProcResolver) error {
	funcs := resolveDeviceFunctions(device, resolve)
	key := t.keyOf(device.Handle())

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.devices[key]; ok {
		return perrors.Wrapf(ErrAlreadyRegistered, "device %#x", key)
	}
	t.devices[key] = funcs
	log.Debugf("registered device dispatch for key %#x (debug utils %v, debug marker %v)",
		key, funcs.SupportsDebugUtils, funcs.SupportsDebugMarker)
	return nil
}

// UnregisterDevice removes the record for device. Removing an identity that
// has no record is a protocol violation.
func (t *Table) UnregisterDevice(device vk.Device) error {
	key := t.keyOf(device.Handle())

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.devices[key]; !ok {
		return perrors.Wrapf(ErrNotRegistered, "device %#x", key)
	}
	delete(t.devices, key)
	log.Debugf("unregistered device dispatch for key %#x", key)
	return nil
}

// Counts returns the number of live instance and device records. The layer
// checks both are zero at unload.
func (t *Table) Counts() (instances, devices int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.instances), len(t.devices)
}

// instanceProc returns the named forwarding pointer from the instance record
// owning d.
func (t *Table) instanceProc(d vk.Dispatchable, name string, get func(*InstanceFunctions) vk.ProcAddr) (vk.ProcAddr, error) {
	key := t.keyOf(d.Handle())

	t.mu.RLock()
	defer t.mu.RUnlock()
	funcs, ok := t.instances[key]
	if !ok {
		return 0, perrors.Wrapf(ErrNotRegistered, "instance %#x (%s)", key, name)
	}
	pfn := get(funcs)
	if pfn.IsNull() {
		return 0, perrors.Wrapf(ErrUnresolvedEntryPoint, "instance %#x (%s)", key, name)
	}
	return pfn, nil
}

// deviceProc returns the named forwarding pointer from the device record
// owning d.
func (t *Table) deviceProc(d vk.Dispatchable, name string, get func(*DeviceFunctions) vk.ProcAddr) (vk.ProcAddr, error) {
	key := t.keyOf(d.Handle())

	t.mu.RLock()
	defer t.mu.RUnlock()
	funcs, ok := t.devices[key]
	if !ok {
		return 0, perrors.Wrapf(ErrNotRegistered, "device %#x (%s)", key, name)
	}
	pfn := get(funcs)
	if pfn.IsNull() {
		return 0, perrors.Wrapf(ErrUnresolvedEntryPoint, "device %#x (%s)", key, name)
	}
	return pfn, nil
}

// deviceFlag returns one of the precomputed capability flags from the device
// record owning d.
func (t *Table) deviceFlag(d vk.Dispatchable, name string, get func(*DeviceFunctions) bool) (bool, error) {
	key := t.keyOf(d.Handle())

	t.mu.RLock()
	defer t.mu.RUnlock()
	funcs, ok := t.devices[key]
	if !ok {
		return false, perrors.Wrapf(ErrNotRegistered, "device %#x (%s)", key, name)
	}
	return get(funcs), nil
}
