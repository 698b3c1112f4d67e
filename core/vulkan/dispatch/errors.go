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
	perrors "github.com/pkg/errors"

	"github.com/cdglove/orbit/core/fault"
)

// Protocol violations. Each one means the surrounding layer broke the
// registration contract or forwarded through an entry point the driver never
// provided. None of them is recoverable at this level.
const (
	// ErrAlreadyRegistered is returned when a record already exists for the
	// identity being registered.
	ErrAlreadyRegistered = fault.Const("dispatch table already registered")

	// ErrNotRegistered is returned when no record exists for the identity of
	// the dispatchable object.
	ErrNotRegistered = fault.Const("no dispatch table registered")

	// ErrUnresolvedEntryPoint is returned when the record exists but the
	// requested entry point resolved to null at registration time.
	ErrUnresolvedEntryPoint = fault.Const("entry point was not resolved")
)

// IsProtocolViolation returns true if err (or its cause) is one of the
// registry's protocol-violation sentinels.
func IsProtocolViolation(err error) bool {
	switch perrors.Cause(err) {
	case ErrAlreadyRegistered, ErrNotRegistered, ErrUnresolvedEntryPoint:
		return true
	default:
		return false
	}
}
