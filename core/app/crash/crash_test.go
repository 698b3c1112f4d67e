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

package crash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdglove/orbit/core/app/crash"
	"github.com/cdglove/orbit/core/fault"
)

const errBoom = fault.Const("boom")

func TestCrashReportsThenPanics(t *testing.T) {
	var reported []error
	crash.Register(func(err error, stack []byte) {
		reported = append(reported, err)
		assert.NotEmpty(t, stack)
	})

	assert.PanicsWithValue(t, error(errBoom), func() { crash.Crash(errBoom) })
	require.Len(t, reported, 1)
	assert.Equal(t, error(errBoom), reported[0])

	// Reporters fire at most once per process; the panic still happens.
	assert.PanicsWithValue(t, error(errBoom), func() { crash.Crash(errBoom) })
	assert.Len(t, reported, 1)
}
