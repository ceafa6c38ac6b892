// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	m := NewCollector()
	m.RecordFrame(time.Millisecond, 2, 4, 3)
	m.RecordFrame(time.Millisecond, 0, 0, 5)
	m.RecordSelection("Earth")
	m.RecordSelection("Earth")
	m.RecordAssetFailure("model")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(b)
	for _, line := range []string{
		"orrery_frames_total 2",
		"orrery_simulated_days_total 2",
		"orrery_active_satellites 5",
		"orrery_time_scale_days_per_second 0",
		`orrery_selections_total{body="Earth"} 2`,
		`orrery_asset_failures_total{kind="model"} 1`,
		"orrery_frame_duration_seconds_count 2",
	} {
		assert.Contains(t, out, line)
	}
}
