// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keyqtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRecorder(t *testing.T) {
	rec := NewLogRecorder(logging.Info)

	rec.Debug("below level", zap.Int("n", 1))
	rec.Info("at level")
	rec.Error("above level", zap.String("k", "v"))

	require.Lenf(t, rec.Records, 2, "%T.Records", rec)
	assert.Equalf(t, "at level", rec.Records[0].Msg, "first recorded message")

	errs := rec.At(logging.Error)
	require.Lenf(t, errs, 1, "%T.At(%v)", rec, logging.Error)
	require.Lenf(t, errs[0].Fields, 1, "fields of %q", errs[0].Msg)
	assert.Equalf(t, "k", errs[0].Fields[0].Key, "field key of %q", errs[0].Msg)

	assert.Lenf(t, rec.AtLeast(logging.Info), 2, "%T.AtLeast(%v)", rec, logging.Info)
}

func TestLogRecorderWith(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)
	log := rec.With(zap.String("component", "scheduler"))
	log.Debug("hello", zap.Int("n", 42))

	require.Lenf(t, rec.Records, 1, "%T.Records", rec)
	got := rec.Records[0]
	require.Lenf(t, got.Fields, 2, "fields of %q", got.Msg)
	assert.Equalf(t, "component", got.Fields[0].Key, "prepended field key")
	assert.Equalf(t, "n", got.Fields[1].Key, "call-site field key")
}
