// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordersUpdateGatheredFamilies(t *testing.T) {
	require := require.New(t)

	m, err := NewMetrics()
	require.NoError(err)

	m.RecordEncrypt(time.Millisecond)
	m.RecordEncryptKey(time.Millisecond)
	m.RecordDecrypt(nil, time.Millisecond)
	m.RecordDecrypt(errors.New("boom"), time.Millisecond)
	m.RecordRecover(nil, time.Millisecond)
	m.RecordRecover(errors.New("boom"), time.Millisecond)
	m.RecordProtoEncode()
	m.RecordProtoDecode(nil)
	m.RecordProtoDecode(errors.New("boom"))

	families, err := m.GetGatherer().Gather()
	require.NoError(err)
	require.NotEmpty(families)

	require.NotNil(m.GetRegisterer())
}

func TestErrorKindUsesErrorMessage(t *testing.T) {
	require := require.New(t)

	err := errors.New("some failure")
	require.Equal("some failure", errorKind(err))
}
