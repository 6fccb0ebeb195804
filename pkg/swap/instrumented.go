// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package swap

import (
	"time"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/ka"
	"github.com/luxfi/swap/pkg/metric"
)

// EncryptWithMetrics behaves exactly like Encrypt, additionally recording
// the call and its latency on m, whether or not it succeeded. m may be nil, in which case no
// metric is recorded — the core operation itself never depends on metrics
// being configured.
func (p Plaintext) EncryptWithMetrics(esk ka.Secret, m *metric.Metrics) (Ciphertext, ka.Public, error) {
	start := time.Now()
	ct, epk, err := p.Encrypt(esk)
	if m != nil {
		m.RecordEncrypt(time.Since(start))
	}
	return ct, epk, err
}

// EncryptKeyWithMetrics behaves exactly like EncryptKey, additionally
// recording the call's latency on m.
func (p Plaintext) EncryptKeyWithMetrics(esk ka.Secret, ovk []byte, m *metric.Metrics) (WrappedOVK, error) {
	start := time.Now()
	w, err := p.EncryptKey(esk, ovk)
	if m != nil {
		m.RecordEncryptKey(time.Since(start))
	}
	return w, err
}

// DecryptWithMetrics behaves exactly like Decrypt, additionally recording
// the call's success/failure and latency on m.
func (c Ciphertext) DecryptWithMetrics(esk ka.Secret, transmissionKey ka.Public, diversifiedBasepoint group.Element, m *metric.Metrics) (Plaintext, error) {
	start := time.Now()
	p, err := c.Decrypt(esk, transmissionKey, diversifiedBasepoint)
	if m != nil {
		m.RecordDecrypt(err, time.Since(start))
	}
	return p, err
}

// RecoverWithMetrics behaves exactly like Recover, additionally recording
// the call's outcome and latency on m.
func RecoverWithMetrics(w WrappedOVK, ovk []byte, epk ka.Public, m *metric.Metrics) (ka.Public, ka.Secret, error) {
	start := time.Now()
	pkd, esk, err := Recover(w, ovk, epk)
	if m != nil {
		m.RecordRecover(err, time.Since(start))
	}
	return pkd, esk, err
}
