// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"time"

	metrics "github.com/luxfi/metric"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the swap core's operational metrics using luxfi/metric.
type Metrics struct {
	metricsInstance metrics.Metrics

	// Encryption-path metrics
	EncryptTotal    metrics.Counter
	EncryptKeyTotal metrics.Counter

	// Decryption-path metrics
	DecryptTotal  metrics.Counter
	DecryptErrors metrics.CounterVec
	RecoverTotal  metrics.Counter

	// Wire-bridge metrics
	ProtoEncodeTotal metrics.Counter
	ProtoDecodeTotal metrics.Counter
	ProtoErrors      metrics.CounterVec

	// Performance metrics
	OperationLatency metrics.Histogram
}

// NewMetrics creates a new metrics instance using luxfi/metric.
func NewMetrics() (*Metrics, error) {
	factory := metrics.NewPrometheusFactory()
	metricsInstance := factory.New("swap")

	m := &Metrics{
		metricsInstance: metricsInstance,
	}

	m.EncryptTotal = metricsInstance.NewCounter("swap_encrypt_total", "Total number of swap plaintexts encrypted")
	m.EncryptKeyTotal = metricsInstance.NewCounter("swap_encrypt_key_total", "Total number of OVK keys wrapped")

	m.DecryptTotal = metricsInstance.NewCounter("swap_decrypt_total", "Total number of swap ciphertexts decrypted successfully")
	m.DecryptErrors = metricsInstance.NewCounterVec(
		"swap_decrypt_errors_total",
		"Total number of failed swap decryption attempts by error kind",
		[]string{"error"},
	)
	m.RecoverTotal = metricsInstance.NewCounter("swap_recover_total", "Total number of successful sender OVK recoveries")

	m.ProtoEncodeTotal = metricsInstance.NewCounter("swap_proto_encode_total", "Total number of SwapPlaintext protobuf encodings")
	m.ProtoDecodeTotal = metricsInstance.NewCounter("swap_proto_decode_total", "Total number of SwapPlaintext protobuf decodings")
	m.ProtoErrors = metricsInstance.NewCounterVec(
		"swap_proto_errors_total",
		"Total number of failed protobuf bridge conversions by error kind",
		[]string{"error"},
	)

	m.OperationLatency = metricsInstance.NewHistogram(
		"swap_operation_latency_seconds",
		"Time to complete a swap encrypt/decrypt/recover operation",
		prometheus.DefBuckets,
	)

	return m, nil
}

// RecordEncrypt records a completed Plaintext.Encrypt call.
func (m *Metrics) RecordEncrypt(elapsed time.Duration) {
	m.EncryptTotal.Inc()
	m.OperationLatency.Observe(elapsed.Seconds())
}

// RecordEncryptKey records a completed Plaintext.EncryptKey call.
func (m *Metrics) RecordEncryptKey(elapsed time.Duration) {
	m.EncryptKeyTotal.Inc()
	m.OperationLatency.Observe(elapsed.Seconds())
}

// RecordDecrypt records a Ciphertext.Decrypt call, counting it as either a
// success or a failure by error kind; either way its latency is observed.
func (m *Metrics) RecordDecrypt(err error, elapsed time.Duration) {
	if err != nil {
		m.DecryptErrors.WithLabelValues(errorKind(err)).Inc()
		m.OperationLatency.Observe(elapsed.Seconds())
		return
	}
	m.DecryptTotal.Inc()
	m.OperationLatency.Observe(elapsed.Seconds())
}

// RecordRecover records a Recover call, counting it as either a success or
// a failure by error kind; either way its latency is observed.
func (m *Metrics) RecordRecover(err error, elapsed time.Duration) {
	if err != nil {
		m.DecryptErrors.WithLabelValues(errorKind(err)).Inc()
		m.OperationLatency.Observe(elapsed.Seconds())
		return
	}
	m.RecoverTotal.Inc()
	m.OperationLatency.Observe(elapsed.Seconds())
}

// RecordProtoEncode records a ToProto call.
func (m *Metrics) RecordProtoEncode() {
	m.ProtoEncodeTotal.Inc()
}

// RecordProtoDecode records a FromProto call, counting it as either a
// success or a failure by error kind.
func (m *Metrics) RecordProtoDecode(err error) {
	if err != nil {
		m.ProtoErrors.WithLabelValues(errorKind(err)).Inc()
		return
	}
	m.ProtoDecodeTotal.Inc()
}

// errorKind reduces an error to a short label value suitable for a
// Prometheus vec; it reports the error's own message so distinct sentinel
// errors land in distinct series without a hand-maintained mapping.
func errorKind(err error) string {
	return err.Error()
}

// GetGatherer returns the prometheus gatherer for metrics export
func (m *Metrics) GetGatherer() prometheus.Gatherer {
	if registry := m.metricsInstance.Registry(); registry != nil {
		return registry
	}
	return prometheus.DefaultGatherer
}

// GetRegisterer returns the prometheus registerer
func (m *Metrics) GetRegisterer() prometheus.Registerer {
	if registry := m.metricsInstance.Registry(); registry != nil {
		return registry
	}
	return prometheus.DefaultRegisterer
}
