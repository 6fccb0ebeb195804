// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command swapdemo exercises a full confidential swap round trip: it
// builds a swap plaintext, encrypts it to a recipient and wraps the
// sender's outgoing viewing key, then both decrypts as the receiver and
// recovers as the sender, confirming both paths agree.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxfi/swap/internal/group"
	"github.com/luxfi/swap/pkg/asset"
	"github.com/luxfi/swap/pkg/fee"
	"github.com/luxfi/swap/pkg/ka"
	"github.com/luxfi/swap/pkg/log"
	"github.com/luxfi/swap/pkg/metric"
	"github.com/luxfi/swap/pkg/pb"
	"github.com/luxfi/swap/pkg/swap"
)

var (
	logLevel = flag.String("log-level", "info", "Log level")
	t1Amount = flag.Uint64("t1", 1_000_000, "Amount of asset_1 offered")
	t2Amount = flag.Uint64("t2", 2_000_000, "Amount of asset_2 offered")
	feeAmt   = flag.Uint64("fee", 500, "Swap fee")

	// Version info
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	flag.Parse()
	fmt.Printf("swapdemo %s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)

	logger := log.NewWithLevel(*logLevel)
	defer logger.Sync()

	correlationID := uuid.New()
	logger.Info("starting swap round trip " + correlationID.String())

	metrics, err := metric.NewMetrics()
	if err != nil {
		logger.Error(fmt.Sprintf("metrics init: %s", err))
		os.Exit(1)
	}

	if err := run(logger, metrics); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	families, err := metrics.GetGatherer().Gather()
	if err != nil {
		logger.Error(fmt.Sprintf("gathering metrics: %s", err))
		os.Exit(1)
	}
	logger.Info(fmt.Sprintf("gathered %d metric families", len(families)))
}

func run(logger log.Logger, metrics *metric.Metrics) error {
	var a1, a2 [asset.IDLen]byte
	a1[0], a2[0] = 0x01, 0x02
	asset1, err := asset.IDFromBytes(a1[:])
	if err != nil {
		return fmt.Errorf("building asset_1: %w", err)
	}
	asset2, err := asset.IDFromBytes(a2[:])
	if err != nil {
		return fmt.Errorf("building asset_2: %w", err)
	}
	pair := asset.NewPair(asset1, asset2)

	// The recipient's address material: a diversified basepoint and the
	// diversified transmission key derived against it.
	diversifier, err := group.RandomScalar()
	if err != nil {
		return fmt.Errorf("drawing diversifier: %w", err)
	}
	bd, err := diversifier.MultBase()
	if err != nil {
		return fmt.Errorf("deriving diversified basepoint: %w", err)
	}
	ivk, err := ka.NewSecret()
	if err != nil {
		return fmt.Errorf("drawing incoming viewing key: %w", err)
	}
	pkd, err := ivk.DiversifiedPublic(bd)
	if err != nil {
		return fmt.Errorf("deriving transmission key: %w", err)
	}

	plaintext := swap.FromParts(pair, *t1Amount, *t2Amount, fee.New(*feeAmt), bd, pkd)

	t1 := decimal.NewFromInt(int64(plaintext.T1()))
	t2 := decimal.NewFromInt(int64(plaintext.T2()))
	logger.Info(fmt.Sprintf("swap plaintext: t1=%s t2=%s fee=%d", t1.String(), t2.String(), plaintext.Fee().Amount))

	esk, err := ka.NewSecret()
	if err != nil {
		return fmt.Errorf("drawing ephemeral secret: %w", err)
	}

	ciphertext, epk, err := plaintext.EncryptWithMetrics(esk, metrics)
	if err != nil {
		return fmt.Errorf("encrypting swap: %w", err)
	}

	ovk := make([]byte, 32)
	wrapped, err := plaintext.EncryptKeyWithMetrics(esk, ovk, metrics)
	if err != nil {
		return fmt.Errorf("wrapping outgoing viewing key: %w", err)
	}

	logger.Info(fmt.Sprintf("sealed %d-octet ciphertext and %d-octet wrapped key", len(ciphertext.Bytes()), len(wrapped.Bytes())))

	// Receiver path: in a real deployment the receiver recovers esk via
	// address scanning (§4.5); this demo already has it at hand from the
	// sealing step above.
	recovered, err := ciphertext.DecryptWithMetrics(esk, pkd, bd, metrics)
	if err != nil {
		return fmt.Errorf("receiver decrypt: %w", err)
	}
	if !recovered.Equal(plaintext) {
		return fmt.Errorf("receiver-recovered plaintext does not match the original")
	}
	logger.Info("receiver decrypt succeeded")

	// Sender path: recover (pk_d, esk) from the wrapped OVK, then decrypt.
	recoveredPKD, recoveredESK, err := swap.RecoverWithMetrics(wrapped, ovk, epk, metrics)
	if err != nil {
		return fmt.Errorf("sender recovery: %w", err)
	}
	senderView, err := ciphertext.DecryptWithMetrics(recoveredESK, recoveredPKD, bd, metrics)
	if err != nil {
		return fmt.Errorf("sender decrypt after recovery: %w", err)
	}
	if !senderView.Equal(plaintext) {
		return fmt.Errorf("sender-recovered plaintext does not match the original")
	}
	logger.Info("sender recovery succeeded")

	// Wire-bridge round trip: confirm the plaintext survives the protobuf
	// bridge unchanged, as a relay or indexer consuming §4.7 wire bytes
	// would see it.
	wire := pb.ToProtoWithMetrics(plaintext, metrics)
	fromWire, err := pb.FromProtoWithMetrics(wire, metrics)
	if err != nil {
		return fmt.Errorf("protobuf bridge decode: %w", err)
	}
	if !fromWire.Equal(plaintext) {
		return fmt.Errorf("protobuf-bridged plaintext does not match the original")
	}
	logger.Info(fmt.Sprintf("protobuf bridge round trip succeeded (%d wire octets)", len(wire)))

	fmt.Println("round trip OK")
	return nil
}
