package blkfile

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfinder7000/internal/model"
	"github.com/goodnatureofminers/blockfinder7000/pkg/safe"
)

// payloadPreviewLen caps how many entry-data bytes the report shows.
const payloadPreviewLen = 32

// BuildBlockReport flattens a decoded record into the presentation model.
func BuildBlockReport(frame FrameHeader, block Block) (model.BlockReport, error) {
	payloadBytes, err := safe.Uint32(len(block.Payload))
	if err != nil {
		return model.BlockReport{}, fmt.Errorf("block %d payload size overflow: %w", frame.Height, err)
	}

	return model.BlockReport{
		Network:        frame.NetworkHex(),
		Height:         frame.Height,
		Size:           frame.PayloadLength(),
		Version:        block.Header.Version,
		PrevBlock:      block.Header.PrevBlockHex(),
		MerkleRoot:     block.Header.MerkleRootHex(),
		Timestamp:      time.Unix(int64(block.Header.Timestamp), 0).UTC(),
		Bits:           block.Header.Bits,
		Nonce:          block.Header.Nonce,
		EntryCount:     block.EntryCount(),
		PayloadBytes:   payloadBytes,
		PayloadPreview: previewPayload(block.Payload),
	}, nil
}

func previewPayload(payload []byte) string {
	if len(payload) <= payloadPreviewLen {
		return hex.EncodeToString(payload)
	}
	return hex.EncodeToString(payload[:payloadPreviewLen]) + "..."
}
