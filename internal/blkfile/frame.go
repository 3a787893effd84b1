package blkfile

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// Byte widths of the framing unit preceding every record.
const (
	magicLen = 4
	sizeLen  = 4
)

// ErrNetworkMismatch reports a record whose magic bytes do not match the
// configured network. Framing cannot be trusted past a bad magic, so the
// scan aborts rather than resynchronizing.
var ErrNetworkMismatch = errors.New("network mismatch")

// FrameHeader is the 8-byte framing unit in front of every record in a blk
// file: 4 magic bytes identifying the network followed by the little-endian
// payload length. Height is the zero-based position of the record within
// the stream.
type FrameHeader struct {
	Height uint64
	magic  [magicLen]byte
	size   [sizeLen]byte
}

func decodeFrameHeader(c *Cursor, height uint64) (FrameHeader, error) {
	h := FrameHeader{Height: height}

	magic, err := c.Take(magicLen)
	if err != nil {
		return FrameHeader{}, fmt.Errorf("record %d magic: %w", height, err)
	}
	copy(h.magic[:], magic)

	size, err := c.Take(sizeLen)
	if err != nil {
		return FrameHeader{}, fmt.Errorf("record %d payload length: %w", height, err)
	}
	copy(h.size[:], size)

	return h, nil
}

// NetworkHex renders the magic bytes as lowercase hex in stream order,
// f9beb4d9 for mainnet.
func (h FrameHeader) NetworkHex() string {
	return hex.EncodeToString(h.magic[:])
}

// ValidateNetwork checks the magic against the expected network. The magic
// is stored little-endian on disk, so the stream bytes decode directly into
// a wire.BitcoinNet value.
func (h FrameHeader) ValidateNetwork(want wire.BitcoinNet) error {
	got := wire.BitcoinNet(binary.LittleEndian.Uint32(h.magic[:]))
	if got != want {
		return fmt.Errorf("record %d magic %s, want %s: %w",
			h.Height, h.NetworkHex(), netHex(want), ErrNetworkMismatch)
	}
	return nil
}

// PayloadLength returns the number of payload bytes following the framing
// unit, decoded little-endian.
func (h FrameHeader) PayloadLength() uint32 {
	return binary.LittleEndian.Uint32(h.size[:])
}

// netHex renders a network magic the way its bytes appear on disk.
func netHex(net wire.BitcoinNet) string {
	var b [magicLen]byte
	binary.LittleEndian.PutUint32(b[:], uint32(net))
	return hex.EncodeToString(b[:])
}
