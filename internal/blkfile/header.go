package blkfile

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Byte widths of the block header fields, in binary-layout order.
const (
	versionLen   = 4
	timestampLen = 4
	bitsLen      = 4
	nonceLen     = 4

	// BlockHeaderLen is the fixed size of a serialized block header.
	BlockHeaderLen = versionLen + 2*chainhash.HashSize + timestampLen + bitsLen + nonceLen
)

// BlockHeader holds the six fixed-width fields at the front of every block
// payload. Numeric fields are stored little-endian on disk; the two digests
// keep their stream order.
type BlockHeader struct {
	Version    uint32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// decodeBlockHeader splits an exactly 80-byte buffer into header fields,
// consuming it front to back in layout order: version first, nonce last.
func decodeBlockHeader(buf []byte) (BlockHeader, error) {
	if len(buf) != BlockHeaderLen {
		return BlockHeader{}, fmt.Errorf("block header must be %d bytes, got %d", BlockHeaderLen, len(buf))
	}

	var h BlockHeader
	off := 0
	h.Version = binary.LittleEndian.Uint32(buf[off : off+versionLen])
	off += versionLen
	copy(h.PrevBlock[:], buf[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	copy(h.MerkleRoot[:], buf[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	h.Timestamp = binary.LittleEndian.Uint32(buf[off : off+timestampLen])
	off += timestampLen
	h.Bits = binary.LittleEndian.Uint32(buf[off : off+bitsLen])
	off += bitsLen
	h.Nonce = binary.LittleEndian.Uint32(buf[off : off+nonceLen])

	return h, nil
}

// PrevBlockHex renders the previous-block digest as stream-order hex.
// chainhash.Hash.String reverses bytes for display and is not used here.
func (h BlockHeader) PrevBlockHex() string {
	return hex.EncodeToString(h.PrevBlock[:])
}

// MerkleRootHex renders the merkle root digest as stream-order hex.
func (h BlockHeader) MerkleRootHex() string {
	return hex.EncodeToString(h.MerkleRoot[:])
}
