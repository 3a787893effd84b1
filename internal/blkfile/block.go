package blkfile

import (
	"encoding/binary"
	"fmt"

	"github.com/goodnatureofminers/blockfinder7000/pkg/safe"
)

// entryCountLen is the byte width of the count field after the header.
const entryCountLen = 4

// Block is one fully decoded record: the 80-byte header, the entry count
// and the rest of the payload kept as an opaque blob.
type Block struct {
	Header     BlockHeader
	entryCount [entryCountLen]byte
	Payload    []byte
}

// decodeBlock consumes one record body of payloadLen bytes from the cursor.
// payloadLen comes verbatim from the record's framing unit and must cover at
// least the header and the entry count.
func decodeBlock(c *Cursor, payloadLen uint32) (Block, error) {
	const fixed = BlockHeaderLen + entryCountLen
	if payloadLen < fixed {
		return Block{}, fmt.Errorf("payload length %d shorter than %d fixed bytes: %w",
			payloadLen, fixed, ErrInsufficientData)
	}

	raw, err := c.Take(BlockHeaderLen)
	if err != nil {
		return Block{}, fmt.Errorf("block header: %w", err)
	}
	header, err := decodeBlockHeader(raw)
	if err != nil {
		return Block{}, err
	}

	b := Block{Header: header}
	count, err := c.Take(entryCountLen)
	if err != nil {
		return Block{}, fmt.Errorf("entry count: %w", err)
	}
	copy(b.entryCount[:], count)

	rest, err := safe.Int(payloadLen - fixed)
	if err != nil {
		return Block{}, fmt.Errorf("entry data size: %w", err)
	}
	b.Payload, err = c.Take(rest)
	if err != nil {
		return Block{}, fmt.Errorf("entry data: %w", err)
	}

	return b, nil
}

// EntryCount interprets the count field from its 4 raw bytes in stream
// order, matching the reference decoder for this format.
func (b Block) EntryCount() uint32 {
	return binary.BigEndian.Uint32(b.entryCount[:])
}
