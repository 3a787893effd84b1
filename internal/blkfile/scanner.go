package blkfile

import (
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"
)

// ErrNotFound reports that the stream was exhausted before a record at the
// requested height was reached.
var ErrNotFound = errors.New("block not found")

// Result pairs a record's framing unit with its decoded body.
type Result struct {
	Frame FrameHeader
	Block Block
}

// Scanner locates a block by height with a sequential scan over a raw blk
// stream. Records before the target are decoded and discarded anyway; the
// payload length must be consumed to keep the cursor aligned on the next
// framing unit.
type Scanner struct {
	magic   wire.BitcoinNet
	metrics Metrics
	logger  *zap.Logger
}

// NewScanner builds a Scanner that accepts records carrying the given
// network magic.
func NewScanner(magic wire.BitcoinNet, metrics Metrics, logger *zap.Logger) (*Scanner, error) {
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		magic:   magic,
		metrics: metrics,
		logger:  logger.Named("scanner"),
	}, nil
}

// FindBlock scans buf from the beginning and returns the record at the
// requested zero-based height. It fails with ErrNetworkMismatch on the
// first record whose magic differs from the configured network, with
// ErrInsufficientData on any truncated field, and with ErrNotFound when the
// stream ends before the height is reached. A short read mid-record is
// never treated as end of stream.
func (s *Scanner) FindBlock(buf []byte, height uint64) (*Result, error) {
	started := time.Now()
	res, err := s.scan(buf, height)
	s.metrics.ObserveScan(err, height, started)
	return res, err
}

func (s *Scanner) scan(buf []byte, height uint64) (*Result, error) {
	c := NewCursor(buf)
	for next := uint64(0); !c.Empty(); next++ {
		started := time.Now()
		frame, block, err := s.decodeRecord(c, next)
		s.metrics.ObserveRecord(err, started)
		if err != nil {
			s.logger.Error("decode record failed", zap.Uint64("height", next), zap.Error(err))
			return nil, err
		}

		if next == height {
			s.logger.Debug("located block",
				zap.Uint64("height", next),
				zap.Uint32("size", frame.PayloadLength()),
			)
			return &Result{Frame: frame, Block: block}, nil
		}
	}
	return nil, fmt.Errorf("height %d: %w", height, ErrNotFound)
}

func (s *Scanner) decodeRecord(c *Cursor, height uint64) (FrameHeader, Block, error) {
	frame, err := decodeFrameHeader(c, height)
	if err != nil {
		return FrameHeader{}, Block{}, err
	}
	if err := frame.ValidateNetwork(s.magic); err != nil {
		return FrameHeader{}, Block{}, err
	}
	block, err := decodeBlock(c, frame.PayloadLength())
	if err != nil {
		return FrameHeader{}, Block{}, fmt.Errorf("record %d: %w", height, err)
	}
	return frame, block, nil
}
