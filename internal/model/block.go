// Package model defines presentation-facing domain models.
package model

import "time"

// BlockReport describes one decoded block ready for display.
type BlockReport struct {
	Network        string
	Height         uint64
	Size           uint32
	Version        uint32
	PrevBlock      string
	MerkleRoot     string
	Timestamp      time.Time
	Bits           uint32
	Nonce          uint32
	EntryCount     uint32
	PayloadBytes   uint32
	PayloadPreview string
}
