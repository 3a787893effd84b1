// Package render contains terminal formatting for decoded blocks.
//
// Decoding and rendering are kept apart: this package consumes the flat
// model.BlockReport and never touches raw stream bytes.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/goodnatureofminers/blockfinder7000/internal/model"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

// FormatBlock writes the human-readable report for one located block.
func FormatBlock(w io.Writer, r model.BlockReport) {
	fmt.Fprintf(w, "%s\n\n", green("> Block Record"))
	fmt.Fprintf(w, "  Height       : %d\n", r.Height)
	fmt.Fprintf(w, "  Network      : %s\n", r.Network)
	fmt.Fprintf(w, "  Size         : %d\n", r.Size)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", cyan("Header:"))
	fmt.Fprintf(w, "  Version      : %d\n", r.Version)
	fmt.Fprintf(w, "  Prev Block   : %s\n", r.PrevBlock)
	fmt.Fprintf(w, "  Merkle Root  : %s\n", r.MerkleRoot)
	fmt.Fprintf(w, "  Timestamp    : %s\n", r.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "  Target       : 0x%08x\n", r.Bits)
	fmt.Fprintf(w, "  Nonce        : %d\n", r.Nonce)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", cyan("Entries:"))
	fmt.Fprintf(w, "  Entry Count  : %d\n", r.EntryCount)
	fmt.Fprintf(w, "  Entry Data   : %d bytes", r.PayloadBytes)
	if r.PayloadPreview != "" {
		fmt.Fprintf(w, " (%s)", r.PayloadPreview)
	}
	fmt.Fprintln(w)
}
