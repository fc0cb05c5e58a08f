// Package hexdump formats byte ranges for debug-level inspection.
package hexdump

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const bytesPerRow = 16

// Format renders all of p. See FormatN.
func Format(label string, p []byte) string {
	return FormatN(label, p, len(p))
}

// FormatN renders the first n bytes of p as 16-bytes-per-row hex with a
// trailing ASCII gutter; non-printable bytes render as '.'. Offsets are
// four hex digits. A non-empty label becomes a leading line. n == 0 yields
// a zero-length notice, n < 0 a negative-length notice; neither touches p.
// n is clamped to len(p).
func FormatN(label string, p []byte, n int) string {
	var b strings.Builder

	if label != "" {
		b.WriteString(label)
		b.WriteString(":\n")
	}
	if n < 0 {
		fmt.Fprintf(&b, "  NEGATIVE LENGTH: %d\n", n)
		return b.String()
	}
	// Clamp before the zero check so asking for more bytes than an empty
	// buffer holds still yields the zero-length notice, not an empty row.
	if n > len(p) {
		n = len(p)
	}
	if n == 0 {
		b.WriteString("  ZERO LENGTH\n")
		return b.String()
	}

	var ascii [bytesPerRow]byte
	i := 0
	for ; i < n; i++ {
		if i%bytesPerRow == 0 {
			if i != 0 {
				b.WriteString("  ")
				b.Write(ascii[:])
				b.WriteByte('\n')
			}
			fmt.Fprintf(&b, "  %04x ", i)
		}

		fmt.Fprintf(&b, " %02x", p[i])

		c := p[i]
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		ascii[i%bytesPerRow] = c
	}

	// Pad out the last row so the gutter lines up.
	used := i % bytesPerRow
	if used == 0 {
		used = bytesPerRow
	}
	for ; i%bytesPerRow != 0; i++ {
		b.WriteString("   ")
	}
	b.WriteString("  ")
	b.Write(ascii[:used])
	b.WriteByte('\n')

	return b.String()
}

// Dump logs the formatted dump of p at debug level. It formats nothing
// when the level is disabled, so it is cheap to leave in hot paths.
func Dump(ctx context.Context, logger *slog.Logger, label string, p []byte) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.DebugContext(ctx, "hex dump",
		"label", label,
		"dump", Format("", p),
	)
}
