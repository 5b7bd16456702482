package generators

import (
	"fmt"
	"strings"
)

// buffer is an indentation tracking text sink for generated source.
// It performs no validation and cannot fail, emitted source is checked
// as a whole by the dispatcher instead.
type buffer struct {
	sb    strings.Builder
	depth int
}

// Line writes depth indent units, the formatted text and a newline.
func (b *buffer) Line(format string, a ...interface{}) {
	b.sb.WriteString(strings.Repeat("\t", b.depth))
	fmt.Fprintf(&b.sb, format, a...)
	b.sb.WriteByte('\n')
}

// Blank writes a single empty line ignoring the current depth.
func (b *buffer) Blank() {
	b.sb.WriteByte('\n')
}

// In increments the nesting depth of following lines.
func (b *buffer) In() {
	b.depth++
}

// Out decrements the nesting depth of following lines.
func (b *buffer) Out() {
	if b.depth > 0 {
		b.depth--
	}
}

func (b *buffer) String() string {
	return b.sb.String()
}
