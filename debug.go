package fader

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Diagnostics is the side channel for configuration warnings and debug
// traces. Nothing in the engine returns an error for bad per-call input;
// it degrades and reports here instead. A nil *Diagnostics writes warnings
// to stderr.
type Diagnostics struct {
	logger *log.Logger
	debug  bool
	quiet  bool
}

var stderrDiagnostics = &Diagnostics{logger: log.New(os.Stderr, "[fader] ", 0)}

// NewDiagnostics returns Diagnostics writing to w with the "[fader] " prefix.
func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{logger: log.New(w, "[fader] ", 0)}
}

// Discard returns Diagnostics that drops everything.
func Discard() *Diagnostics {
	return &Diagnostics{logger: log.New(io.Discard, "", 0), quiet: true}
}

// SetDebugMode enables or disables Debugf output.
func (d *Diagnostics) SetDebugMode(enabled bool) {
	if d == nil {
		return
	}
	d.debug = enabled
}

// DebugMode reports whether Debugf output is enabled.
func (d *Diagnostics) DebugMode() bool {
	return d != nil && d.debug
}

// Warnf reports a recoverable configuration or caller problem.
func (d *Diagnostics) Warnf(format string, args ...any) {
	if d == nil {
		d = stderrDiagnostics
	}
	if d.quiet {
		return
	}
	d.logger.Printf("warning: "+format, args...)
}

// Debugf prints a trace line when debug mode is on.
func (d *Diagnostics) Debugf(format string, args ...any) {
	if d == nil || !d.debug || d.quiet {
		return
	}
	d.logger.Printf(format, args...)
}

// call runs a user callback. A panic inside fn is reported as a warning and
// swallowed so the remaining callbacks in the same batch still run.
func (d *Diagnostics) call(what string, fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			d.Warnf("%s callback panicked: %v", what, r)
		}
	}()
	fn()
}

// globalDebug mirrors the most recently set Stage debug flag so that node
// operations (which lack a Stage pointer) can check it cheaply.
var globalDebug bool

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("fader debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		stderrDiagnostics.Warnf("tree depth %d exceeds %d (node %q)", depth, debugMaxTreeDepth, n.Name)
	}
}
