// Package fader is a show/hide transition engine for tree-structured visual
// objects.
//
// A [Fader] owns the visibility of one [Target]: its show (In) and hide (Out)
// settings, its in-flight animations and the cancellation policy between
// them. A [Manager] indexes faders by name and tag and fans calls out to
// everything an [Identifier] resolves to. Animations are driven by a [Clock]
// that the host ticks once per frame; eased progress comes from [gween].
//
// # Quick start
//
// [Stage] bundles a node tree, a clock and a manager:
//
//	stage := fader.NewStage()
//	panel := fader.NewAnchoredNode("panel", fader.RectFull)
//	stage.Root().AddChild(panel)
//
//	stage.Manager().NewFader(panel, fader.FaderOptions{Tags: []string{"ui"}})
//	stage.Manager().Hide(fader.Tag("ui"), fader.Options{}.WithTime(0.3), nil)
//
//	for !done {
//		stage.Update(1.0 / 60)
//	}
//
// To preview a stage in a window, see the ebitenrun package. The cmd/fader
// tool runs YAML configs and scripts headless or in a window.
//
// # Modes
//
// Each direction animates one property: [ModeFade] (alpha, optionally
// recursive), [ModeScale] (local or world scale) or [ModeSlide] (the left and
// right screen anchors). When show and hide use different modes, starting
// an animation snaps the other mode back to its shown value.
//
// # Cancellation
//
// Every Show, Hide or Toggle applies a [CancelPolicy] first: [CancelAll]
// stops everything in flight, [CancelActive] only animations past their
// delay, [CancelNone] nothing.
//
// # Configuration
//
// [LoadConfig] reads YAML describing nodes and faders; [Config.Apply] builds
// them on a stage. [LoadScript] reads a frame-stepped list of manager calls.
//
// # Diagnostics
//
// Bad per-call input never returns an error. It degrades to a sensible
// default and is reported through [Diagnostics] as a "[fader] warning:" line.
// Debug traces are enabled with [Stage.SetDebugMode].
//
// [gween]: https://github.com/tanema/gween
package fader
