// Package motion models the scroll-driven animation of landing page sections.
//
// A section owns a set of tracks. Each track maps a scalar signal (the raw
// document scroll offset or the section's own scroll progress) through a
// piecewise-linear Range and optionally smooths the result with a Spring.
// Entrance animations are gated by a one-shot Latch that fires the first time
// the section intersects the viewport.
//
// The same model is serialised to the browser, where motion.js replays it on
// every animation frame. On the server it provides the first-frame values
// rendered as inline styles.
package motion
