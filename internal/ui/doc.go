// Package ui renders the FraudLens landing experience with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - AppModel: the root model; switches between the two landing variants
//   - Carousel: the auto-rotating testimonial panel (backed by rotation.Rotator)
//   - PricingPanel: the shared tier selector used by both variants
//   - FocusManager: tracks which section of a variant owns navigation keys
//   - Overlay: modal views (tier detail) with a dismiss key
//
// State flows one way: views read the catalog and the selection state,
// render, and translate key presses into selection calls, rotator jumps,
// or intent messages. Nothing in this package mutates the catalog.
package ui
