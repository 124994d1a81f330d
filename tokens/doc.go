// Package tokens holds the raw design tokens of the facet design system:
// color ramps, the type scale, spacing and radius points, shadow and stroke
// definitions, and motion presets.
//
// Tokens are semantically meaningless constants. Nothing in this package
// knows about variants, platforms, accessibility, or components; the theme
// package maps tokens onto semantic roles. Tokens never change at runtime
// and are safe to read from any goroutine.
package tokens
