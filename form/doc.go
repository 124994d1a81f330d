// Package form defines the per-form configuration surface: layout mode,
// validation display, density override, keyboard avoidance, separators
// and transition animation. Configurations can be built in code or loaded
// from YAML; only the layout mode and density participate in resolution,
// the rest is threaded through to the rendering layer unchanged.
package form
