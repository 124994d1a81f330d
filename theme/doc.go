// Package theme implements the facet resolution pipeline: raw design
// tokens combined with an accessibility policy, a density tier, and a
// platform capability record produce a fully resolved, immutable Theme,
// and per-component resolvers turn a Theme plus variant/size/state
// parameters into concrete rendering specs.
//
// Every function in this package is pure. Resolution takes its full input
// as value parameters, returns fresh immutable values, performs no I/O,
// and reads no ambient state, so calls are safe from any number of
// goroutines without locking. There is no error path: out-of-range enum
// inputs clamp to their nearest valid neighbour.
//
// A Theme is a snapshot. When any upstream input changes (variant, policy,
// density, capabilities), resolve a new Theme and re-resolve dependent
// specs; nothing is mutated in place.
package theme
