// Package platform models host platforms and their interaction
// capabilities. A Capabilities record is resolved once per platform and
// consumed by every spec resolver that needs to pick a degraded behaviour;
// the Adaptive type carries the shared auto-vs-fixed resolution rule.
package platform
