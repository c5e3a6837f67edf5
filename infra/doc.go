// Package infra contains technical adapters around the heat scheduler:
// schedule persistence, roster loading, MQTT publication and metrics
// exporters. These packages depend only on the types defined in core.
package infra
