// Package kernel contains shared value objects used across aggregate boundaries.
// It currently provides the UUID identifier type that every entity in the
// fulfillment domain uses for identity and cross-entity references.
package kernel
