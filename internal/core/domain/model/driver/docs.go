// Package driver contains the Driver aggregate: identity and vehicle profile,
// the Available/Busy/Offline dispatch status coupled to order state, delivery
// statistics, and the soft-delete marker used by the tiered deletion policy.
package driver
