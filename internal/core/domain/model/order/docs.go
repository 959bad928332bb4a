// Package order contains the Order aggregate: the order header, its owned
// line items, and the lifecycle state machine that couples order status to
// driver assignment. All pricing invariants (line totals, order total) are
// enforced here at construction time; the database stores but never
// re-verifies them.
package order
