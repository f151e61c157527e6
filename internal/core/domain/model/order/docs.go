// Package order contains the medicine order aggregate: the Order root, its
// line items, and the lifecycle status state machine with its transition
// table. All mutations go through aggregate methods so the pricing and
// pharmacy-assignment invariants hold at every step.
package order
