// Package ownership contains the many-to-many association between users and
// restaurants. Each Relationship carries a role (owner, manager, staff) and a
// primary flag marking the single authoritative owner of a restaurant.
//
// The per-restaurant invariants — unique (restaurant, owner) pair, at most one
// primary, sole primary not removable — are enforced by the command handlers
// in the application layer, which coordinate multiple relationships within a
// single unit of work.
package ownership
