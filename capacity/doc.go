// Package capacity turns "slot s accepts up to k panelists" into the plain
// one-to-one semantics of a bipartite matching.
//
// Each logical slot is expanded into exactly k slot-copy vertices that all
// carry the slot's index. Declaring that a panelist is available for a slot
// connects the panelist to every copy of it, so all copies of one slot share
// identical adjacency from construction on. A one-to-one matching can then
// use at most k copies of a slot, one per matched panelist:
//
//	panelist ──┬── slot#0 copy 0
//	           ├── slot#0 copy 1      (k = 3)
//	           └── slot#0 copy 2
//
// Network is the builder; Network.Solve runs Hopcroft–Karp and reads the
// matching back as one logical slot index per panelist.
package capacity
