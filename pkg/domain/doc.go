/*
Package domain contains the core models of the step visualization engine.

It defines the graph being explored and the visual state recorded at every
step of an algorithm run. The package is pure: no I/O, no serialization, no
hex color strings. Wire formats live in pkg/schema.

# Key Entities

  - Graph: an immutable, validated undirected weighted graph.
  - Snapshot: the full visual state of every node and edge plus a message.
  - Sequence: the ordered, append-only list of snapshots produced by a run.
  - NodeColor / EdgeColor: enumerated visual roles, mapped to colors at the edge.
*/
package domain
