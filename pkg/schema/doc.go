// Package schema defines the wire contract of the step visualization service.
//
// A run request names an algorithm and carries a graph as node identifiers
// plus [u, v, w] edge triples. A run response is a JSON array of steps, each
// holding node states keyed by stringified index, edge states keyed by
// "min-max" and a message:
//
//	[
//	  {
//	    "nodes": {"0": {"color": "#f59e0b", "text": "0"}, "1": {"color": "#60a5fa", "text": "∞"}},
//	    "edges": {"0-1": {"color": "#94a3b8", "width": 3}},
//	    "message": "Starting Dijkstra's Algorithm from node A."
//	  }
//	]
//
// This is the only package that knows the hex color constants; the domain
// works with enumerated color tokens.
package schema
