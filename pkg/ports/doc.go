/*
Package ports defines the interfaces between the step engine and its adapters.

# Key Interfaces

  - Engine: what driving adapters (HTTP, MCP, CLI) call to run algorithms.
  - RunCache: optional memoization of finished runs (memory or Redis).
  - DistributedLocker: serializes cache fills of the same run across replicas.
*/
package ports
