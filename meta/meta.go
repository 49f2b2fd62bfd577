// meta/meta.go
package meta

import "time"

// InitialDepth is the depth bound of an agent's first search.
const InitialDepth = 5

// TimeBudget is the wall-clock time an agent may spend on one move.
const TimeBudget = 800 * time.Millisecond

// MaxTurns caps a locally refereed game. A real game never needs more than 60 placements
// plus passes.
const MaxTurns = 200

// AgentPort is the default listen address of the agent server.
const AgentPort = "8080"
