// Package entities holds the game state tree shared by the engine, the
// orchestrator and the snapshot repositories.
//
// JSON field names are camelCase so snapshots written by earlier clients
// decode unchanged. Fields added by later schema revisions are optional and
// defaulted by GameState.Normalize.
package entities
