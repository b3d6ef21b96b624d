package types

// EntityID identifies an entity in the simulation arenas. IDs are never reused
// within a session, so a stale ID simply fails to resolve.
type EntityID uint64

// NoEntity is the zero ID, used for "no target".
const NoEntity EntityID = 0
