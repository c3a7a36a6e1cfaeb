// Package melee holds the static Melee catalogs used when reporting on
// replays: the character roster and the stage list.
//
// Both lookups are total. Ids outside the known range map to Unknown or
// NotStage instead of failing, because replays legitimately carry debug
// entities and unused stage slots.
package melee
