// Package slptool decodes Slippi replays by running the peppi `slp`
// command-line tool and mapping its JSON dump onto replay.Match.
//
// Only the game start (stage, ports, characters, netplay identity) and game
// end (placements) sections are consumed; frame data is ignored. Ports are
// accepted either as 0-based integers or as the "P1".."P4" labels peppi emits.
//
// Primary entry point:
//   - Client.Decode: executes the tool and returns the parsed match
package slptool
