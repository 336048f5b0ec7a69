// Package fragmen provides a catalogue of small, copy-in utility fragments.
// Each fragment lives in its own registry directory, carries its
// documentation in a doc comment, and is delivered by copying its source
// verbatim into a consumer project.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, sqlite/, huh/, glamour/).
package fragmen
