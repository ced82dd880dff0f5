// Package events defines the boundary between game logic and
// transport. Controllers emit domain events; a dispatcher on the other
// side turns them into client broadcasts.
package events

import "snapquest/internal/model"

// Emitter receives domain events for broadcast. Implementations must
// not block: controllers emit while holding room locks.
type Emitter interface {
	Emit(event model.Event)
}

// NopEmitter discards all events
type NopEmitter struct{}

func (NopEmitter) Emit(model.Event) {}

var _ Emitter = NopEmitter{}
