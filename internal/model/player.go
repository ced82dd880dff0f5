package model

// PlayerID is the transport connection identity of a client. It is not
// stable across reconnects: a rejoining player receives a new PlayerID
// which is spliced into lobby and game state in place of the old one.
type PlayerID string

// Player represents a lobby member
type Player struct {
	ID          PlayerID
	DisplayName string
	IsHost      bool
	IsReady     bool
	// IsConnected distinguishes a temporarily dropped player (eligible
	// for rejoin by name while a game is running) from one who left.
	IsConnected bool
}
