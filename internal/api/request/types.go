package request

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// JoinLobbyRequest is the request body for joining a lobby
type JoinLobbyRequest struct {
	// DisplayName overrides the session display name when set
	DisplayName string `json:"display_name,omitempty"`
}

// RejoinRequest is the request body for rejoining a lobby mid-game
type RejoinRequest struct {
	DisplayName string `json:"display_name"`
}

// SetReadyRequest is the request body for toggling readiness
type SetReadyRequest struct {
	Ready bool `json:"ready"`
}

// UpdateSettingsRequest is the request body for updating game settings
type UpdateSettingsRequest struct {
	Rounds           int `json:"rounds"`
	RoundTimeSeconds int `json:"round_time_seconds"`
}

// SubmitPhotoRequest is the request body for submitting a round photo
type SubmitPhotoRequest struct {
	PhotoRef string `json:"photo_ref"`
}

// ReactionRequest is the request body for sending a reaction
type ReactionRequest struct {
	Icon string `json:"icon"`
}
