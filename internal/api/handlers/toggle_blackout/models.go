package toggle_blackout

// ToggleBlackoutRequest HTTP request model
type ToggleBlackoutRequest struct {
	SlotStart string `json:"slotStart"` // RFC3339, начало часа
}
