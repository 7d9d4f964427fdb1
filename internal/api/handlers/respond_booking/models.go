package respond_booking

// RespondBookingRequest HTTP request model
type RespondBookingRequest struct {
	Decision string `json:"decision"` // confirmed | rejected
}
