package request

// SendMessageRequest selects the installations whose assigned contacts will
// receive the message.
type SendMessageRequest struct {
	Installations []string `json:"instalaciones" binding:"required"`
	Message       string   `json:"mensaje" binding:"required"`
}
