package request

// SendNotificationRequest triggers a push fan-out to the accounts scoped to
// one installation, excluding the sender.
type SendNotificationRequest struct {
	InstallationRole string            `json:"instalacion_rol" binding:"required"`
	Title            string            `json:"titulo" binding:"required"`
	Body             string            `json:"cuerpo"`
	Data             map[string]string `json:"data"`
}
