package request

// FCMTokenRequest carries the device registration token to store for the
// authenticated account.
type FCMTokenRequest struct {
	FCMToken string `json:"fcm_token" binding:"required"`
}
