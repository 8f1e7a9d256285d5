package response

import "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"

// TokenUpdateResponse confirms the device token write.
type TokenUpdateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NotificationDispatchResponse confirms a queued push fan-out.
type NotificationDispatchResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Installation string `json:"instalacion_rol"`
	Recipients   int    `json:"destinatarios"`
}

func FromNotificationDispatch(d usecase.NotificationDispatch) NotificationDispatchResponse {
	return NotificationDispatchResponse{
		Success:      true,
		Message:      "Notificación encolada correctamente",
		Installation: d.Installation,
		Recipients:   d.Recipients,
	}
}

// SyncUsersResponse summarizes one profile sync run.
type SyncUsersResponse struct {
	Success      bool     `json:"success"`
	TotalUsers   int      `json:"total_users"`
	Synced       int      `json:"synced"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
}

func FromSyncResult(r usecase.SyncResult) SyncUsersResponse {
	return SyncUsersResponse{
		Success:      r.Errors == 0,
		TotalUsers:   r.Total,
		Synced:       r.Synced,
		Errors:       r.Errors,
		ErrorDetails: r.ErrorDetails,
	}
}
