package response

import "github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"

// SendMessagesResponse confirms how many message records were created.
type SendMessagesResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	TotalSent int    `json:"total_enviados"`
}

// MessageSenderResponse identifies the sender of a received message.
type MessageSenderResponse struct {
	Email  string `json:"email"`
	Name   string `json:"nombre"`
	Client string `json:"cliente"`
}

// MessageInstallationResponse locates the installation of a message.
type MessageInstallationResponse struct {
	Role    string `json:"rol"`
	Address string `json:"direccion"`
	Commune string `json:"comuna"`
}

// ReceivedMessageResponse is one inbound message row.
type ReceivedMessageResponse struct {
	ID           string                      `json:"mensaje_id"`
	Sender       MessageSenderResponse       `json:"remitente"`
	Installation MessageInstallationResponse `json:"instalacion"`
	Body         string                      `json:"mensaje"`
	State        string                      `json:"estado"`
	SentAt       *string                     `json:"fecha_envio"`
	ReadAt       *string                     `json:"fecha_lectura"`
	Read         bool                        `json:"leido"`
}

// ReceivedMessagesResponse wraps the inbox listing.
type ReceivedMessagesResponse struct {
	Success  bool                      `json:"success"`
	Total    int                       `json:"total"`
	Messages []ReceivedMessageResponse `json:"mensajes"`
}

func FromReceivedMessages(messages []entities.ReceivedMessage) ReceivedMessagesResponse {
	out := make([]ReceivedMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ReceivedMessageResponse{
			ID: m.ID,
			Sender: MessageSenderResponse{
				Email:  m.SenderEmail,
				Name:   m.SenderName,
				Client: m.SenderClient,
			},
			Installation: MessageInstallationResponse{
				Role:    m.InstallationRole,
				Address: m.InstallationAddress,
				Commune: m.InstallationCommune,
			},
			Body:   m.Body,
			State:  m.State,
			SentAt: isoTime(m.SentAt),
			ReadAt: isoTime(m.ReadAt),
			Read:   m.Read,
		})
	}
	return ReceivedMessagesResponse{
		Success:  true,
		Total:    len(out),
		Messages: out,
	}
}
