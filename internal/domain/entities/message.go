package entities

import "time"

// MessageState is the outbound message lifecycle. This service only creates
// rows in 'pendiente'; delivery happens downstream and is out of scope.
type MessageState string

const MessageStatePending MessageState = "pendiente"

// Message is a locally-created record of an outbound WhatsApp-style notice.
// Never updated after creation.
type Message struct {
	ID               string
	SenderEmail      string
	ClientRole       string
	InstallationRole string
	ContactID        string
	Body             string
	State            MessageState
	SentAt           time.Time
}

// ReceivedMessage is one row of the v_mensajes_recibidos view, addressed to
// an operator-side account.
type ReceivedMessage struct {
	ID                  string
	SenderEmail         string
	SenderName          string
	SenderClient        string
	InstallationRole    string
	InstallationAddress string
	InstallationCommune string
	Body                string
	State               string
	SentAt              *time.Time
	ReadAt              *time.Time
	Read                bool
}
