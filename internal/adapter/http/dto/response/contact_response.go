package response

import "github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"

// ContactResponse is one reachable contact of an installation.
type ContactResponse struct {
	ID       string `json:"contacto_id"`
	Name     string `json:"nombre"`
	Phone    string `json:"telefono"`
	Position string `json:"cargo"`
	Email    string `json:"email"`
}

// InstallationContactsResponse lists the contacts of one installation.
type InstallationContactsResponse struct {
	Installation  string            `json:"instalacion"`
	TotalContacts int               `json:"total_contactos"`
	Contacts      []ContactResponse `json:"contactos"`
}

func FromContacts(installationRole string, contacts []entities.Contact) InstallationContactsResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			ID:       c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			Position: c.Position,
			Email:    c.Email,
		})
	}
	return InstallationContactsResponse{
		Installation:  installationRole,
		TotalContacts: len(out),
		Contacts:      out,
	}
}

// ClientContactResponse is one tenant-side peer account.
type ClientContactResponse struct {
	Email      string `json:"email_login"`
	UID        string `json:"firebase_uid"`
	FullName   string `json:"nombre_completo"`
	RoleID     string `json:"rol_id"`
	ClientRole string `json:"cliente_rol"`
}

// PeerClientsResponse lists the accounts sharing installations with the
// requested user.
type PeerClientsResponse struct {
	Contacts []ClientContactResponse `json:"contactos"`
}

func FromClientContacts(contacts []entities.ClientContact) PeerClientsResponse {
	out := make([]ClientContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ClientContactResponse{
			Email:      c.Email,
			UID:        c.UID,
			FullName:   c.FullName,
			RoleID:     c.RoleID,
			ClientRole: c.ClientRole,
		})
	}
	return PeerClientsResponse{Contacts: out}
}

// WFSAUserResponse is one operator account assigned to an installation.
type WFSAUserResponse struct {
	Email    string `json:"email_login"`
	UID      string `json:"firebase_uid"`
	FullName string `json:"nombre_completo"`
	RoleID   string `json:"rol_id"`
}

// WFSAUsersResponse lists the operator accounts of an installation.
type WFSAUsersResponse struct {
	Users []WFSAUserResponse `json:"usuarios"`
}

func FromWFSAUsers(users []entities.WFSAUser) WFSAUsersResponse {
	out := make([]WFSAUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, WFSAUserResponse{
			Email:    u.Email,
			UID:      u.UID,
			FullName: u.FullName,
			RoleID:   u.RoleID,
		})
	}
	return WFSAUsersResponse{Users: out}
}
