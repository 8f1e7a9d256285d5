package entities

// Contact is a reachable party tied to installations through the
// instalacion_contacto join table. Inactive contacts are filtered out at
// query time.
type Contact struct {
	ID       string
	Name     string
	Phone    string
	Position string
	Email    string
}

// ClientContact is a tenant-side account sharing at least one installation
// with the requesting user (messaging module).
type ClientContact struct {
	Email      string
	UID        string
	FullName   string
	RoleID     string
	ClientRole string
}

// WFSAUser is an operator-side account assigned to an installation.
type WFSAUser struct {
	Email    string
	UID      string
	FullName string
	RoleID   string
}
