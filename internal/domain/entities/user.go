package entities

import "time"

// UserAccount is the permissions-view projection of an account, including
// the stored identity-provider uid used for claim migration.
type UserAccount struct {
	Email                string
	StoredUID            string
	FullName             string
	ClientRole           string
	RoleID               string
	RoleName             string
	Permissions          PermissionSet
	SeesAllInstallations bool
	Active               bool
}

// UserProfile is the denormalized projection written to the document-store
// sink for the mobile client's directory lookups.
type UserProfile struct {
	Email                string
	UID                  string
	FullName             string
	ClientRole           string
	RoleID               string
	RoleName             string
	SeesAllInstallations bool
	Active               bool
	LastSession          *time.Time
}
