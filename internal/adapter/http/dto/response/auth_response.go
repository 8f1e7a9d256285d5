package response

import "github.com/wwdiegovarela/consultas-app-cliente/internal/domain/entities"

// MeResponse tells the mobile client which screens to show.
type MeResponse struct {
	Email                string                 `json:"email"`
	FullName             string                 `json:"nombre_completo"`
	ClientRole           string                 `json:"cliente_rol"`
	RoleID               string                 `json:"rol_id"`
	RoleName             string                 `json:"nombre_rol"`
	Permissions          entities.PermissionSet `json:"permisos"`
	SeesAllInstallations bool                   `json:"ver_todas_instalaciones"`
}

func FromPrincipal(p entities.Principal) MeResponse {
	return MeResponse{
		Email:                p.Email,
		FullName:             p.FullName,
		ClientRole:           p.ClientRole,
		RoleID:               p.RoleID,
		RoleName:             p.RoleName,
		Permissions:          p.Permissions,
		SeesAllInstallations: p.SeesAllInstallations,
	}
}
