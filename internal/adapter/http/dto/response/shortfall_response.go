package response

import "github.com/wwdiegovarela/consultas-app-cliente/internal/usecase"

// ShortfallTotalResponse is the headline PPC count.
type ShortfallTotalResponse struct {
	Total int64 `json:"total_ppc"`
}

// InstallationShortfallsResponse groups the PPC windows of one installation.
type InstallationShortfallsResponse struct {
	Installation string                   `json:"instalacion"`
	Total        int64                    `json:"total_ppc"`
	ByShift      []ShortfallGroupResponse `json:"ppc_por_turno"`
}

// ShortfallListResponse wraps all installations with shortfalls.
type ShortfallListResponse struct {
	TotalInstallations int                              `json:"total_instalaciones"`
	Installations      []InstallationShortfallsResponse `json:"instalaciones"`
}

func FromInstallationShortfalls(d usecase.InstallationShortfalls) InstallationShortfallsResponse {
	return InstallationShortfallsResponse{
		Installation: d.Installation,
		Total:        d.Total,
		ByShift:      fromShortfallGroups(d.Groups, false),
	}
}

func FromAllInstallationShortfalls(details []usecase.InstallationShortfalls) ShortfallListResponse {
	out := make([]InstallationShortfallsResponse, 0, len(details))
	for _, d := range details {
		out = append(out, FromInstallationShortfalls(d))
	}
	return ShortfallListResponse{
		TotalInstallations: len(out),
		Installations:      out,
	}
}
