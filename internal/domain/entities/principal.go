package entities

// Capability is the closed set of permissions gating endpoint access. Each
// capability maps to exactly one boolean on PermissionSet; handlers never
// check raw booleans directly.
type Capability string

const (
	CapViewCoverage         Capability = "view-coverage"
	CapViewSurveys          Capability = "view-surveys"
	CapSendMessages         Capability = "send-messages"
	CapViewCompanies        Capability = "view-companies"
	CapViewGlobalMetrics    Capability = "view-global-metrics"
	CapViewWorkers          Capability = "view-workers"
	CapViewReceivedMessages Capability = "view-received-messages"
	CapAdmin                Capability = "admin"
)

// PermissionSet mirrors the v_permisos_usuarios row for an account.
type PermissionSet struct {
	ViewCoverage         bool `json:"puede_ver_cobertura"`
	ViewSurveys          bool `json:"puede_ver_encuestas"`
	SendMessages         bool `json:"puede_enviar_mensajes"`
	ViewCompanies        bool `json:"puede_ver_empresas"`
	ViewGlobalMetrics    bool `json:"puede_ver_metricas_globales"`
	ViewWorkers          bool `json:"puede_ver_trabajadores"`
	ViewReceivedMessages bool `json:"puede_ver_mensajes_recibidos"`
	Admin                bool `json:"es_admin"`
}

// Principal is the resolved, permission-bearing caller. Built once per
// request from a verified token plus one permissions lookup; immutable for
// the request's duration and never cached across requests.
type Principal struct {
	UID                  string
	Email                string
	FullName             string
	ClientRole           string
	RoleID               string
	RoleName             string
	Permissions          PermissionSet
	SeesAllInstallations bool
	EmailVerified        bool
}

func (p Principal) Has(c Capability) bool {
	switch c {
	case CapViewCoverage:
		return p.Permissions.ViewCoverage
	case CapViewSurveys:
		return p.Permissions.ViewSurveys
	case CapSendMessages:
		return p.Permissions.SendMessages
	case CapViewCompanies:
		return p.Permissions.ViewCompanies
	case CapViewGlobalMetrics:
		return p.Permissions.ViewGlobalMetrics
	case CapViewWorkers:
		return p.Permissions.ViewWorkers
	case CapViewReceivedMessages:
		return p.Permissions.ViewReceivedMessages
	case CapAdmin:
		return p.Permissions.Admin
	default:
		return false
	}
}

// RoleClient is the tenant-side role; everything else is an operator role.
const RoleClient = "CLIENTE"

// wfsaOperatorRoles are the operator-side roles that may see individual
// surveys addressed to other recipients.
var wfsaOperatorRoles = map[string]bool{
	"ADMIN_WFSA":      true,
	"SUBGERENTE_WFSA": true,
	"JEFE_WFSA":       true,
	"SUPERVISOR_WFSA": true,
}

func (p Principal) IsClient() bool { return p.RoleID == RoleClient }

func (p Principal) IsWFSAOperator() bool { return wfsaOperatorRoles[p.RoleID] }
