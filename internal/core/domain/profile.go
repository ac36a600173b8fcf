package domain

// UserProfile is the canonical identity of the authenticated caller.
// DisplayName and Email may be empty; ID is always set.
type UserProfile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// HostingMode identifies which flavour of Azure DevOps a server URL addresses.
type HostingMode string

const (
	// HostingCloud is the multi-tenant service (dev.azure.com, *.visualstudio.com).
	HostingCloud HostingMode = "cloud"
	// HostingOnPremises is a self-hosted Azure DevOps Server collection.
	HostingOnPremises HostingMode = "on-premises"
)

// Endpoint is a fully qualified profile request URL together with the
// response shape it returns.
type Endpoint struct {
	URL  string
	Mode HostingMode
}
