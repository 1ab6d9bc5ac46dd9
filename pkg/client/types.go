package client

// Pagination is the cursor block attached to list responses. NextCursor is
// opaque; absence means the page was the last one.
type Pagination struct {
	NextCursor string `json:"nextCursor,omitempty"`
	TotalItems int    `json:"totalItems,omitempty"`
}

// page is the wire shape of a paginated list response.
type page[T any] struct {
	Data       []T         `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ListResult is one page of a cursor-paginated listing.
type ListResult[T any] struct {
	Items      []T
	NextCursor string
	TotalItems int
}

func resultFrom[T any](p page[T]) *ListResult[T] {
	r := &ListResult[T]{Items: p.Data}
	if p.Pagination != nil {
		r.NextCursor = p.Pagination.NextCursor
		r.TotalItems = p.Pagination.TotalItems
	}
	return r
}

// affectedResponse is the wire shape of mutating actions (mitigate,
// isolate, reconnect). Affected counts how many entities matched the filter.
type affectedResponse struct {
	Data struct {
		Affected int `json:"affected"`
	} `json:"data"`
}

// dataEnvelope wraps single-object responses.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// Threat is a detected threat. The console nests most fields under
// per-concern info blocks, any of which may be absent.
type Threat struct {
	ID                 string              `json:"id"`
	AgentDetectionInfo *AgentDetectionInfo `json:"agentDetectionInfo,omitempty"`
	AgentRealtimeInfo  *AgentRealtimeInfo  `json:"agentRealtimeInfo,omitempty"`
	ThreatInfo         *ThreatInfo         `json:"threatInfo,omitempty"`
}

// ThreatInfo holds detection details for a threat.
type ThreatInfo struct {
	ThreatName       string `json:"threatName,omitempty"`
	Classification   string `json:"classification,omitempty"`
	ConfidenceLevel  string `json:"confidenceLevel,omitempty"`
	MitigationStatus string `json:"mitigationStatus,omitempty"`
	AnalystVerdict   string `json:"analystVerdict,omitempty"`
	CreatedAt        string `json:"createdAt,omitempty"`
	FilePath         string `json:"filePath,omitempty"`
	Storyline        string `json:"storyline,omitempty"`
	SHA1             string `json:"sha1,omitempty"`
	SHA256           string `json:"sha256,omitempty"`
	MD5              string `json:"md5,omitempty"`
	FileSize         int64  `json:"fileSize,omitempty"`
}

// AgentRealtimeInfo is the current state of the agent a threat was seen on.
type AgentRealtimeInfo struct {
	AgentID           string `json:"agentId,omitempty"`
	AgentComputerName string `json:"agentComputerName,omitempty"`
	AgentOSType       string `json:"agentOsType,omitempty"`
}

// AgentDetectionInfo is the agent state captured at detection time.
type AgentDetectionInfo struct {
	AgentOsName               string `json:"agentOsName,omitempty"`
	AgentLastLoggedInUserName string `json:"agentLastLoggedInUserName,omitempty"`
	SiteID                    string `json:"siteId,omitempty"`
	SiteName                  string `json:"siteName,omitempty"`
}

// MitigationAction is a remedial operation applied to a threat.
type MitigationAction string

const (
	MitigationKill                MitigationAction = "kill"
	MitigationQuarantine          MitigationAction = "quarantine"
	MitigationRemediate           MitigationAction = "remediate"
	MitigationRollbackRemediation MitigationAction = "rollback-remediation"
)

// Agent is an endpoint running the SentinelOne agent.
type Agent struct {
	ID                   string             `json:"id"`
	UUID                 string             `json:"uuid,omitempty"`
	ComputerName         string             `json:"computerName,omitempty"`
	Domain               string             `json:"domain,omitempty"`
	SiteName             string             `json:"siteName,omitempty"`
	GroupName            string             `json:"groupName,omitempty"`
	OSName               string             `json:"osName,omitempty"`
	OSType               string             `json:"osType,omitempty"`
	AgentVersion         string             `json:"agentVersion,omitempty"`
	IsActive             bool               `json:"isActive,omitempty"`
	IsDecommissioned     bool               `json:"isDecommissioned,omitempty"`
	Infected             bool               `json:"infected,omitempty"`
	NetworkStatus        string             `json:"networkStatus,omitempty"`
	LastActiveDate       string             `json:"lastActiveDate,omitempty"`
	LastLoggedInUserName string             `json:"lastLoggedInUserName,omitempty"`
	ExternalIP           string             `json:"externalIp,omitempty"`
	NetworkInterfaces    []NetworkInterface `json:"networkInterfaces,omitempty"`
}

// NetworkInterface is one NIC reported by an agent.
type NetworkInterface struct {
	Name     string   `json:"name,omitempty"`
	Physical string   `json:"physical,omitempty"`
	Inet     []string `json:"inet,omitempty"`
}

// Site is a management console site.
type Site struct {
	ID             string `json:"id"`
	Name           string `json:"name,omitempty"`
	State          string `json:"state,omitempty"`
	SiteType       string `json:"siteType,omitempty"`
	SKU            string `json:"sku,omitempty"`
	AccountID      string `json:"accountId,omitempty"`
	AccountName    string `json:"accountName,omitempty"`
	ActiveLicenses int    `json:"activeLicenses,omitempty"`
	TotalLicenses  int    `json:"totalLicenses,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	Expiration     string `json:"expiration,omitempty"`
	IsDefault      bool   `json:"isDefault,omitempty"`
	Description    string `json:"description,omitempty"`
	Creator        string `json:"creator,omitempty"`
}

// SiteList is the sites listing payload; the console nests the sites under
// a fleet-wide license rollup.
type SiteList struct {
	AllSites struct {
		ActiveLicenses int `json:"activeLicenses"`
		TotalLicenses  int `json:"totalLicenses"`
	} `json:"allSites"`
	Sites []Site `json:"sites"`
}

// Group is an agent group within a site.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	SiteID      string `json:"siteId,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
	Type        string `json:"type,omitempty"`
	Rank        int    `json:"rank,omitempty"`
	TotalAgents int    `json:"totalAgents,omitempty"`
	IsDefault   bool   `json:"isDefault,omitempty"`
	Inherits    bool   `json:"inherits,omitempty"`
	Creator     string `json:"creator,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Activity is one audit-trail entry.
type Activity struct {
	ID                   string `json:"id"`
	ActivityType         int    `json:"activityType,omitempty"`
	PrimaryDescription   string `json:"primaryDescription,omitempty"`
	SecondaryDescription string `json:"secondaryDescription,omitempty"`
	CreatedAt            string `json:"createdAt,omitempty"`
	SiteID               string `json:"siteId,omitempty"`
	SiteName             string `json:"siteName,omitempty"`
	AccountName          string `json:"accountName,omitempty"`
	AgentID              string `json:"agentId,omitempty"`
	ThreatID             string `json:"threatId,omitempty"`
	GroupID              string `json:"groupId,omitempty"`
	UserID               string `json:"userId,omitempty"`
}

// ActivityType describes one numeric activity-type code.
type ActivityType struct {
	ID                  int    `json:"id"`
	Action              string `json:"action,omitempty"`
	DescriptionTemplate string `json:"descriptionTemplate,omitempty"`
}

// Exclusion is an allowlist entry. Blocklist (restriction) entries share
// the same shape.
type Exclusion struct {
	ID          string   `json:"id"`
	Type        string   `json:"type,omitempty"`
	Value       string   `json:"value,omitempty"`
	OSType      string   `json:"osType,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Source      string   `json:"source,omitempty"`
	ScopeName   string   `json:"scopeName,omitempty"`
	Description string   `json:"description,omitempty"`
	UserName    string   `json:"userName,omitempty"`
	SiteIDs     []string `json:"siteIds,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// AppRisk is a CVE finding from application management.
type AppRisk struct {
	ID                     string  `json:"id"`
	CVEID                  string  `json:"cveId,omitempty"`
	Severity               string  `json:"severity,omitempty"`
	RiskScore              float64 `json:"riskScore,omitempty"`
	ApplicationName        string  `json:"applicationName,omitempty"`
	ApplicationVendor      string  `json:"applicationVendor,omitempty"`
	ExploitedInTheWild     bool    `json:"exploitedInTheWild,omitempty"`
	MitigationStatus       string  `json:"mitigationStatus,omitempty"`
	PublishedDate          string  `json:"publishedDate,omitempty"`
	AffectedEndpointsCount int     `json:"affectedEndpointsCount,omitempty"`
}

// AppInventoryItem is one installed application across the fleet.
type AppInventoryItem struct {
	ID                       string `json:"id"`
	ApplicationName          string `json:"applicationName,omitempty"`
	ApplicationVendor        string `json:"applicationVendor,omitempty"`
	OSType                   string `json:"osType,omitempty"`
	EndpointsCount           int    `json:"endpointsCount,omitempty"`
	ApplicationVersionsCount int    `json:"applicationVersionsCount,omitempty"`
	RiskLevel                string `json:"riskLevel,omitempty"`
}

// Tag is a scope tag (firewall, network-quarantine, device-inventory).
type Tag struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Description string `json:"description,omitempty"`
	ScopeName   string `json:"scopeName,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// DeviceControlEvent is one USB/Bluetooth device-control event.
type DeviceControlEvent struct {
	ID               string `json:"id"`
	AgentID          string `json:"agentId,omitempty"`
	EventType        string `json:"eventType,omitempty"`
	EventTime        string `json:"eventTime,omitempty"`
	Interface        string `json:"interface,omitempty"`
	AccessPermission string `json:"accessPermission,omitempty"`
	VendorID         string `json:"vendorId,omitempty"`
	ProductID        string `json:"productId,omitempty"`
	DeviceName       string `json:"deviceName,omitempty"`
	DeviceClass      string `json:"deviceClass,omitempty"`
	RuleName         string `json:"ruleName,omitempty"`
	ComputerName     string `json:"computerName,omitempty"`
	SiteName         string `json:"siteName,omitempty"`
}

// RangerDevice is a device discovered by Ranger network inventory.
type RangerDevice struct {
	ID           string   `json:"id"`
	LocalIP      string   `json:"localIp,omitempty"`
	ExternalIP   string   `json:"externalIp,omitempty"`
	MACAddress   string   `json:"macAddress,omitempty"`
	OSName       string   `json:"osName,omitempty"`
	OSType       string   `json:"osType,omitempty"`
	DeviceType   string   `json:"deviceType,omitempty"`
	ManagedState string   `json:"managedState,omitempty"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Hostnames    []string `json:"hostnames,omitempty"`
	FirstSeen    string   `json:"firstSeen,omitempty"`
	LastSeen     string   `json:"lastSeen,omitempty"`
	SiteName     string   `json:"siteName,omitempty"`
	NetworkName  string   `json:"networkName,omitempty"`
}

// IOC is a threat-intelligence indicator of compromise.
type IOC struct {
	ID           string `json:"id"`
	Type         string `json:"type,omitempty"`
	Value        string `json:"value,omitempty"`
	Severity     string `json:"severity,omitempty"`
	Source       string `json:"source,omitempty"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	Method       string `json:"method,omitempty"`
	Creator      string `json:"creator,omitempty"`
	CreationTime string `json:"creationTime,omitempty"`
	ValidUntil   string `json:"validUntil,omitempty"`
}

// HashReputation is the console's verdict for a file hash. Rank runs from
// 0 (benign) to 10 (malicious).
type HashReputation struct {
	Rank int `json:"rank"`
}
