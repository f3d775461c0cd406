package ucapi

import (
	"time"
)

// Contact identifies a person attached to an entity (owner, steward, expert).
type Contact struct {
	ID          string `json:"id"                    yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Contacts groups the contact lists carried by most catalog entities.
type Contacts struct {
	Owner   []Contact `json:"owner,omitempty"   yaml:"owner,omitempty"`
	Steward []Contact `json:"steward,omitempty" yaml:"steward,omitempty"`
	Expert  []Contact `json:"expert,omitempty"  yaml:"expert,omitempty"`
}

// ResourceLink is a named URL attached to an entity.
type ResourceLink struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url"  yaml:"url"`
}

// SystemData carries the audit timestamps reported by the service.
type SystemData struct {
	CreatedAt      *time.Time `json:"createdAt,omitempty"      yaml:"createdAt,omitempty"`
	LastModifiedAt *time.Time `json:"lastModifiedAt,omitempty" yaml:"lastModifiedAt,omitempty"`
	CreatedBy      string     `json:"createdBy,omitempty"      yaml:"createdBy,omitempty"`
	LastModifiedBy string     `json:"lastModifiedBy,omitempty" yaml:"lastModifiedBy,omitempty"`
}

// ListResponse represents a paginated list response. An absent continuation
// token means the traversal is complete.
type ListResponse[T any] struct {
	Value             []T    `json:"value"                       yaml:"value"`
	Count             *int   `json:"count,omitempty"             yaml:"count,omitempty"`
	NextLink          string `json:"nextLink,omitempty"          yaml:"nextLink,omitempty"`
	ContinuationToken string `json:"continuationToken,omitempty" yaml:"continuationToken,omitempty"`
}

// EntityStatus is the lifecycle status shared by catalog entities.
type EntityStatus string

// Entity lifecycle statuses.
const (
	StatusDraft     EntityStatus = "Draft"
	StatusPublished EntityStatus = "Published"
	StatusExpired   EntityStatus = "Expired"
	StatusClosed    EntityStatus = "Closed"
)

// GovernanceDomainType classifies a governance domain.
type GovernanceDomainType string

// Governance domain types.
const (
	DomainTypeFunctionalUnit GovernanceDomainType = "FunctionalUnit"
	DomainTypeLineOfBusiness GovernanceDomainType = "LineOfBusiness"
	DomainTypeDataDomain     GovernanceDomainType = "DataDomain"
	DomainTypeRegulatory     GovernanceDomainType = "Regulatory"
	DomainTypeProject        GovernanceDomainType = "Project"
)

// DataProductType classifies a data product.
type DataProductType string

// Data product types.
const (
	DataProductTypeDataset             DataProductType = "Dataset"
	DataProductTypeMasterAndReference  DataProductType = "MasterDataAndReferenceData"
	DataProductTypeBusinessSystem      DataProductType = "BusinessSystemOrApplication"
	DataProductTypeModelTypes          DataProductType = "ModelTypes"
	DataProductTypeDashboardsOrReports DataProductType = "DashboardsOrReports"
	DataProductTypeOperational         DataProductType = "Operational"
)

// UpdateFrequency describes how often a data product is refreshed.
type UpdateFrequency string

// Update frequencies.
const (
	UpdateFrequencyHourly    UpdateFrequency = "Hourly"
	UpdateFrequencyDaily     UpdateFrequency = "Daily"
	UpdateFrequencyWeekly    UpdateFrequency = "Weekly"
	UpdateFrequencyMonthly   UpdateFrequency = "Monthly"
	UpdateFrequencyQuarterly UpdateFrequency = "Quarterly"
	UpdateFrequencyYearly    UpdateFrequency = "Yearly"
)

// KeyResultStatus tracks progress of a key result.
type KeyResultStatus string

// Key result statuses.
const (
	KeyResultStatusBehind  KeyResultStatus = "Behind"
	KeyResultStatusOnTrack KeyResultStatus = "OnTrack"
	KeyResultStatusAtRisk  KeyResultStatus = "AtRisk"
)

// EntityType names a catalog entity kind in relationship operations.
type EntityType string

// Entity types accepted by relationship endpoints.
const (
	EntityTypeTerm                EntityType = "Term"
	EntityTypeDataProduct         EntityType = "DataProduct"
	EntityTypeCriticalDataElement EntityType = "CriticalDataElement"
	EntityTypeDataAsset           EntityType = "DataAsset"
	EntityTypeCustom              EntityType = "Custom"
)

// Collection path segments used by relationship endpoints.
const (
	CollectionTerms                = "terms"
	CollectionDataProducts         = "dataproducts"
	CollectionCriticalDataElements = "criticalDataElements"
)
