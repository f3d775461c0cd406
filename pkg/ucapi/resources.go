package ucapi

import (
	"time"
)

// GovernanceDomain represents a governance domain.
type GovernanceDomain struct {
	ID          string               `json:"id"                  yaml:"id"`
	Name        string               `json:"name"                yaml:"name"`
	Description string               `json:"description"         yaml:"description"`
	Type        GovernanceDomainType `json:"type"                yaml:"type"`
	Status      EntityStatus         `json:"status"              yaml:"status"`
	ParentID    string               `json:"parentId,omitempty"  yaml:"parentId,omitempty"`
	Contacts    Contacts             `json:"contacts,omitempty"  yaml:"contacts,omitempty"`
	CreatedAt   *time.Time           `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt   *time.Time           `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// GovernanceDomainCreateRequest is the payload for creating a governance domain.
type GovernanceDomainCreateRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Type        GovernanceDomainType `json:"type"`
	Status      EntityStatus         `json:"status,omitempty"`
	ParentID    string               `json:"parentId,omitempty"`
	Contacts    *Contacts            `json:"contacts,omitempty"`
}

// GovernanceDomainUpdateRequest is the payload for updating a governance domain.
// The service replaces the entity, so all fields to keep must be present.
type GovernanceDomainUpdateRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Type        GovernanceDomainType `json:"type"`
	Status      EntityStatus         `json:"status,omitempty"`
	ParentID    string               `json:"parentId,omitempty"`
	Contacts    *Contacts            `json:"contacts,omitempty"`
}

// Term represents a glossary term.
type Term struct {
	ID          string         `json:"id"                  yaml:"id"`
	Name        string         `json:"name"                yaml:"name"`
	Description string         `json:"description"         yaml:"description"`
	Status      EntityStatus   `json:"status"              yaml:"status"`
	DomainID    string         `json:"domain"              yaml:"domain"`
	ParentID    string         `json:"parentId,omitempty"  yaml:"parentId,omitempty"`
	Acronyms    []string       `json:"acronyms,omitempty"  yaml:"acronyms,omitempty"`
	Resources   []ResourceLink `json:"resources,omitempty" yaml:"resources,omitempty"`
	Contacts    Contacts       `json:"contacts,omitempty"  yaml:"contacts,omitempty"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// TermCreateRequest is the payload for creating a glossary term.
type TermCreateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Status      EntityStatus   `json:"status,omitempty"`
	DomainID    string         `json:"domain"`
	ParentID    string         `json:"parentId,omitempty"`
	Acronyms    []string       `json:"acronyms,omitempty"`
	Resources   []ResourceLink `json:"resources,omitempty"`
	Contacts    *Contacts      `json:"contacts,omitempty"`
}

// TermUpdateRequest is the payload for updating a glossary term.
type TermUpdateRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Status      EntityStatus   `json:"status,omitempty"`
	DomainID    string         `json:"domain"`
	ParentID    string         `json:"parentId,omitempty"`
	Acronyms    []string       `json:"acronyms,omitempty"`
	Resources   []ResourceLink `json:"resources,omitempty"`
	Contacts    *Contacts      `json:"contacts,omitempty"`
}

// DataProduct represents a data product.
type DataProduct struct {
	ID              string          `json:"id"                        yaml:"id"`
	Name            string          `json:"name"                      yaml:"name"`
	Description     string          `json:"description"               yaml:"description"`
	Type            DataProductType `json:"type"                      yaml:"type"`
	Status          EntityStatus    `json:"status"                    yaml:"status"`
	DomainID        string          `json:"domain"                    yaml:"domain"`
	BusinessUse     string          `json:"businessUse"               yaml:"businessUse"`
	Audience        []string        `json:"audience,omitempty"        yaml:"audience,omitempty"`
	TermsOfUse      []string        `json:"termsOfUse,omitempty"      yaml:"termsOfUse,omitempty"`
	Documentation   []string        `json:"documentation,omitempty"   yaml:"documentation,omitempty"`
	UpdateFrequency UpdateFrequency `json:"updateFrequency,omitempty" yaml:"updateFrequency,omitempty"`
	Endorsed        bool            `json:"endorsed"                  yaml:"endorsed"`
	Contacts        Contacts        `json:"contacts,omitempty"        yaml:"contacts,omitempty"`
	CreatedAt       *time.Time      `json:"createdAt,omitempty"       yaml:"createdAt,omitempty"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"       yaml:"updatedAt,omitempty"`
}

// DataProductCreateRequest is the payload for creating a data product.
type DataProductCreateRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Type            DataProductType `json:"type"`
	Status          EntityStatus    `json:"status,omitempty"`
	DomainID        string          `json:"domain"`
	BusinessUse     string          `json:"businessUse,omitempty"`
	Audience        []string        `json:"audience,omitempty"`
	TermsOfUse      []string        `json:"termsOfUse,omitempty"`
	Documentation   []string        `json:"documentation,omitempty"`
	UpdateFrequency UpdateFrequency `json:"updateFrequency,omitempty"`
	Endorsed        *bool           `json:"endorsed,omitempty"`
	Contacts        *Contacts       `json:"contacts,omitempty"`
}

// DataProductUpdateRequest is the payload for updating a data product.
type DataProductUpdateRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Type            DataProductType `json:"type"`
	Status          EntityStatus    `json:"status,omitempty"`
	DomainID        string          `json:"domain"`
	BusinessUse     string          `json:"businessUse,omitempty"`
	Audience        []string        `json:"audience,omitempty"`
	TermsOfUse      []string        `json:"termsOfUse,omitempty"`
	Documentation   []string        `json:"documentation,omitempty"`
	UpdateFrequency UpdateFrequency `json:"updateFrequency,omitempty"`
	Endorsed        *bool           `json:"endorsed,omitempty"`
	Contacts        *Contacts       `json:"contacts,omitempty"`
}

// Objective represents an objective within a governance domain.
type Objective struct {
	ID         string       `json:"id"                   yaml:"id"`
	Definition string       `json:"definition"           yaml:"definition"`
	Status     EntityStatus `json:"status"               yaml:"status"`
	DomainID   string       `json:"domain"               yaml:"domain"`
	TargetDate *time.Time   `json:"targetDate,omitempty" yaml:"targetDate,omitempty"`
	Contacts   Contacts     `json:"contacts,omitempty"   yaml:"contacts,omitempty"`
	CreatedAt  *time.Time   `json:"createdAt,omitempty"  yaml:"createdAt,omitempty"`
	UpdatedAt  *time.Time   `json:"updatedAt,omitempty"  yaml:"updatedAt,omitempty"`
}

// ObjectiveCreateRequest is the payload for creating an objective.
type ObjectiveCreateRequest struct {
	Definition string       `json:"definition"`
	Status     EntityStatus `json:"status,omitempty"`
	DomainID   string       `json:"domain"`
	TargetDate *time.Time   `json:"targetDate,omitempty"`
	Contacts   *Contacts    `json:"contacts,omitempty"`
}

// ObjectiveUpdateRequest is the payload for updating an objective.
type ObjectiveUpdateRequest struct {
	Definition string       `json:"definition"`
	Status     EntityStatus `json:"status,omitempty"`
	DomainID   string       `json:"domain"`
	TargetDate *time.Time   `json:"targetDate,omitempty"`
	Contacts   *Contacts    `json:"contacts,omitempty"`
}

// KeyResult represents a key result attached to an objective.
type KeyResult struct {
	ID          string          `json:"id"                    yaml:"id"`
	Definition  string          `json:"definition"            yaml:"definition"`
	Progress    int             `json:"progress"              yaml:"progress"`
	Goal        int             `json:"goal"                  yaml:"goal"`
	Max         int             `json:"max"                   yaml:"max"`
	Status      KeyResultStatus `json:"status"                yaml:"status"`
	DomainID    string          `json:"domainId"              yaml:"domainId"`
	ObjectiveID string          `json:"objectiveId,omitempty" yaml:"objectiveId,omitempty"`
	CreatedAt   *time.Time      `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// ProgressPercentage reports progress relative to the maximum value.
func (k *KeyResult) ProgressPercentage() float64 {
	if k.Max <= 0 {
		return 0
	}

	return float64(k.Progress) / float64(k.Max) * 100
}

// GoalPercentage reports the goal relative to the maximum value.
func (k *KeyResult) GoalPercentage() float64 {
	if k.Max <= 0 {
		return 0
	}

	return float64(k.Goal) / float64(k.Max) * 100
}

// KeyResultCreateRequest is the payload for creating a key result.
type KeyResultCreateRequest struct {
	Definition string          `json:"definition"`
	Progress   int             `json:"progress"`
	Goal       int             `json:"goal"`
	Max        int             `json:"max"`
	Status     KeyResultStatus `json:"status,omitempty"`
	DomainID   string          `json:"domainId"`
}

// KeyResultUpdateRequest is the payload for updating a key result.
type KeyResultUpdateRequest struct {
	Definition string          `json:"definition"`
	Progress   int             `json:"progress"`
	Goal       int             `json:"goal"`
	Max        int             `json:"max"`
	Status     KeyResultStatus `json:"status,omitempty"`
	DomainID   string          `json:"domainId"`
}

// CriticalDataElement represents a critical data element.
type CriticalDataElement struct {
	ID          string       `json:"id"                  yaml:"id"`
	Name        string       `json:"name"                yaml:"name"`
	Description string       `json:"description"         yaml:"description"`
	Status      EntityStatus `json:"status"              yaml:"status"`
	DomainID    string       `json:"domain"              yaml:"domain"`
	DataType    string       `json:"dataType"            yaml:"dataType"`
	Contacts    Contacts     `json:"contacts,omitempty"  yaml:"contacts,omitempty"`
	CreatedAt   *time.Time   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// CriticalDataElementCreateRequest is the payload for creating a critical data element.
type CriticalDataElementCreateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      EntityStatus `json:"status,omitempty"`
	DomainID    string       `json:"domain"`
	DataType    string       `json:"dataType"`
	Contacts    *Contacts    `json:"contacts,omitempty"`
}

// CriticalDataElementUpdateRequest is the payload for updating a critical data element.
type CriticalDataElementUpdateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      EntityStatus `json:"status,omitempty"`
	DomainID    string       `json:"domain"`
	DataType    string       `json:"dataType"`
	Contacts    *Contacts    `json:"contacts,omitempty"`
}

// Relationship represents a relationship between two catalog entities.
type Relationship struct {
	ID               string     `json:"id,omitempty"               yaml:"id,omitempty"`
	Description      string     `json:"description,omitempty"      yaml:"description,omitempty"`
	EntityID         string     `json:"entityId"                   yaml:"entityId"`
	RelationshipType string     `json:"relationshipType,omitempty" yaml:"relationshipType,omitempty"`
	EntityType       EntityType `json:"entityType,omitempty"       yaml:"entityType,omitempty"`
	CreatedAt        *time.Time `json:"createdAt,omitempty"        yaml:"createdAt,omitempty"`
}

// RelationshipCreateRequest is the payload for attaching an entity to another.
// EntityType selects the target collection; EntityID is the target entity.
type RelationshipCreateRequest struct {
	EntityType       EntityType `json:"-"`
	EntityID         string     `json:"entityId"`
	RelationshipType string     `json:"relationshipType,omitempty"`
	Description      string     `json:"description,omitempty"`
}
