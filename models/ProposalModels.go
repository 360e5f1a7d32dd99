package models

import (
	"time"

	"backend/sizing"
)

// Proposal is the persisted commercial proposal. The draft holds the raw
// form inputs; the result is the last sizing snapshot computed from it.
type Proposal struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Reference   string    `json:"reference" gorm:"uniqueIndex;size:32"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	ClientPhone string    `json:"client_phone"`
	Segment     string    `json:"segment"` // "piscina" or "residencial"
	CityID      int       `json:"city_id"`
	CityName    string    `json:"city_name"`
	Status      string    `json:"status" gorm:"default:rascunho"` // rascunho, enviada, aprovada, recusada
	CreatedBy   int       `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Draft  sizing.ProposalDraft `json:"draft" gorm:"serializer:json"`
	Result *sizing.SizingResult `json:"result,omitempty" gorm:"serializer:json"`
}

// TableName keeps the legacy table name.
func (Proposal) TableName() string { return "proposals" }

// CreateProposalRequest is the payload for creating a proposal.
type CreateProposalRequest struct {
	ClientName  string               `json:"client_name" binding:"required"`
	ClientEmail string               `json:"client_email"`
	ClientPhone string               `json:"client_phone"`
	Segment     string               `json:"segment" binding:"required"`
	CityID      int                  `json:"city_id"`
	CityName    string               `json:"city_name"`
	Draft       sizing.ProposalDraft `json:"draft"`
}

// UpdateProposalRequest replaces the editable fields of a proposal. The
// draft is replaced wholesale; recomputation runs on every update.
type UpdateProposalRequest struct {
	ClientName  string               `json:"client_name"`
	ClientEmail string               `json:"client_email"`
	ClientPhone string               `json:"client_phone"`
	Status      string               `json:"status"`
	CityID      int                  `json:"city_id"`
	CityName    string               `json:"city_name"`
	Draft       sizing.ProposalDraft `json:"draft"`
}

// MachineOverrideRequest carries a manual quantity override for the
// machine selection of a pool proposal.
type MachineOverrideRequest struct {
	Machines []sizing.MachineSelection `json:"machines" binding:"required"`
}
