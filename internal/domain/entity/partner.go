package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// PartnerType represents the kind of waste-management organization.
type PartnerType string

const (
	// PartnerTypeCollector indicates an organization that collects waste.
	PartnerTypeCollector PartnerType = "collector"
	// PartnerTypeRecycler indicates an organization that processes or recycles waste.
	PartnerTypeRecycler PartnerType = "recycler"
	// PartnerTypeAggregator indicates an organization that aggregates collected waste.
	PartnerTypeAggregator PartnerType = "aggregator"
)

// IsValid checks if the PartnerType is a valid value.
func (t PartnerType) IsValid() bool {
	switch t {
	case PartnerTypeCollector, PartnerTypeRecycler, PartnerTypeAggregator:
		return true
	default:
		return false
	}
}

// WasteType represents a category of waste a partner can handle.
type WasteType string

const (
	WasteTypePlastic    WasteType = "plastic"
	WasteTypePaper      WasteType = "paper"
	WasteTypeMetal      WasteType = "metal"
	WasteTypeGlass      WasteType = "glass"
	WasteTypeEWaste     WasteType = "e_waste"
	WasteTypeOrganic    WasteType = "organic"
	WasteTypeHazardous  WasteType = "hazardous"
	WasteTypeTextile    WasteType = "textile"
	WasteTypeMixedSolid WasteType = "mixed_solid"
)

// VerificationStatus represents the admin review outcome for a partner.
type VerificationStatus string

const (
	// VerificationPending indicates the partner has not been reviewed yet.
	VerificationPending VerificationStatus = "pending"
	// VerificationApproved indicates the partner passed admin review.
	VerificationApproved VerificationStatus = "approved"
	// VerificationRejected indicates the partner failed admin review.
	VerificationRejected VerificationStatus = "rejected"
)

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	default:
		return false
	}
}

// Address is the physical address of a partner organization.
// Location carries the geographic point used by collection-zone tooling.
type Address struct {
	Line1    string
	Line2    string
	City     string
	State    string
	PinCode  string
	Location orb.Point // lon/lat of the organization's primary site
}

// Partner is an organization that collects or processes waste under the
// platform. It is the unit of mutation: the partner edits profile fields and
// uploads documents, an admin transitions the verification status, and the
// payment flow attaches the subscription. Partners are never deleted.
type Partner struct {
	ID                  uuid.UUID
	Email               string
	Name                string
	Phone               string
	Organization        string
	PartnerType         PartnerType
	Address             Address
	SupportedWasteTypes []WasteType
	Documents           []PartnerDocument
	VerificationStatus  VerificationStatus
	Subscription        *Subscription // nil until a successful payment
	RewardPoints        int           // invariant: never negative
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DocumentByType returns the live document of the given type, if any.
// A partner holds at most one live document per type.
func (p *Partner) DocumentByType(docType DocumentType) (*PartnerDocument, bool) {
	for i := range p.Documents {
		if p.Documents[i].Type == docType {
			return &p.Documents[i], true
		}
	}

	return nil, false
}

// IsSubmissionComplete reports whether every mandatory document type has a
// live document, regardless of its review outcome. This gates only the
// "submit for verification" step, not admin approval.
func (p *Partner) IsSubmissionComplete() bool {
	for _, docType := range RequiredDocumentTypes {
		if _, ok := p.DocumentByType(docType); !ok {
			return false
		}
	}

	return true
}

// HasActiveSubscription reports whether the partner holds an active,
// unexpired subscription at the given instant.
func (p *Partner) HasActiveSubscription(now time.Time) bool {
	return p.Subscription != nil && p.Subscription.IsActiveAt(now)
}
