// Package model contains the Firestore document shapes and their mappings
// to domain entities. Document fields stay flat strings and numbers so
// field-wise merges and queries never depend on Go types.
package model

import (
	"time"

	"parivartan/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// AddressModel mirrors the partner address map.
type AddressModel struct {
	Line1     string  `firestore:"line1"`
	Line2     string  `firestore:"line2"`
	City      string  `firestore:"city"`
	State     string  `firestore:"state"`
	PinCode   string  `firestore:"pinCode"`
	Longitude float64 `firestore:"longitude"`
	Latitude  float64 `firestore:"latitude"`
}

// DocumentModel mirrors one entry of the partner documents array.
type DocumentModel struct {
	Type       string    `firestore:"type"`
	URL        string    `firestore:"url"`
	UploadedAt time.Time `firestore:"uploadedAt"`
	Status     string    `firestore:"status"`
	Remarks    string    `firestore:"remarks"`
}

// SubscriptionModel mirrors the subscription map. Absent until the first
// successful payment.
type SubscriptionModel struct {
	PlanID        string    `firestore:"planId"`
	Amount        float64   `firestore:"amount"`
	Status        string    `firestore:"status"`
	StartDate     time.Time `firestore:"startDate"`
	ExpiryDate    time.Time `firestore:"expiryDate"`
	PaymentMethod string    `firestore:"paymentMethod"`
	TransactionID string    `firestore:"transactionId"`
}

// PartnerModel mirrors the 'partners' collection. The document id is the
// principal id.
type PartnerModel struct {
	Email               string             `firestore:"email"`
	Name                string             `firestore:"name"`
	Phone               string             `firestore:"phone"`
	Organization        string             `firestore:"organization"`
	PartnerType         string             `firestore:"partnerType"`
	Address             AddressModel       `firestore:"address"`
	SupportedWasteTypes []string           `firestore:"supportedWasteTypes"`
	Documents           []DocumentModel    `firestore:"documents"`
	VerificationStatus  string             `firestore:"verificationStatus"`
	Subscription        *SubscriptionModel `firestore:"subscription"`
	RewardPoints        int                `firestore:"rewardPoints"`
	CreatedAt           time.Time          `firestore:"createdAt"`
	UpdatedAt           time.Time          `firestore:"updatedAt"`
}

// PartnerFromEntity maps a domain partner onto its document shape.
func PartnerFromEntity(p *entity.Partner) *PartnerModel {
	m := &PartnerModel{
		Email:        p.Email,
		Name:         p.Name,
		Phone:        p.Phone,
		Organization: p.Organization,
		PartnerType:  string(p.PartnerType),
		Address: AddressModel{
			Line1:     p.Address.Line1,
			Line2:     p.Address.Line2,
			City:      p.Address.City,
			State:     p.Address.State,
			PinCode:   p.Address.PinCode,
			Longitude: p.Address.Location.Lon(),
			Latitude:  p.Address.Location.Lat(),
		},
		VerificationStatus: string(p.VerificationStatus),
		RewardPoints:       p.RewardPoints,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}

	for _, w := range p.SupportedWasteTypes {
		m.SupportedWasteTypes = append(m.SupportedWasteTypes, string(w))
	}
	for _, d := range p.Documents {
		m.Documents = append(m.Documents, DocumentFromEntity(&d))
	}
	if p.Subscription != nil {
		m.Subscription = SubscriptionFromEntity(p.Subscription)
	}

	return m
}

// ToEntity maps the document back to the domain partner.
func (m *PartnerModel) ToEntity(id uuid.UUID) *entity.Partner {
	p := &entity.Partner{
		ID:           id,
		Email:        m.Email,
		Name:         m.Name,
		Phone:        m.Phone,
		Organization: m.Organization,
		PartnerType:  entity.PartnerType(m.PartnerType),
		Address: entity.Address{
			Line1:    m.Address.Line1,
			Line2:    m.Address.Line2,
			City:     m.Address.City,
			State:    m.Address.State,
			PinCode:  m.Address.PinCode,
			Location: orb.Point{m.Address.Longitude, m.Address.Latitude},
		},
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
		RewardPoints:       m.RewardPoints,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}

	for _, w := range m.SupportedWasteTypes {
		p.SupportedWasteTypes = append(p.SupportedWasteTypes, entity.WasteType(w))
	}
	for _, d := range m.Documents {
		p.Documents = append(p.Documents, *d.ToEntity())
	}
	if m.Subscription != nil {
		p.Subscription = m.Subscription.ToEntity()
	}

	return p
}

// UpsertDocument replaces the entry of the same type or appends a new one.
// The documents array never holds more than one entry per type.
func (m *PartnerModel) UpsertDocument(entry DocumentModel) {
	for i := range m.Documents {
		if m.Documents[i].Type == entry.Type {
			m.Documents[i] = entry

			return
		}
	}

	m.Documents = append(m.Documents, entry)
}

// DocumentFromEntity maps one live document onto its array entry.
func DocumentFromEntity(d *entity.PartnerDocument) DocumentModel {
	return DocumentModel{
		Type:       string(d.Type),
		URL:        d.URL,
		UploadedAt: d.UploadedAt,
		Status:     string(d.Status),
		Remarks:    d.Remarks,
	}
}

// ToEntity maps the array entry back to the domain document.
func (m *DocumentModel) ToEntity() *entity.PartnerDocument {
	return &entity.PartnerDocument{
		Type:       entity.DocumentType(m.Type),
		URL:        m.URL,
		UploadedAt: m.UploadedAt,
		Status:     entity.DocumentReviewStatus(m.Status),
		Remarks:    m.Remarks,
	}
}

// SubscriptionFromEntity maps the subscription onto its map shape.
func SubscriptionFromEntity(s *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		PlanID:        s.PlanID,
		Amount:        s.Amount,
		Status:        string(s.Status),
		StartDate:     s.StartDate,
		ExpiryDate:    s.ExpiryDate,
		PaymentMethod: s.PaymentMethod,
		TransactionID: s.TransactionID,
	}
}

// ToEntity maps the map shape back to the domain subscription.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		PlanID:        m.PlanID,
		Amount:        m.Amount,
		Status:        entity.SubscriptionStatus(m.Status),
		StartDate:     m.StartDate,
		ExpiryDate:    m.ExpiryDate,
		PaymentMethod: m.PaymentMethod,
		TransactionID: m.TransactionID,
	}
}
