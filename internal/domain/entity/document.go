package entity

import (
	"time"
)

// DocumentType identifies the kind of verification document a partner submits.
// The type is the de-duplication key: a new upload of the same type replaces
// the previous record.
type DocumentType string

const (
	// DocumentTypeRegistrationCertificate is the organization's registration certificate.
	DocumentTypeRegistrationCertificate DocumentType = "registration_certificate"
	// DocumentTypeIDProof is a government-issued identity proof.
	DocumentTypeIDProof DocumentType = "id_proof"
	// DocumentTypeAddressProof is a proof of the organization's address.
	DocumentTypeAddressProof DocumentType = "address_proof"
)

// RequiredDocumentTypes is the mandatory set for submission completeness.
// The registration certificate is accepted but optional.
var RequiredDocumentTypes = []DocumentType{
	DocumentTypeIDProof,
	DocumentTypeAddressProof,
}

// IsValid checks if the DocumentType is a valid value.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeRegistrationCertificate, DocumentTypeIDProof, DocumentTypeAddressProof:
		return true
	default:
		return false
	}
}

// DocumentReviewStatus represents the admin review outcome for a single document.
type DocumentReviewStatus string

const (
	// DocumentReviewPending indicates the document awaits review.
	DocumentReviewPending DocumentReviewStatus = "pending"
	// DocumentReviewApproved indicates the document was accepted.
	DocumentReviewApproved DocumentReviewStatus = "approved"
	// DocumentReviewRejected indicates the document was rejected.
	DocumentReviewRejected DocumentReviewStatus = "rejected"
)

// IsValid checks if the DocumentReviewStatus is a valid value.
func (s DocumentReviewStatus) IsValid() bool {
	switch s {
	case DocumentReviewPending, DocumentReviewApproved, DocumentReviewRejected:
		return true
	default:
		return false
	}
}

// PartnerDocument is one live verification document of a partner.
// Records are superseded by re-uploads of the same type, never removed.
type PartnerDocument struct {
	Type       DocumentType
	URL        string // retrieval URL returned by the blob store
	UploadedAt time.Time
	Status     DocumentReviewStatus
	Remarks    string // optional reviewer remarks, set on rejection
}
