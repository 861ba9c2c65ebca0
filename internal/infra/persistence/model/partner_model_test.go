package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartnerModel_UpsertDocument_SupersedesSameType(t *testing.T) {
	m := &PartnerModel{}

	m.UpsertDocument(DocumentModel{
		Type:       "id_proof",
		URL:        "https://blobs.example.com/id-v1.pdf",
		UploadedAt: time.Now().Add(-time.Hour),
		Status:     "pending",
	})
	m.UpsertDocument(DocumentModel{
		Type:       "id_proof",
		URL:        "https://blobs.example.com/id-v2.pdf",
		UploadedAt: time.Now(),
		Status:     "pending",
	})

	require.Len(t, m.Documents, 1)
	assert.Equal(t, "id_proof", m.Documents[0].Type)
	assert.Equal(t, "https://blobs.example.com/id-v2.pdf", m.Documents[0].URL)
}

func TestPartnerModel_UpsertDocument_AppendsNewType(t *testing.T) {
	m := &PartnerModel{}

	m.UpsertDocument(DocumentModel{Type: "id_proof", URL: "https://blobs.example.com/id.pdf"})
	m.UpsertDocument(DocumentModel{Type: "address_proof", URL: "https://blobs.example.com/address.pdf"})

	require.Len(t, m.Documents, 2)
	assert.Equal(t, "id_proof", m.Documents[0].Type)
	assert.Equal(t, "address_proof", m.Documents[1].Type)
}

func TestPartnerModel_UpsertDocument_ResetsReviewState(t *testing.T) {
	// A re-upload starts a fresh review; rejection remarks from the
	// superseded document must not survive.
	m := &PartnerModel{Documents: []DocumentModel{
		{Type: "id_proof", URL: "https://blobs.example.com/id-v1.pdf", Status: "rejected", Remarks: "unreadable scan"},
	}}

	m.UpsertDocument(DocumentModel{
		Type:   "id_proof",
		URL:    "https://blobs.example.com/id-v2.pdf",
		Status: "pending",
	})

	require.Len(t, m.Documents, 1)
	assert.Equal(t, "pending", m.Documents[0].Status)
	assert.Empty(t, m.Documents[0].Remarks)
}
