package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"parivartan/config"
	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	mockRepo "parivartan/internal/mocks/repository"
	mockSvc "parivartan/internal/mocks/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDocumentServiceForTest(t *testing.T, cfg *config.Config) (*mockRepo.MockPartnerRepository, *mockSvc.MockBlobStore, *mockSvc.MockEventPublisher, usecase.DocumentUsecase) {
	t.Helper()

	mockPartnerRepo := mockRepo.NewMockPartnerRepository(t)
	mockBlobStore := mockSvc.NewMockBlobStore(t)
	mockEvents := mockSvc.NewMockEventPublisher(t)
	service := NewDocumentService(DocumentServiceParams{
		PartnerRepo: mockPartnerRepo,
		BlobStore:   mockBlobStore,
		Events:      mockEvents,
		Config:      cfg,
		Logger:      testLogger(),
	})

	return mockPartnerRepo, mockBlobStore, mockEvents, service
}

func pdfUpload(content string) *usecase.DocumentUpload {
	return &usecase.DocumentUpload{
		Type:        entity.DocumentTypeIDProof,
		FileName:    "id.pdf",
		ContentType: "application/pdf",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func TestDocumentService_Submit_Success(t *testing.T) {
	mockPartnerRepo, mockBlobStore, mockEvents, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	upload := pdfUpload("%PDF-1.4 fake content")

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("https://blobs.example.com/id.pdf", nil)

	mockPartnerRepo.EXPECT().
		UpsertDocument(ctx, partnerID, mock.AnythingOfType("*entity.PartnerDocument")).
		Return(nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	doc, err := service.Submit(ctx, partnerID, upload)
	require.NoError(t, err)
	assert.Equal(t, entity.DocumentTypeIDProof, doc.Type)
	assert.Equal(t, "https://blobs.example.com/id.pdf", doc.URL)
	assert.Equal(t, entity.DocumentReviewPending, doc.Status)
	assert.False(t, doc.UploadedAt.IsZero())
}

func TestDocumentService_Submit_UnknownType(t *testing.T) {
	_, _, _, service := newDocumentServiceForTest(t, nil)

	upload := pdfUpload("content")
	upload.Type = entity.DocumentType("passport")

	doc, err := service.Submit(context.Background(), uuid.New(), upload)
	assert.Nil(t, doc)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDocumentService_Submit_UnsupportedContentType(t *testing.T) {
	_, _, _, service := newDocumentServiceForTest(t, nil)

	upload := pdfUpload("GIF89a")
	upload.ContentType = "image/gif"

	doc, err := service.Submit(context.Background(), uuid.New(), upload)
	assert.Nil(t, doc)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", appErr.ErrorCode())
}

func TestDocumentService_Submit_EmptyFile(t *testing.T) {
	_, _, _, service := newDocumentServiceForTest(t, nil)

	upload := pdfUpload("")

	doc, err := service.Submit(context.Background(), uuid.New(), upload)
	assert.Nil(t, doc)
	assert.Error(t, err)
}

func TestDocumentService_Submit_FileTooLarge(t *testing.T) {
	cfg := &config.Config{Upload: &config.UploadConfig{MaxBytes: 8}}
	_, _, _, service := newDocumentServiceForTest(t, cfg)

	upload := pdfUpload("this is more than eight bytes")

	doc, err := service.Submit(context.Background(), uuid.New(), upload)
	assert.Nil(t, doc)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FILE_TOO_LARGE", appErr.ErrorCode())
}

func TestDocumentService_Submit_BlobFailure(t *testing.T) {
	// A failed upload surfaces as an external-service error and never
	// touches the partner record.
	_, mockBlobStore, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	upload := pdfUpload("content")

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	doc, err := service.Submit(ctx, partnerID, upload)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domainerrors.ErrExternalService)
}

func TestDocumentService_Submit_PartnerNotFound(t *testing.T) {
	mockPartnerRepo, mockBlobStore, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	upload := pdfUpload("content")

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("https://blobs.example.com/id.pdf", nil)

	mockPartnerRepo.EXPECT().
		UpsertDocument(ctx, partnerID, mock.AnythingOfType("*entity.PartnerDocument")).
		Return(repository.ErrPartnerNotFound)

	doc, err := service.Submit(ctx, partnerID, upload)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domainerrors.ErrPartnerNotFound)
}

func TestDocumentService_Submit_ProgressReachesHundredOnlyOnCompletion(t *testing.T) {
	mockPartnerRepo, mockBlobStore, mockEvents, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()

	var percents []int
	upload := pdfUpload("some document content")
	upload.OnProgress = func(percent int) { percents = append(percents, percent) }

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, content io.Reader) (string, error) {
			_, err := io.Copy(io.Discard, content)

			return "https://blobs.example.com/id.pdf", err
		})

	mockPartnerRepo.EXPECT().
		UpsertDocument(ctx, partnerID, mock.AnythingOfType("*entity.PartnerDocument")).
		Return(nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	_, err := service.Submit(ctx, partnerID, upload)
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	assert.Equal(t, 100, percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
	// 100 is reported exactly once, after the record write.
	assert.NotContains(t, percents[:len(percents)-1], 100)
}

func TestDocumentService_Submit_ProgressNeverCompletesOnFailure(t *testing.T) {
	_, mockBlobStore, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()

	var percents []int
	upload := pdfUpload("some document content")
	upload.OnProgress = func(percent int) { percents = append(percents, percent) }

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, content io.Reader) (string, error) {
			_, _ = io.Copy(io.Discard, content)

			return "", errors.New("bucket unavailable")
		})

	_, err := service.Submit(ctx, uuid.New(), upload)
	require.Error(t, err)
	assert.NotContains(t, percents, 100)
}

func TestDocumentService_Submit_ReleasesUploadLock(t *testing.T) {
	// The per (partner, type) lock entry must not outlive the upload, or
	// the map grows with every partner/type pair ever seen.
	mockPartnerRepo, mockBlobStore, mockEvents, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("https://blobs.example.com/id.pdf", nil).
		Twice()

	mockPartnerRepo.EXPECT().
		UpsertDocument(ctx, partnerID, mock.AnythingOfType("*entity.PartnerDocument")).
		Return(nil).
		Twice()

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil).
		Twice()

	_, err := service.Submit(ctx, partnerID, pdfUpload("first version"))
	require.NoError(t, err)

	upload := pdfUpload("second version")
	upload.Type = entity.DocumentTypeAddressProof
	_, err = service.Submit(ctx, partnerID, upload)
	require.NoError(t, err)

	assert.Empty(t, service.(*documentService).inflight)
}

func TestDocumentService_Submit_ReleasesUploadLockOnFailure(t *testing.T) {
	_, mockBlobStore, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()

	mockBlobStore.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return("", errors.New("bucket unavailable"))

	_, err := service.Submit(ctx, uuid.New(), pdfUpload("content"))
	require.Error(t, err)

	assert.Empty(t, service.(*documentService).inflight)
}

func TestDocumentService_IsSubmissionComplete(t *testing.T) {
	mockPartnerRepo, _, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.Partner{ID: partnerID, Documents: completeDocuments()}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	complete, err := service.IsSubmissionComplete(ctx, partnerID)
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestDocumentService_IsSubmissionComplete_MissingDocument(t *testing.T) {
	mockPartnerRepo, _, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.Partner{ID: partnerID, Documents: []entity.PartnerDocument{
		{Type: entity.DocumentTypeIDProof},
	}}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	complete, err := service.IsSubmissionComplete(ctx, partnerID)
	require.NoError(t, err)
	assert.False(t, complete)
}

func TestDocumentService_SubmitForReview_Complete(t *testing.T) {
	mockPartnerRepo, _, mockEvents, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.Partner{ID: partnerID, Documents: completeDocuments()}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	mockEvents.EXPECT().
		PublishPartnerEvent(ctx, mock.AnythingOfType("*service.PartnerEvent")).
		Return(nil)

	err := service.SubmitForReview(ctx, partnerID)
	require.NoError(t, err)
}

func TestDocumentService_SubmitForReview_Incomplete(t *testing.T) {
	mockPartnerRepo, _, _, service := newDocumentServiceForTest(t, nil)

	ctx := context.Background()
	partnerID := uuid.New()
	partner := &entity.Partner{ID: partnerID}

	mockPartnerRepo.EXPECT().
		FindPartnerByID(ctx, partnerID).
		Return(partner, nil)

	err := service.SubmitForReview(ctx, partnerID)
	assert.ErrorIs(t, err, domainerrors.ErrDocumentsIncomplete)
}
