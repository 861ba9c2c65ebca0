package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"parivartan/config"
	deliverycontext "parivartan/internal/delivery/context"
	"parivartan/internal/domain/entity"
	domainerrors "parivartan/internal/domain/errors"
	"parivartan/internal/domain/repository"
	"parivartan/internal/domain/service"
	"parivartan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedContentTypes maps accepted upload content types to the stored
// object extension.
var allowedContentTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// documentService implements the DocumentUsecase interface.
type documentService struct {
	partnerRepo repository.PartnerRepository
	blobStore   service.BlobStore
	events      service.EventPublisher
	maxBytes    int64
	logger      *slog.Logger

	// inflight serializes uploads per (partner, document type). Uploads of
	// different types by the same partner proceed concurrently. Entries are
	// ref-counted and removed once the last holder releases.
	mu       sync.Mutex
	inflight map[string]*typeLock
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	BlobStore   service.BlobStore
	Events      service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	maxBytes := int64(5 << 20)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxBytes > 0 {
		maxBytes = params.Config.Upload.MaxBytes
	}

	return &documentService{
		partnerRepo: params.PartnerRepo,
		blobStore:   params.BlobStore,
		events:      params.Events,
		maxBytes:    maxBytes,
		logger:      params.Logger,
		inflight:    make(map[string]*typeLock),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates, uploads and upserts one document. A new upload of the
// same type supersedes the previous record; a failure anywhere leaves no
// partial document.
func (srv *documentService) Submit(ctx context.Context, partnerID uuid.UUID, upload *usecase.DocumentUpload) (*entity.PartnerDocument, error) {
	ext, err := srv.validate(upload)
	if err != nil {
		return nil, err
	}

	// Serialize with any in-flight upload of the same type so the second
	// upsert cannot race the first. Last completed write wins.
	unlock := srv.lockType(partnerID, upload.Type)
	defer unlock()

	progress := newUploadProgress(upload.Size, upload.OnProgress)
	key := fmt.Sprintf("partners/%s/documents/%s/%s%s", partnerID, upload.Type, uuid.New(), ext)

	url, err := srv.blobStore.Store(ctx, key, upload.ContentType, progress.reader(upload.Content))
	if err != nil {
		srv.log(ctx).Error("Document upload failed",
			slog.String("partner_id", partnerID.String()),
			slog.String("document_type", string(upload.Type)),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrExternalService.WrapMessage("failed to store document")
	}

	doc := &entity.PartnerDocument{
		Type:       upload.Type,
		URL:        url,
		UploadedAt: time.Now(),
		Status:     entity.DocumentReviewPending,
	}

	if err := srv.partnerRepo.UpsertDocument(ctx, partnerID, doc); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to upsert partner document")
	}

	progress.complete()

	srv.publish(ctx, partnerID, service.EventDocumentSubmitted, string(upload.Type))

	return doc, nil
}

// validate enforces the upload preconditions without mutating anything.
func (srv *documentService) validate(upload *usecase.DocumentUpload) (string, error) {
	if !upload.Type.IsValid() {
		return "", domainerrors.ErrValidationFailed.WithDetails("unknown document type: " + string(upload.Type))
	}

	ext, ok := allowedContentTypes[upload.ContentType]
	if !ok {
		return "", domainerrors.ErrUnsupportedFileType.WithDetails("content type " + upload.ContentType + " is not accepted")
	}

	if upload.Size <= 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("document is empty")
	}
	if upload.Size > srv.maxBytes {
		return "", domainerrors.ErrFileTooLarge.WithDetails(fmt.Sprintf("document is %d bytes, limit is %d", upload.Size, srv.maxBytes))
	}

	return ext, nil
}

// IsSubmissionComplete reports completeness from the latest partner record.
func (srv *documentService) IsSubmissionComplete(ctx context.Context, partnerID uuid.UUID) (bool, error) {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return false, domainerrors.ErrPartnerNotFound
		}

		return false, errors.Wrap(err, "failed to find partner")
	}

	return partner.IsSubmissionComplete(), nil
}

// SubmitForReview flags a submission-complete partner for admin review.
// Verification status itself only moves through admin action.
func (srv *documentService) SubmitForReview(ctx context.Context, partnerID uuid.UUID) error {
	partner, err := srv.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return domainerrors.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to find partner")
	}

	if !partner.IsSubmissionComplete() {
		return domainerrors.ErrDocumentsIncomplete
	}

	srv.publish(ctx, partnerID, service.EventSubmittedForReview, "")

	return nil
}

func (srv *documentService) publish(ctx context.Context, partnerID uuid.UUID, eventType, detail string) {
	event := &service.PartnerEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		PartnerID:  partnerID.String(),
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if err := srv.events.PublishPartnerEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish partner event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

// typeLock is one ref-counted entry of the inflight map.
type typeLock struct {
	mu   sync.Mutex
	refs int
}

// lockType acquires the per (partner, type) upload lock. The returned
// release func drops the map entry once no waiter remains.
func (srv *documentService) lockType(partnerID uuid.UUID, docType entity.DocumentType) func() {
	key := partnerID.String() + "/" + string(docType)

	srv.mu.Lock()
	lock, ok := srv.inflight[key]
	if !ok {
		lock = &typeLock{}
		srv.inflight[key] = lock
	}
	lock.refs++
	srv.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		srv.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(srv.inflight, key)
		}
		srv.mu.Unlock()
	}
}

// uploadProgress reports a monotonically increasing percentage in [0,100].
// The read side caps at 99; 100 is reported only once the document record
// is written. There is no separate failure signal: a sequence that stops
// short of 100 ended in the error Submit returns.
type uploadProgress struct {
	total    int64
	read     int64
	last     int
	onChange func(percent int)
}

func newUploadProgress(total int64, onChange func(int)) *uploadProgress {
	p := &uploadProgress{total: total, onChange: onChange}
	p.report(0)

	return p
}

func (p *uploadProgress) reader(r io.Reader) io.Reader {
	return &progressReader{inner: r, progress: p}
}

func (p *uploadProgress) advance(n int) {
	p.read += int64(n)
	percent := int(p.read * 100 / p.total)
	if percent > 99 {
		percent = 99
	}
	p.report(percent)
}

func (p *uploadProgress) complete() {
	p.report(100)
}

func (p *uploadProgress) report(percent int) {
	if p.onChange == nil {
		return
	}
	if percent < p.last {
		return
	}
	p.last = percent
	p.onChange(percent)
}

type progressReader struct {
	inner    io.Reader
	progress *uploadProgress
}

func (r *progressReader) Read(buf []byte) (int, error) {
	n, err := r.inner.Read(buf)
	if n > 0 {
		r.progress.advance(n)
	}

	return n, err //nolint:wrapcheck // transparent reader passthrough
}
