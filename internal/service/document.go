package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sitedocs/internal/cache"
	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
	"sitedocs/internal/repository"
	"sitedocs/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("document not found")
)

const (
	defaultLimit     = 10
	defaultURLExpiry = 15 * time.Minute
)

var tracer = otel.Tracer("sitedocs/internal/service")

var exportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "document_exports_total",
		Help: "Document exports by format and outcome.",
	},
	[]string{"format", "outcome"},
)

// DocumentListResult is the service-level DTO for a filtered, paginated listing.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// ExportResult is a rendered export ready to be sent to a client.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// PublishedExport describes an export uploaded to object storage.
type PublishedExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// DocumentService defines the read use cases over the document register.
type DocumentService interface {
	// List filters and sorts the register, then returns one page of it.
	// Total counts every match, not just the page.
	List(ctx context.Context, filter model.DocumentFilter, limit, offset int) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Related resolves the relation edges of a document into buckets.
	Related(ctx context.Context, id string) (*model.RelatedDocuments, error)

	// Groups filters the register and buckets the result.
	Groups(ctx context.Context, filter model.DocumentFilter, by model.GroupBy) ([]model.DocumentGroup, error)

	// Stats summarizes the documents matching filter.
	Stats(ctx context.Context, filter model.DocumentFilter) (*model.DocumentStats, error)

	// Export renders the documents matching filter.
	Export(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*ExportResult, error)

	// PublishExport renders an export, stores it and returns a time-limited download link.
	PublishExport(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*PublishedExport, error)
}

// Options tunes a DocumentService. Zero values fall back to defaults.
type Options struct {
	Location  *time.Location
	URLExpiry time.Duration
}

type documentService struct {
	repo      repository.DocumentRepository
	store     storage.Storage
	cache     cache.DocumentCache
	log       *zap.Logger
	loc       *time.Location
	urlExpiry time.Duration
	now       func() time.Time
}

// NewDocumentService constructs a new DocumentService. A nil cache disables caching;
// a nil store makes PublishExport fail.
func NewDocumentService(repo repository.DocumentRepository, store storage.Storage, c cache.DocumentCache, log *zap.Logger, opts Options) DocumentService {
	if c == nil {
		c = cache.NewNop()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.URLExpiry <= 0 {
		opts.URLExpiry = defaultURLExpiry
	}
	return &documentService{
		repo:      repo,
		store:     store,
		cache:     c,
		log:       log,
		loc:       opts.Location,
		urlExpiry: opts.URLExpiry,
		now:       time.Now,
	}
}

func (s *documentService) List(ctx context.Context, filter model.DocumentFilter, limit, offset int) (*DocumentListResult, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.List")
	defer span.End()

	if limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	docs, err := s.loadAll(ctx)
	if err != nil {
		return nil, recordErr(span, err)
	}

	matched := docquery.Filter(docs, filter)
	res := &DocumentListResult{Items: []model.Document{}, Total: len(matched)}
	if offset < len(matched) {
		end := len(matched)
		if limit < end-offset {
			end = offset + limit
		}
		res.Items = matched[offset:end]
	}
	span.SetAttributes(attribute.Int("documents.total", res.Total))
	return res, nil
}

func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	ctx, span := tracer.Start(ctx, "DocumentService.Get", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, recordErr(span, err)
	}
	s.localize(doc)
	return doc, nil
}

// Related loads the register and the edges touching id concurrently.
func (s *documentService) Related(ctx context.Context, id string) (*model.RelatedDocuments, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	ctx, span := tracer.Start(ctx, "DocumentService.Related", trace.WithAttributes(attribute.String("document.id", id)))
	defer span.End()

	var (
		docs      []model.Document
		relations []model.RelatedDocument
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		docs, err = s.loadAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		relations, err = s.repo.ListRelations(gctx, id)
		if err != nil {
			return fmt.Errorf("list relations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, recordErr(span, err)
	}

	found := false
	for i := range docs {
		if docs[i].ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	res := docquery.Related(id, relations, docs)
	return &res, nil
}

func (s *documentService) Groups(ctx context.Context, filter model.DocumentFilter, by model.GroupBy) ([]model.DocumentGroup, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Groups", trace.WithAttributes(attribute.String("group.by", string(by))))
	defer span.End()

	docs, err := s.loadAll(ctx)
	if err != nil {
		return nil, recordErr(span, err)
	}
	return docquery.Group(docquery.Filter(docs, filter), by), nil
}

func (s *documentService) Stats(ctx context.Context, filter model.DocumentFilter) (*model.DocumentStats, error) {
	ctx, span := tracer.Start(ctx, "DocumentService.Stats")
	defer span.End()

	docs, err := s.loadAll(ctx)
	if err != nil {
		return nil, recordErr(span, err)
	}
	stats := docquery.Stats(docquery.Filter(docs, filter))
	return &stats, nil
}

func (s *documentService) Export(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*ExportResult, error) {
	if format == "" {
		format = model.FormatCSV
	}
	ctx, span := tracer.Start(ctx, "DocumentService.Export", trace.WithAttributes(attribute.String("export.format", string(format))))
	defer span.End()

	docs, err := s.loadAll(ctx)
	if err != nil {
		exportsTotal.WithLabelValues(string(format), "error").Inc()
		return nil, recordErr(span, err)
	}

	content, err := docquery.Export(docquery.Filter(docs, filter), format)
	if err != nil {
		if errors.Is(err, docquery.ErrUnsupportedFormat) {
			s.log.Warn("export format not supported", zap.String("format", string(format)))
			exportsTotal.WithLabelValues(string(format), "unsupported").Inc()
			return nil, err
		}
		exportsTotal.WithLabelValues(string(format), "error").Inc()
		return nil, recordErr(span, err)
	}

	exportsTotal.WithLabelValues(string(format), "ok").Inc()
	return &ExportResult{
		Content:     content,
		ContentType: docquery.ContentType(format),
		Filename:    fmt.Sprintf("documents-%s.%s", s.now().In(s.loc).Format("20060102-150405"), format),
	}, nil
}

// PublishExport stores the export under exports/<uuid>.<ext>. The object is removed again
// when a download link cannot be signed.
func (s *documentService) PublishExport(ctx context.Context, filter model.DocumentFilter, format model.ExportFormat) (*PublishedExport, error) {
	if s.store == nil {
		return nil, errors.New("object storage is not configured")
	}

	res, err := s.Export(ctx, filter, format)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = model.FormatCSV
	}

	ctx, span := tracer.Start(ctx, "DocumentService.PublishExport")
	defer span.End()

	key := path.Join("exports", uuid.NewString()+"."+string(format))
	if _, err := s.store.Put(ctx, key, bytes.NewReader(res.Content), storage.PutObjectOptions{
		Size:        int64(len(res.Content)),
		ContentType: res.ContentType,
		Metadata:    map[string]string{"filename": res.Filename},
	}); err != nil {
		return nil, recordErr(span, fmt.Errorf("upload export: %w", err))
	}

	url, err := s.store.PresignGet(ctx, key, s.urlExpiry)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.log.Warn("export cleanup failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, recordErr(span, fmt.Errorf("presign export: %w", err))
	}

	s.log.Info("export published", zap.String("key", key), zap.String("format", string(format)), zap.Int("bytes", len(res.Content)))
	return &PublishedExport{
		Key:       key,
		URL:       url,
		ExpiresAt: s.now().Add(s.urlExpiry).In(s.loc),
	}, nil
}

// loadAll returns the whole register, from the snapshot cache when it is warm.
// Cache failures are logged and never fail the request.
func (s *documentService) loadAll(ctx context.Context) ([]model.Document, error) {
	docs, err := s.cache.GetDocuments(ctx)
	if err == nil {
		s.localizeAll(docs)
		return docs, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.Warn("document cache read failed", zap.Error(err))
	}

	docs, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if err := s.cache.SetDocuments(ctx, docs); err != nil {
		s.log.Warn("document cache write failed", zap.Error(err))
	}
	s.localizeAll(docs)
	return docs, nil
}

func (s *documentService) localizeAll(docs []model.Document) {
	for i := range docs {
		s.localize(&docs[i])
	}
}

// localize moves every timestamp of d into the configured location so date
// formatting and grouping follow local calendar days.
func (s *documentService) localize(d *model.Document) {
	d.CreatedAt = d.CreatedAt.In(s.loc)
	d.UpdatedAt = d.UpdatedAt.In(s.loc)
	for i := range d.CurrentVersion.Comments {
		c := &d.CurrentVersion.Comments[i]
		c.CreatedAt = c.CreatedAt.In(s.loc)
	}
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
