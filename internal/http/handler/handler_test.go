package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sitedocs/internal/docquery"
	"sitedocs/internal/model"
	"sitedocs/internal/service"
	serviceMocks "sitedocs/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_hits_total", Help: "hits"})
	reg.MustRegister(counter)
	counter.Add(3)

	app := fiber.New()
	app.Get("/metrics", Metrics(reg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "test_hits_total 3")
}

func TestListDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents", ListDocuments(mockSvc, time.UTC))

	t.Run("success", func(t *testing.T) {
		expectedRes := &service.DocumentListResult{
			Items: []model.Document{{ID: uuid.New().String(), Title: "Site plan"}},
			Total: 1,
		}
		mockSvc.On("List", mock.Anything, model.DocumentFilter{}, 10, 0).Return(expectedRes, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=10&offset=0", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result service.DocumentListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("filter is passed through", func(t *testing.T) {
		want := model.DocumentFilter{
			Status:    []string{"approved", "review"},
			Tags:      []string{"structural"},
			SortBy:    model.SortByName,
			SortOrder: model.SortAsc,
		}
		mockSvc.On("List", mock.Anything, want, 5, 10).
			Return(&service.DocumentListResult{Items: []model.Document{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet,
			"/documents?status=approved,review&tags=structural&sort_by=name&sort_order=asc&limit=5&offset=10", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=abc", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("limit above the maximum", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?limit=9223372036854775807&offset=1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("negative offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?offset=-1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?offset=x", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_OFFSET", decodeError(t, resp).Error.Code)
	})

	t.Run("invalid filter", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents?sort_by=colour", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_FILTER", body.Error.Code)
		assert.Equal(t, "invalid sort_by", body.Error.Message)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.DocumentFilter{}, 10, 0).Return(nil, errors.New("service error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "service error")
		mockSvc.AssertExpectations(t)
	})
}

func TestGetDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id", GetDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(&model.Document{ID: id, Title: "Site plan"}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/invalid-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Get", mock.Anything, id).Return(nil, errors.New("db error")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id, nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetRelatedDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/:id/related", GetRelatedDocuments(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		related := &model.RelatedDocuments{
			Parents:      []model.Document{{ID: "p"}},
			Children:     []model.Document{},
			References:   []model.Document{},
			Supersedes:   []model.Document{},
			SupersededBy: []model.Document{{ID: "s"}},
			Related:      []model.Document{},
		}
		mockSvc.On("Related", mock.Anything, id).Return(related, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/related", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string][]model.Document
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body["parents"], 1)
		assert.Len(t, body["supersededBy"], 1)
		assert.NotNil(t, body["children"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown document", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("Related", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/"+id+"/related", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/nope/related", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decodeError(t, resp).Error.Code)
	})
}

func TestGroupDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/groups", GroupDocuments(mockSvc, time.UTC))

	t.Run("defaults to category", func(t *testing.T) {
		groups := []model.DocumentGroup{{Key: "Drawings", Documents: []model.Document{{ID: "a"}}}}
		mockSvc.On("Groups", mock.Anything, model.DocumentFilter{}, model.GroupByCategory).Return(groups, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/groups", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body []model.DocumentGroup
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Drawings", body[0].Key)
		mockSvc.AssertExpectations(t)
	})

	t.Run("by user with filter", func(t *testing.T) {
		mockSvc.On("Groups", mock.Anything, model.DocumentFilter{Search: "slab"}, model.GroupByUser).
			Return([]model.DocumentGroup{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/groups?group_by=user&search=slab", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid group_by", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/groups?group_by=colour", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_GROUP_BY", decodeError(t, resp).Error.Code)
	})
}

func TestDocumentStats(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/stats", DocumentStats(mockSvc, time.UTC))

	t.Run("success", func(t *testing.T) {
		confidential := true
		stats := &model.DocumentStats{TotalDocuments: 2, TotalSize: 300, AvgSize: 150}
		mockSvc.On("Stats", mock.Anything, model.DocumentFilter{Confidential: &confidential}).Return(stats, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/stats?confidential=true", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body model.DocumentStats
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.TotalDocuments)
		assert.Equal(t, 150.0, body.AvgSize)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid filter", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/stats?from=yesterday", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_FILTER", decodeError(t, resp).Error.Code)
	})
}

func TestExportDocuments(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/documents/export", ExportDocuments(mockSvc, time.UTC))

	t.Run("csv attachment", func(t *testing.T) {
		mockSvc.On("Export", mock.Anything, model.DocumentFilter{Status: []string{"draft"}}, model.FormatCSV).
			Return(&service.ExportResult{
				Content:     []byte(`"Document Number"`),
				ContentType: "text/csv; charset=utf-8",
				Filename:    "documents-20240201-083000.csv",
			}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/export?status=draft", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, `attachment; filename="documents-20240201-083000.csv"`, resp.Header.Get("Content-Disposition"))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, `"Document Number"`, string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("xlsx is not implemented", func(t *testing.T) {
		mockSvc.On("Export", mock.Anything, model.DocumentFilter{}, model.FormatXLSX).
			Return(nil, docquery.ErrUnsupportedFormat).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/export?format=xlsx", nil))

		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
		assert.Equal(t, "UNSUPPORTED_FORMAT", decodeError(t, resp).Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown format", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/export?format=pdf", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_FORMAT", decodeError(t, resp).Error.Code)
	})
}

func TestPublishExport(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/documents/exports", PublishExport(mockSvc, time.UTC))

	t.Run("created", func(t *testing.T) {
		published := &service.PublishedExport{
			Key:       "exports/abc.json",
			URL:       "https://minio.local/exports/abc.json?sig=1",
			ExpiresAt: time.Date(2024, 2, 1, 8, 45, 0, 0, time.UTC),
		}
		mockSvc.On("PublishExport", mock.Anything, model.DocumentFilter{}, model.FormatJSON).Return(published, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/documents/exports?format=json", nil))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var body service.PublishedExport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "exports/abc.json", body.Key)
		assert.Equal(t, published.URL, body.URL)
		mockSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockSvc.On("PublishExport", mock.Anything, model.DocumentFilter{}, model.FormatCSV).
			Return(nil, errors.New("upload export: connection refused")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/documents/exports", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	mockSvc := new(serviceMocks.MockDocumentService)
	RegisterRoutes(app, nil, mockSvc, time.UTC)

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decodeError(t, resp).Error.Code)
	})

	t.Run("fixed paths win over :id", func(t *testing.T) {
		mockSvc.On("Stats", mock.Anything, model.DocumentFilter{}).Return(&model.DocumentStats{}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents/stats", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("list without trailing slash", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.DocumentFilter{}, 10, 0).
			Return(&service.DocumentListResult{Items: []model.Document{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/documents", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
