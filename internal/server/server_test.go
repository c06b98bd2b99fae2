package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderkyat/orderkyat/internal/entity"
	"github.com/orderkyat/orderkyat/internal/export"
	"github.com/orderkyat/orderkyat/internal/extract"
	"github.com/orderkyat/orderkyat/internal/invoice"
	"github.com/orderkyat/orderkyat/internal/numbering"
	"github.com/orderkyat/orderkyat/internal/render"
	"github.com/orderkyat/orderkyat/internal/repository"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	drafts := repository.NewMemoryDraftRepository()
	profiles := repository.NewMemoryStoreProfileRepository()
	seq := repository.NewMemorySequenceRepository()

	svc := invoice.NewService(
		extract.MustEngine(extract.Myanmar()),
		drafts,
		profiles,
		numbering.NewService(seq, nil),
		render.NewRenderer(render.Defaults{}, nil),
		nil,
	)
	return NewServer(svc, profiles, export.NewService(drafts, nil), nil).Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExtractEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/extract",
		`{"text":"Mg Mg, 09123456789, 2 shirts @ 15000 and 3 bags @ 10000, Yangon"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var draft entity.InvoiceDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	assert.Equal(t, "Mg Mg", draft.Data.CustomerName)
	assert.Equal(t, 60000, draft.Data.TotalPrice)
	assert.Len(t, draft.Data.Items, 2)
}

func TestExtractEndpoint_HostileInputRejected(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/extract", `{"text":"<script>alert(1)</script>"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftEndpoints(t *testing.T) {
	r := newTestRouter(t)

	// no draft yet
	w := doJSON(t, r, http.MethodGet, "/v1/draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// create via extract, then edit
	w = doJSON(t, r, http.MethodPost, "/v1/extract", `{"text":"Ko Ko, 1 hat @ 5000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/v1/draft",
		`{"customer_name":"Ko Ko","phone":"","address":"","items":[{"name":"hat","quantity":2,"unit_price":5000}],"total_price":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var draft entity.InvoiceDraft
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
	assert.Equal(t, 10000, draft.Data.TotalPrice)

	// discard
	w = doJSON(t, r, http.MethodDelete, "/v1/draft", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodGet, "/v1/draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/v1/profile",
		`{"name":"My Shop","phone":"09777888999","address":"Mandalay"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/profile", "")
	require.Equal(t, http.StatusOK, w.Code)

	var p entity.StoreProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "My Shop", p.Name)
	assert.Equal(t, "Mandalay", p.Address)
}

func TestProfileEndpoint_RejectsOverlongFields(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPut, "/v1/profile",
		`{"name":"`+strings.Repeat("a", 200)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryTypesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/delivery-types", "")
	require.Equal(t, http.StatusOK, w.Code)

	var out []struct {
		Type         string `json:"type"`
		SuggestedFee int    `json:"suggested_fee"`
		Free         bool   `json:"free"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 4)

	byType := map[string]struct {
		fee  int
		free bool
	}{}
	for _, d := range out {
		byType[d.Type] = struct {
			fee  int
			free bool
		}{d.SuggestedFee, d.Free}
	}
	assert.Equal(t, 4500, byType["Cash on Delivery"].fee)
	assert.False(t, byType["Cash on Delivery"].free)
	assert.Equal(t, 1500, byType["Prepaid"].fee)
	assert.True(t, byType["Self Pickup"].free)
	assert.True(t, byType["Free Delivery"].free)
	assert.Zero(t, byType["Free Delivery"].fee)
}

func TestDownloadEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/extract", `{"text":"Mg Mg, 2 shirts @ 15000"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/invoices/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".pdf")
	assert.Equal(t, "%PDF", w.Body.String()[:4])

	// download consumed the draft
	w = doJSON(t, r, http.MethodGet, "/v1/draft", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportEndpoint(t *testing.T) {
	r := newTestRouter(t)

	// finalize one invoice so history is non-empty
	doJSON(t, r, http.MethodPost, "/v1/extract", `{"text":"Mg Mg, 2 shirts @ 15000"}`)
	doJSON(t, r, http.MethodPost, "/v1/invoices/download", "")

	w := doJSON(t, r, http.MethodGet, "/v1/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.Bytes())
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
