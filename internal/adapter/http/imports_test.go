package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

const pricesCSV = "price_date,station_name,start_hour,end_hour,duration,sales_house_name,cost_type,cost\n" +
	"2025-08-01,ITV1,,,,,CPT,10\n"

func multipartUpload(t *testing.T, target, field, fileName, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("note", "ignored"))
	fw, err := mw.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = io.WriteString(fw, content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(f *fixture, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestValidateImportMultipart(t *testing.T) {
	f := newFixture(t)
	session := &domain.ImportSession{Token: uuid.New(), Kind: domain.ImportStationPrices, State: domain.ImportValidated, TotalRows: 1, ValidRows: 1}
	f.imports.EXPECT().Validate(mock.Anything, domain.ImportStationPrices, "prices.csv", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.ImportKind, _ string, r io.Reader) (*domain.ImportSession, error) {
			content, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, pricesCSV, string(content))
			return session, nil
		})

	rec := serve(f, multipartUpload(t, "/api/v1/imports/station-prices", "file", "prices.csv", pricesCSV))

	require.Equal(t, http.StatusCreated, rec.Code)
	var out domain.ImportSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, session.Token, out.Token)
	assert.Equal(t, domain.ImportValidated, out.State)
}

func TestValidateImportWithErrors(t *testing.T) {
	f := newFixture(t)
	session := &domain.ImportSession{
		Token:  uuid.New(),
		Kind:   domain.ImportProductBaselines,
		State:  domain.ImportFailed,
		Issues: []domain.ImportIssue{{Row: 0, Code: "ERR_IMPORT_MISSING_HEADER", Message: "missing required columns: hour_of_day"}},
	}
	f.imports.EXPECT().Validate(mock.Anything, domain.ImportProductBaselines, "upload.csv", mock.Anything).Return(session, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/product_baselines", strings.NewReader("ga_product_id\n1\n"))
	req.Header.Set("Content-Type", "text/csv")
	rec := serve(f, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_IMPORT_MISSING_HEADER")
}

func TestImportResponseOmitsValidatedRows(t *testing.T) {
	f := newFixture(t)
	session := &domain.ImportSession{
		Token:           uuid.New(),
		Kind:            domain.ImportStationPrices,
		State:           domain.ImportValidated,
		TotalIssues:     75,
		ErrorsTruncated: true,
		Preview:         []map[string]string{{"station_name": "ITV1"}},
		Prices:          []domain.StationPrice{{StationID: 1, CostType: "CPT"}},
		Baselines:       []domain.Baseline{{EntityID: 1, DayOfWeek: "Mon"}},
	}
	f.imports.EXPECT().Validate(mock.Anything, domain.ImportStationPrices, "prices.csv", mock.Anything).Return(session, nil)
	f.imports.EXPECT().Get(mock.Anything, domain.ImportStationPrices, session.Token).Return(session, nil)

	created := serve(f, multipartUpload(t, "/api/v1/imports/station_prices", "file", "prices.csv", pricesCSV))
	fetched := f.do(http.MethodGet, "/api/v1/imports/station_prices/"+session.Token.String(), nil)

	for _, rec := range []*httptest.ResponseRecorder{created, fetched} {
		var out map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.NotContains(t, out, "prices")
		assert.NotContains(t, out, "baselines")
		assert.Equal(t, true, out["errors_truncated"])
		assert.Len(t, out["preview"], 1)
		assert.Equal(t, []any{}, out["errors"])
	}
}

func TestValidateImportRawBodyName(t *testing.T) {
	f := newFixture(t)
	f.imports.EXPECT().Validate(mock.Anything, domain.ImportPageBaselines, "pages.csv", mock.Anything).
		Return(&domain.ImportSession{State: domain.ImportValidated}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/page-baselines?filename=pages.csv", strings.NewReader("x"))
	rec := serve(f, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestValidateImportWithoutFilePart(t *testing.T) {
	f := newFixture(t)

	rec := serve(f, multipartUpload(t, "/api/v1/imports/station_prices", "attachment", "prices.csv", pricesCSV))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, `no "file" part`)
}

func TestValidateImportUnknownKind(t *testing.T) {
	f := newFixture(t)

	rec := serve(f, multipartUpload(t, "/api/v1/imports/breaks", "file", "b.csv", "x"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateImportBodyTooLarge(t *testing.T) {
	f := newFixture(t)
	f.imports.EXPECT().Validate(mock.Anything, domain.ImportStationPrices, "big.csv", mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.ImportKind, _ string, r io.Reader) (*domain.ImportSession, error) {
			_, err := io.ReadAll(r)
			return nil, fmt.Errorf("read upload: %w", err)
		})

	big := strings.Repeat("a", 1<<20+uploadOverhead+1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/station_prices?filename=big.csv", strings.NewReader(big))
	rec := serve(f, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestImportLifecycle(t *testing.T) {
	token := uuid.New()
	base := "/api/v1/imports/station_prices/" + token.String()

	t.Run("get", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Get(mock.Anything, domain.ImportStationPrices, token).
			Return(&domain.ImportSession{Token: token, State: domain.ImportValidated}, nil)

		rec := f.do(http.MethodGet, base, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("commit", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Commit(mock.Anything, domain.ImportStationPrices, token).
			Return(&domain.ImportSession{Token: token, State: domain.ImportCompleted, Inserted: 12}, nil)

		rec := f.do(http.MethodPost, base+"/commit", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var out domain.ImportSession
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		assert.Equal(t, int64(12), out.Inserted)
		assert.Equal(t, domain.ImportCompleted, out.State)
	})

	t.Run("commit failed upload", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Commit(mock.Anything, domain.ImportStationPrices, token).Return(nil, port.ErrImportInvalid)

		rec := f.do(http.MethodPost, base+"/commit", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Commit(mock.Anything, domain.ImportStationPrices, token).Return(nil, port.ErrImportNotFound)

		rec := f.do(http.MethodPost, base+"/commit", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other kind", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Get(mock.Anything, domain.ImportStationPrices, token).Return(nil, port.ErrImportKindMismatch)

		rec := f.do(http.MethodGet, base, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("discard", func(t *testing.T) {
		f := newFixture(t)
		f.imports.EXPECT().Discard(mock.Anything, domain.ImportStationPrices, token).Return(nil)

		rec := f.do(http.MethodDelete, base, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/imports/station_prices/not-a-token", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
