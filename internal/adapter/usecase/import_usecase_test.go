package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"srportal/internal/adapter/memory"
	"srportal/internal/config/configs"
	"srportal/internal/core/domain"
	"srportal/internal/core/port"
	"srportal/internal/core/port/mocks"
	"srportal/internal/csvimport"
)

type importMocks struct {
	store     *mocks.MockImportStore
	baselines *mocks.MockBaselineRepository
	pricing   *mocks.MockPricingRepository
}

func newImports(t *testing.T) (*ImportUseCase, importMocks) {
	m := importMocks{
		store:     mocks.NewMockImportStore(t),
		baselines: mocks.NewMockBaselineRepository(t),
		pricing:   mocks.NewMockPricingRepository(t),
	}
	cfg := configs.Import{TTL: 30 * time.Minute, MaxFileSize: 1 << 20, MaxRows: 1000, MaxErrors: 50, PreviewRows: 5}
	return NewImportUseCase(m.store, m.baselines, m.pricing, cfg, discardLogger()), m
}

func (m importMocks) expectSave() {
	m.store.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.ImportSession")).Return(nil)
}

func issueCodes(s *domain.ImportSession) []string {
	codes := make([]string, 0, len(s.Issues))
	for _, i := range s.Issues {
		codes = append(codes, i.Code)
	}
	return codes
}

func TestValidateProductBaselinesByName(t *testing.T) {
	svc, m := newImports(t)
	m.baselines.EXPECT().ResolveEntities(mock.Anything, domain.ProductBaselines, mock.Anything, []string{"Sofa", "sofa"}).
		Return([]domain.BaselineEntity{{ID: 5, ClientID: 1, Name: "Sofa"}}, nil)
	m.expectSave()

	csv := "item_name,day_of_week,hour_of_day,baseline_session,baseline_sales\n" +
		"Sofa,mon,9,10.5,2\n" +
		"sofa,Tuesday,10,3,1\n"
	s, err := svc.Validate(context.Background(), domain.ImportProductBaselines, "sofa.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, domain.ImportValidated, s.State)
	assert.Empty(t, s.Issues)
	assert.Equal(t, 2, s.TotalRows)
	assert.Equal(t, 2, s.ValidRows)
	assert.Equal(t, int64(len(csv)), s.FileSize)
	assert.Len(t, s.Preview, 2)
	assert.Equal(t, []domain.Baseline{
		{EntityID: 5, DayOfWeek: "Mon", HourOfDay: 9, Session: 10.5, Sales: 2},
		{EntityID: 5, DayOfWeek: "Tue", HourOfDay: 10, Session: 3, Sales: 1},
	}, s.Baselines)
}

func TestValidateBaselinesCollectsRowErrors(t *testing.T) {
	svc, m := newImports(t)
	m.baselines.EXPECT().ResolveEntities(mock.Anything, domain.PageBaselines, []int64{1, 1, 1, 9, 1}, mock.Anything).
		Return([]domain.BaselineEntity{{ID: 1, Name: "/home"}}, nil)
	m.expectSave()

	csv := "ga_page_id,day_of_week,hour_of_day,baseline_session,baseline_sales\n" +
		"1,Mon,0,1,1\n" +
		"1,Mon,0,2,2\n" +
		"1,Funday,1,1,1\n" +
		"9,Tue,1,1,1\n" +
		"1,Wed,24,-1,1\n"
	s, err := svc.Validate(context.Background(), domain.ImportPageBaselines, "pages.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, domain.ImportFailed, s.State)
	assert.Nil(t, s.Baselines)
	assert.Equal(t, 5, s.TotalRows)
	assert.Equal(t, 4, s.ErrorRows)
	assert.Equal(t, 1, s.ValidRows)
	assert.Equal(t, []string{
		csvimport.CodeDuplicateInFile,
		csvimport.CodeInvalidFormat,
		csvimport.CodeReferenceNotFound,
		csvimport.CodeInvalidRange,
		csvimport.CodeInvalidRange,
	}, issueCodes(s))
	assert.Equal(t, 3, s.Issues[0].Row)
	assert.Contains(t, s.Issues[0].Message, "row 2")
}

func TestValidateBaselinesAmbiguousName(t *testing.T) {
	svc, m := newImports(t)
	m.baselines.EXPECT().ResolveEntities(mock.Anything, domain.PageBaselines, mock.Anything, mock.Anything).
		Return([]domain.BaselineEntity{{ID: 1, Name: "/home"}, {ID: 2, Name: "/HOME"}}, nil)
	m.expectSave()

	csv := "url,day_of_week,hour_of_day,baseline_session,baseline_sales\n/home,Mon,0,1,1\n"
	s, err := svc.Validate(context.Background(), domain.ImportPageBaselines, "pages.csv", strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, []string{csvimport.CodeAmbiguousReference}, issueCodes(s))
	assert.Equal(t, "url", s.Issues[0].Column)
}

func TestValidateMissingColumns(t *testing.T) {
	svc, m := newImports(t)
	m.expectSave()

	s, err := svc.Validate(context.Background(), domain.ImportProductBaselines, "x.csv", strings.NewReader("day_of_week,hour_of_day\nMon,1\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.ImportFailed, s.State)
	require.Len(t, s.Issues, 1)
	assert.Equal(t, 0, s.Issues[0].Row)
	assert.Equal(t, csvimport.CodeMissingHeader, s.Issues[0].Code)
	assert.Equal(t, "missing required columns: ga_product_id or item_name, baseline_session, baseline_sales", s.Issues[0].Message)
}

func TestValidateFileLevelProblems(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"empty", "", csvimport.CodeEmptyFile},
		{"header only", strings.Join(domain.StationPriceColumns, ",") + "\n", csvimport.CodeEmptyFile},
		{"not utf8", "price_date\n\xff\xfe\n", csvimport.CodeInvalidEncoding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newImports(t)
			m.expectSave()

			s, err := svc.Validate(context.Background(), domain.ImportStationPrices, "p.csv", strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, domain.ImportFailed, s.State)
			assert.Equal(t, []string{tt.code}, issueCodes(s))
		})
	}
}

func (m importMocks) expectPricingLookups() {
	m.pricing.EXPECT().ListStations(mock.Anything).Return([]domain.Station{{ID: 1, Name: "ITV1"}, {ID: 2, Name: "Channel 4"}}, nil)
	m.pricing.EXPECT().ListSalesHouses(mock.Anything).Return([]domain.SalesHouse{{ID: 7, Name: "Sky Media"}}, nil)
	m.pricing.EXPECT().ListHours(mock.Anything).Return([]int{0, 6, 9, 12, 18, 23}, nil)
	m.pricing.EXPECT().ListDurations(mock.Anything).Return([]int{10, 30, 60}, nil)
}

func TestValidateStationPrices(t *testing.T) {
	svc, m := newImports(t)
	m.expectPricingLookups()
	m.expectSave()

	csv := "price_date,station_name,start_hour,end_hour,duration,sales_house_name,cost_type,cost\n" +
		"2025-08-01,ITV1,6,12,30,sky media,SPT,120.50\n" +
		"01/08/2025,channel 4,,,,,CPT,8\n"
	s, err := svc.Validate(context.Background(), domain.ImportStationPrices, "prices.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, domain.ImportValidated, s.State, s.Issues)

	require.Len(t, s.Prices, 2)
	first, second := s.Prices[0], s.Prices[1]
	assert.Equal(t, day(2025, 8, 1), first.PriceDate)
	assert.Equal(t, int64(1), first.StationID)
	assert.Equal(t, 6, *first.StartHour)
	assert.Equal(t, 12, *first.EndHour)
	assert.Equal(t, 30, *first.Duration)
	assert.Equal(t, int64(7), *first.SalesHouseID)
	assert.True(t, first.Cost.Equal(decimal.RequireFromString("120.5")))

	assert.Equal(t, day(2025, 8, 1), second.PriceDate)
	assert.Equal(t, int64(2), second.StationID)
	assert.Nil(t, second.StartHour)
	assert.Nil(t, second.EndHour)
	assert.Nil(t, second.Duration)
	assert.Nil(t, second.SalesHouseID)
}

func TestValidateStationPricesRowErrors(t *testing.T) {
	svc, m := newImports(t)
	m.expectPricingLookups()
	m.expectSave()

	header := "price_date,station_name,start_hour,end_hour,duration,sales_house_name,cost_type,cost\n"
	rows := []struct {
		line   string
		column string
		code   string
	}{
		{"2025-13-01,ITV1,,,,,SPT,1", "price_date", csvimport.CodeInvalidFormat},
		{"2025-08-01,BBC,,,,,SPT,1", "station_name", csvimport.CodeReferenceNotFound},
		{"2025-08-01,ITV1,6,,,,SPT,1", "end_hour", csvimport.CodeRequiredField},
		{"2025-08-01,ITV1,12,6,,,SPT,1", "end_hour", csvimport.CodeInvalidRange},
		{"2025-08-01,ITV1,7,12,,,SPT,1", "start_hour", csvimport.CodeReferenceNotFound},
		{"2025-08-01,ITV1,,,45,,SPT,1", "duration", csvimport.CodeReferenceNotFound},
		{"2025-08-01,ITV1,,,,Nobody,SPT,1", "sales_house_name", csvimport.CodeReferenceNotFound},
		{"2025-08-01,ITV1,,,,,SPOT,1", "cost_type", csvimport.CodeInvalidLength},
		{"2025-08-01,ITV1,,,,,SPT,-3", "cost", csvimport.CodeInvalidRange},
		{"2025-08-01,ITV1,,,,,,5", "cost_type", csvimport.CodeRequiredField},
	}
	var csv strings.Builder
	csv.WriteString(header)
	for _, r := range rows {
		csv.WriteString(r.line + "\n")
	}

	s, err := svc.Validate(context.Background(), domain.ImportStationPrices, "prices.csv", strings.NewReader(csv.String()))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportFailed, s.State)
	assert.Nil(t, s.Prices)
	assert.Equal(t, len(rows), s.ErrorRows)

	for i, r := range rows {
		issue := s.Issues[i]
		assert.Equal(t, i+2, issue.Row, r.line)
		assert.Equal(t, r.column, issue.Column, r.line)
		assert.Equal(t, r.code, issue.Code, r.line)
	}
}

func TestValidateFlagsTruncatedIssues(t *testing.T) {
	svc, m := newImports(t)
	m.expectPricingLookups()
	m.expectSave()

	var csv strings.Builder
	csv.WriteString("price_date,station_name,start_hour,end_hour,duration,sales_house_name,cost_type,cost\n")
	for range 60 {
		csv.WriteString("someday,ITV1,,,,,SPT,1\n")
	}

	s, err := svc.Validate(context.Background(), domain.ImportStationPrices, "prices.csv", strings.NewReader(csv.String()))
	require.NoError(t, err)
	assert.Equal(t, domain.ImportFailed, s.State)
	assert.Len(t, s.Issues, 50)
	assert.Equal(t, 60, s.TotalIssues)
	assert.Equal(t, 60, s.ErrorRows)
	assert.True(t, s.ErrorsTruncated)
}

func TestValidateStoreFailure(t *testing.T) {
	svc, m := newImports(t)
	boom := errors.New("redis down")
	m.store.EXPECT().Save(mock.Anything, mock.Anything).Return(boom)

	_, err := svc.Validate(context.Background(), domain.ImportStationPrices, "p.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, boom)
}

func validatedSession(kind domain.ImportKind) *domain.ImportSession {
	s := domain.NewImportSession(kind, "f.csv", 10, time.Now(), time.Hour)
	s.State = domain.ImportValidated
	return s
}

func TestCommitBaselines(t *testing.T) {
	svc, m := newImports(t)
	session := validatedSession(domain.ImportProductBaselines)
	session.Baselines = []domain.Baseline{{EntityID: 5, DayOfWeek: "Mon", HourOfDay: 1}}

	m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)
	m.store.EXPECT().Take(mock.Anything, session.Token).Return(session, nil)
	m.baselines.EXPECT().ReplaceBaselines(mock.Anything, domain.ProductBaselines, session.Baselines).Return(1, nil)

	done, err := svc.Commit(context.Background(), domain.ImportProductBaselines, session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportCompleted, done.State)
	assert.Equal(t, int64(1), done.Inserted)
}

func TestCommitStationPrices(t *testing.T) {
	svc, m := newImports(t)
	session := validatedSession(domain.ImportStationPrices)
	session.Prices = []domain.StationPrice{{StationID: 1, PriceDate: day(2025, 8, 1), CostType: "SPT"}}

	m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)
	m.store.EXPECT().Take(mock.Anything, session.Token).Return(session, nil)
	m.pricing.EXPECT().InsertStationPrices(mock.Anything, session.Prices).Return(1, nil)

	done, err := svc.Commit(context.Background(), domain.ImportStationPrices, session.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), done.Inserted)
}

func TestCommitInsertFailureKeepsSession(t *testing.T) {
	svc, m := newImports(t)
	session := validatedSession(domain.ImportStationPrices)
	boom := errors.New("unique violation")

	m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)
	m.store.EXPECT().Take(mock.Anything, session.Token).Return(session, nil)
	m.pricing.EXPECT().InsertStationPrices(mock.Anything, mock.Anything).Return(0, boom)
	m.store.EXPECT().Save(mock.Anything, session).Return(nil)

	_, err := svc.Commit(context.Background(), domain.ImportStationPrices, session.Token)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.ImportValidated, session.State)
}

func TestCommitInsertFailureRestoresSessionInStore(t *testing.T) {
	store := memory.NewImportStore(0)
	defer store.Close()
	pricing := mocks.NewMockPricingRepository(t)
	cfg := configs.Import{TTL: time.Hour}
	svc := NewImportUseCase(store, mocks.NewMockBaselineRepository(t), pricing, cfg, discardLogger())

	session := validatedSession(domain.ImportStationPrices)
	require.NoError(t, store.Save(context.Background(), session))
	pricing.EXPECT().InsertStationPrices(mock.Anything, mock.Anything).Return(0, errors.New("connection reset"))

	_, err := svc.Commit(context.Background(), domain.ImportStationPrices, session.Token)
	require.Error(t, err)

	got, err := svc.Get(context.Background(), domain.ImportStationPrices, session.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.ImportValidated, got.State)
}

func TestCommitSameTokenConcurrentlyInsertsOnce(t *testing.T) {
	store := memory.NewImportStore(0)
	defer store.Close()
	pricing := mocks.NewMockPricingRepository(t)
	cfg := configs.Import{TTL: time.Hour}
	svc := NewImportUseCase(store, mocks.NewMockBaselineRepository(t), pricing, cfg, discardLogger())

	session := validatedSession(domain.ImportStationPrices)
	session.Prices = []domain.StationPrice{{StationID: 1, PriceDate: day(2025, 8, 1), CostType: "SPT"}}
	require.NoError(t, store.Save(context.Background(), session))

	var inserts atomic.Int32
	pricing.EXPECT().InsertStationPrices(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []domain.StationPrice) (int64, error) {
			inserts.Add(1)
			time.Sleep(50 * time.Millisecond)
			return 1, nil
		})

	const commits = 2
	errs := make([]error, commits)
	var wg sync.WaitGroup
	for i := range commits {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.Commit(context.Background(), domain.ImportStationPrices, session.Token)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), inserts.Load())
	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, port.ErrImportNotFound)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 0, store.Len())
}

func TestCommitRejections(t *testing.T) {
	t.Run("failed validation", func(t *testing.T) {
		svc, m := newImports(t)
		session := validatedSession(domain.ImportStationPrices)
		session.State = domain.ImportFailed
		m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)

		_, err := svc.Commit(context.Background(), domain.ImportStationPrices, session.Token)
		assert.ErrorIs(t, err, port.ErrImportInvalid)
	})
	t.Run("other kind", func(t *testing.T) {
		svc, m := newImports(t)
		session := validatedSession(domain.ImportStationPrices)
		m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)

		_, err := svc.Commit(context.Background(), domain.ImportPageBaselines, session.Token)
		assert.ErrorIs(t, err, port.ErrImportKindMismatch)
	})
	t.Run("unknown token", func(t *testing.T) {
		svc, m := newImports(t)
		token := uuid.New()
		m.store.EXPECT().Get(mock.Anything, token).Return(nil, nil)

		_, err := svc.Commit(context.Background(), domain.ImportStationPrices, token)
		assert.ErrorIs(t, err, port.ErrImportNotFound)
	})
	t.Run("expired", func(t *testing.T) {
		svc, m := newImports(t)
		session := validatedSession(domain.ImportStationPrices)
		session.ExpiresAt = time.Now().Add(-time.Second)
		m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)

		_, err := svc.Get(context.Background(), domain.ImportStationPrices, session.Token)
		assert.ErrorIs(t, err, port.ErrImportNotFound)
	})
}

func TestDiscard(t *testing.T) {
	svc, m := newImports(t)
	session := validatedSession(domain.ImportPageBaselines)
	m.store.EXPECT().Get(mock.Anything, session.Token).Return(session, nil)
	m.store.EXPECT().Delete(mock.Anything, session.Token).Return(nil)

	require.NoError(t, svc.Discard(context.Background(), domain.ImportPageBaselines, session.Token))
}
