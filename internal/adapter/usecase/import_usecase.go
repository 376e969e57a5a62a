package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"srportal/internal/config/configs"
	"srportal/internal/core/domain"
	"srportal/internal/core/port"
	"srportal/internal/csvimport"
)

// Accepted layouts of the price_date column, canonical first.
var priceDateLayouts = []string{domain.DateLayout, "02/01/2006"}

// ImportUseCase implements port.ImportUseCase. Uploads are validated in
// full, kept in the store until committed and written in one transaction.
type ImportUseCase struct {
	store     port.ImportStore
	baselines port.BaselineRepository
	pricing   port.PricingRepository
	cfg       configs.Import
	logger    *slog.Logger
	now       func() time.Time
}

var _ port.ImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(store port.ImportStore, baselines port.BaselineRepository, pricing port.PricingRepository, cfg configs.Import, logger *slog.Logger) *ImportUseCase {
	return &ImportUseCase{
		store:     store,
		baselines: baselines,
		pricing:   pricing,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate parses and checks an upload and stores the outcome. A file with
// any error yields a session in the failed state rather than an error; the
// returned error is reserved for infrastructure failures.
func (u *ImportUseCase) Validate(ctx context.Context, kind domain.ImportKind, fileName string, r io.Reader) (*domain.ImportSession, error) {
	session := domain.NewImportSession(kind, fileName, 0, u.now(), u.cfg.TTL)
	errs := csvimport.NewErrorCollection(u.cfg.MaxErrors)

	if err := u.parse(ctx, session, r, errs); err != nil {
		return nil, err
	}

	session.Issues = issuesOf(errs)
	session.TotalIssues = errs.TotalCount()
	session.ErrorsTruncated = errs.IsTruncated()
	session.ErrorRows = errs.FailedRows()
	session.ValidRows = max(session.TotalRows-session.ErrorRows, 0)
	if errs.HasErrors() {
		session.State = domain.ImportFailed
		session.Baselines, session.Prices = nil, nil
	} else {
		session.State = domain.ImportValidated
	}

	if err := u.store.Save(ctx, session); err != nil {
		return nil, err
	}
	u.logger.Info("import validated",
		slog.String("token", session.Token.String()),
		slog.String("kind", string(kind)),
		slog.String("file", fileName),
		slog.String("state", string(session.State)),
		slog.Int("rows", session.TotalRows),
		slog.Int("errors", session.TotalIssues),
	)
	return session, nil
}

// parse fills session from r. File level problems are recorded in errs.
func (u *ImportUseCase) parse(ctx context.Context, session *domain.ImportSession, r io.Reader, errs *csvimport.ErrorCollection) error {
	parser, err := csvimport.NewParser(r, csvimport.Limits{MaxFileSize: u.cfg.MaxFileSize, MaxRows: u.cfg.MaxRows})
	if err != nil {
		if isUploadError(err) {
			fileError(errs, err)
			return nil
		}
		return err
	}
	session.FileSize = parser.Size()

	if err = parser.ParseHeader(); err != nil {
		fileError(errs, err)
		return nil
	}
	if missing := requiredColumns(session.Kind, parser); len(missing) > 0 {
		errs.MissingHeaders(missing)
		return nil
	}

	rows, err := parser.ReadAll(errs)
	if err != nil {
		fileError(errs, err)
		return nil
	}
	session.TotalRows = parser.TotalRows()
	if session.TotalRows == 0 {
		errs.FileError(csvimport.CodeEmptyFile, "CSV file contains no data rows")
		return nil
	}
	for i := 0; i < len(rows) && i < u.cfg.PreviewRows; i++ {
		session.Preview = append(session.Preview, rows[i].Data)
	}

	if baselineKind, ok := session.Kind.BaselineKind(); ok {
		session.Baselines, err = u.validateBaselines(ctx, baselineKind, parser, rows, errs)
	} else {
		session.Prices, err = u.validateStationPrices(ctx, rows, errs)
	}
	return err
}

// fileError records a failure that concerns the whole upload.
func fileError(errs *csvimport.ErrorCollection, err error) {
	errs.FileError(csvimport.CodeOf(err), err.Error())
}

// isUploadError reports whether err describes the upload itself rather than
// a failure to receive it.
func isUploadError(err error) bool {
	for _, known := range []error{
		csvimport.ErrEmptyFile, csvimport.ErrInvalidEncoding, csvimport.ErrFileTooLarge,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}

func requiredColumns(kind domain.ImportKind, p *csvimport.Parser) []string {
	baselineKind, ok := kind.BaselineKind()
	if !ok {
		return p.Missing(domain.StationPriceColumns...)
	}
	missing := p.Missing("day_of_week", "hour_of_day", "baseline_session", "baseline_sales")
	if !p.HasHeader(baselineKind.IDColumn) && !p.HasHeader(baselineKind.NameColumn) {
		missing = append([]string{baselineKind.IDColumn + " or " + baselineKind.NameColumn}, missing...)
	}
	return missing
}

func issuesOf(errs *csvimport.ErrorCollection) []domain.ImportIssue {
	issues := make([]domain.ImportIssue, 0, len(errs.Errors()))
	for _, e := range errs.Errors() {
		issues = append(issues, domain.ImportIssue{Row: e.Row, Column: e.Column, Code: e.Code, Message: e.Message, Value: e.Value})
	}
	return issues
}

func (u *ImportUseCase) validateBaselines(ctx context.Context, kind domain.BaselineKind, p *csvimport.Parser, rows []*csvimport.Row, errs *csvimport.ErrorCollection) ([]domain.Baseline, error) {
	byID, byName, err := u.resolveEntities(ctx, kind, p, rows)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]int, len(rows))
	out := make([]domain.Baseline, 0, len(rows))
	for _, row := range rows {
		cells := csvimport.NewCells(row, errs)

		var entityID int64
		if raw := row.Get(kind.IDColumn); raw != "" || !p.HasHeader(kind.NameColumn) {
			id, ok := cells.Int(kind.IDColumn)
			if ok {
				if _, known := byID[id]; !known {
					cells.Fail(kind.IDColumn, csvimport.CodeReferenceNotFound, fmt.Sprintf("%s %d not found", kind.Name, id), raw)
				}
				entityID = id
			}
		} else if name, ok := cells.Required(kind.NameColumn); ok {
			switch matches := byName[strings.ToLower(name)]; len(matches) {
			case 0:
				cells.Fail(kind.NameColumn, csvimport.CodeReferenceNotFound, fmt.Sprintf("%s '%s' not found", kind.Name, name), name)
			case 1:
				entityID = matches[0].ID
			default:
				cells.Fail(kind.NameColumn, csvimport.CodeAmbiguousReference,
					fmt.Sprintf("%d %ss are named '%s', use %s instead", len(matches), kind.Name, name, kind.IDColumn), name)
			}
		}

		var day string
		if raw, ok := cells.Required("day_of_week"); ok {
			if day, ok = domain.NormalizeDayOfWeek(raw); !ok {
				cells.Fail("day_of_week", csvimport.CodeInvalidFormat,
					"expected one of "+strings.Join(domain.DaysOfWeek, ", "), raw)
			}
		}
		hour, _ := cells.IntRange("hour_of_day", 0, 23)
		session, _ := cells.Float("baseline_session")
		sales, _ := cells.Float("baseline_sales")
		if !cells.OK() {
			continue
		}

		b := domain.Baseline{EntityID: entityID, DayOfWeek: day, HourOfDay: int(hour), Session: session, Sales: sales}
		if first, dup := seen[b.Key()]; dup {
			cells.Fail("hour_of_day", csvimport.CodeDuplicateInFile,
				fmt.Sprintf("%s %d already has a %s %02d:00 baseline in row %d", kind.Name, entityID, day, hour, first), "")
			continue
		}
		seen[b.Key()] = row.Line
		out = append(out, b)
	}
	return out, nil
}

// resolveEntities loads every entity the rows refer to by id or by name.
func (u *ImportUseCase) resolveEntities(ctx context.Context, kind domain.BaselineKind, p *csvimport.Parser, rows []*csvimport.Row) (map[int64]domain.BaselineEntity, map[string][]domain.BaselineEntity, error) {
	var (
		ids   []int64
		names []string
	)
	for _, row := range rows {
		if raw := row.Get(kind.IDColumn); raw != "" {
			var id int64
			if _, err := fmt.Sscan(raw, &id); err == nil {
				ids = append(ids, id)
			}
			continue
		}
		if p.HasHeader(kind.NameColumn) && row.Get(kind.NameColumn) != "" {
			names = append(names, row.Get(kind.NameColumn))
		}
	}

	entities, err := u.baselines.ResolveEntities(ctx, kind, ids, names)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve %ss: %w", kind.Name, err)
	}
	byID := make(map[int64]domain.BaselineEntity, len(entities))
	byName := make(map[string][]domain.BaselineEntity, len(entities))
	for _, e := range entities {
		byID[e.ID] = e
		key := strings.ToLower(e.Name)
		byName[key] = append(byName[key], e)
	}
	return byID, byName, nil
}

// pricingLookups holds the reference tables a pricing upload is checked
// against. Names are keyed in lower case.
type pricingLookups struct {
	stations    map[string][]int64
	salesHouses map[string][]int64
	hours       map[int]struct{}
	durations   map[int]struct{}
}

func (u *ImportUseCase) loadPricingLookups(ctx context.Context) (*pricingLookups, error) {
	stations, err := u.pricing.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stations: %w", err)
	}
	houses, err := u.pricing.ListSalesHouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales houses: %w", err)
	}
	hours, err := u.pricing.ListHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hours: %w", err)
	}
	durations, err := u.pricing.ListDurations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load durations: %w", err)
	}

	l := &pricingLookups{
		stations:    make(map[string][]int64, len(stations)),
		salesHouses: make(map[string][]int64, len(houses)),
		hours:       make(map[int]struct{}, len(hours)),
		durations:   make(map[int]struct{}, len(durations)),
	}
	for _, s := range stations {
		key := strings.ToLower(strings.TrimSpace(s.Name))
		l.stations[key] = append(l.stations[key], s.ID)
	}
	for _, h := range houses {
		key := strings.ToLower(strings.TrimSpace(h.Name))
		l.salesHouses[key] = append(l.salesHouses[key], h.ID)
	}
	for _, h := range hours {
		l.hours[h] = struct{}{}
	}
	for _, d := range durations {
		l.durations[d] = struct{}{}
	}
	return l, nil
}

// lookupName resolves a name to exactly one id, recording a failure
// otherwise.
func lookupName(cells *csvimport.Cells, column, what, name string, ids map[string][]int64) (int64, bool) {
	switch matches := ids[strings.ToLower(name)]; len(matches) {
	case 0:
		cells.Fail(column, csvimport.CodeReferenceNotFound, fmt.Sprintf("%s '%s' not found", what, name), name)
	case 1:
		return matches[0], true
	default:
		cells.Fail(column, csvimport.CodeAmbiguousReference, fmt.Sprintf("%d %ss are named '%s'", len(matches), what, name), name)
	}
	return 0, false
}

func (u *ImportUseCase) validateStationPrices(ctx context.Context, rows []*csvimport.Row, errs *csvimport.ErrorCollection) ([]domain.StationPrice, error) {
	lookups, err := u.loadPricingLookups(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.StationPrice, 0, len(rows))
	for _, row := range rows {
		cells := csvimport.NewCells(row, errs)
		var p domain.StationPrice

		p.PriceDate, _ = cells.Date("price_date", priceDateLayouts...)
		if name, ok := cells.Required("station_name"); ok {
			p.StationID, _ = lookupName(cells, "station_name", "station", name, lookups.stations)
		}

		start, startOK := cells.OptionalInt("start_hour")
		end, endOK := cells.OptionalInt("end_hour")
		if startOK && endOK {
			switch {
			case (start == nil) != (end == nil):
				column := "end_hour"
				if start == nil {
					column = "start_hour"
				}
				cells.Fail(column, csvimport.CodeRequiredField, "start_hour and end_hour must both be set or both be empty", "")
			case start != nil:
				if checkHour(cells, "start_hour", *start, lookups.hours) && checkHour(cells, "end_hour", *end, lookups.hours) && *start >= *end {
					cells.Fail("end_hour", csvimport.CodeInvalidRange, "end_hour must be after start_hour", row.Get("end_hour"))
				}
				p.StartHour, p.EndHour = start, end
			}
		}

		if duration, ok := cells.OptionalInt("duration"); ok && duration != nil {
			if _, known := lookups.durations[*duration]; !known {
				cells.Fail("duration", csvimport.CodeReferenceNotFound, fmt.Sprintf("spot duration %d not found", *duration), row.Get("duration"))
			}
			p.Duration = duration
		}

		if name := cells.Optional("sales_house_name"); name != "" {
			if id, ok := lookupName(cells, "sales_house_name", "sales house", name, lookups.salesHouses); ok {
				p.SalesHouseID = &id
			}
		}

		if costType, ok := cells.Required("cost_type"); ok && cells.MaxLength("cost_type", costType, 3) {
			p.CostType = costType
		}
		p.Cost, _ = cells.Decimal("cost")

		if cells.OK() {
			out = append(out, p)
		}
	}
	return out, nil
}

func checkHour(cells *csvimport.Cells, column string, hour int, hours map[int]struct{}) bool {
	if _, ok := hours[hour]; !ok {
		cells.Fail(column, csvimport.CodeReferenceNotFound, fmt.Sprintf("hour %d not found", hour), fmt.Sprint(hour))
		return false
	}
	return true
}

func (u *ImportUseCase) load(ctx context.Context, kind domain.ImportKind, token uuid.UUID) (*domain.ImportSession, error) {
	session, err := u.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(u.now()) {
		return nil, fmt.Errorf("import %s: %w", token, port.ErrImportNotFound)
	}
	if session.Kind != kind {
		return nil, fmt.Errorf("import %s is a %s upload: %w", token, session.Kind, port.ErrImportKindMismatch)
	}
	return session, nil
}

func (u *ImportUseCase) Get(ctx context.Context, kind domain.ImportKind, token uuid.UUID) (*domain.ImportSession, error) {
	return u.load(ctx, kind, token)
}

// Commit writes a validated upload and forgets it. Failed uploads are
// rejected with port.ErrImportInvalid and stay available for inspection.
// The session is claimed from the store before inserting, so a token is
// committed at most once; a concurrent commit of the same token gets
// port.ErrImportNotFound. The session is put back when the insert fails.
func (u *ImportUseCase) Commit(ctx context.Context, kind domain.ImportKind, token uuid.UUID) (*domain.ImportSession, error) {
	session, err := u.load(ctx, kind, token)
	if err != nil {
		return nil, err
	}
	if session.State != domain.ImportValidated {
		return nil, fmt.Errorf("import %s: %w", token, port.ErrImportInvalid)
	}

	if session, err = u.store.Take(ctx, token); err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("import %s already committed or expired: %w", token, port.ErrImportNotFound)
	}

	var inserted int64
	if baselineKind, ok := kind.BaselineKind(); ok {
		inserted, err = u.baselines.ReplaceBaselines(ctx, baselineKind, session.Baselines)
	} else {
		inserted, err = u.pricing.InsertStationPrices(ctx, session.Prices)
	}
	if err != nil {
		if restoreErr := u.store.Save(context.WithoutCancel(ctx), session); restoreErr != nil {
			u.logger.Error("failed to restore import after insert error",
				slog.String("token", token.String()), slog.Any("error", restoreErr))
		}
		return nil, fmt.Errorf("insert import %s: %w", token, err)
	}

	session.State = domain.ImportCompleted
	session.Inserted = inserted
	u.logger.Info("import committed",
		slog.String("token", token.String()),
		slog.String("kind", string(kind)),
		slog.Int64("inserted", inserted),
	)
	return session, nil
}

func (u *ImportUseCase) Discard(ctx context.Context, kind domain.ImportKind, token uuid.UUID) error {
	if _, err := u.load(ctx, kind, token); err != nil {
		return err
	}
	return u.store.Delete(ctx, token)
}
