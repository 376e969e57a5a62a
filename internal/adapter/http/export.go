package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// table is an extract ready to be written as CSV or XLSX. Cells keep their
// Go type so spreadsheets receive numbers rather than text.
type table struct {
	sheet  string
	header []string
	rows   [][]any
}

func baselineTable(e *port.BaselineExport) table {
	t := table{sheet: "baseline", header: e.Kind.ExportColumns()}
	for _, b := range e.Rows {
		t.rows = append(t.rows, []any{b.EntityID, b.DayOfWeek, b.HourOfDay, b.Session, b.Sales})
	}
	return t
}

func stationPriceTable(prices []domain.StationPrice) table {
	t := table{sheet: "station_prices", header: domain.StationPriceColumns}
	for _, p := range prices {
		t.rows = append(t.rows, []any{
			p.PriceDate.Format(domain.DateLayout),
			p.StationName,
			p.StartHour,
			p.EndHour,
			p.Duration,
			p.SalesHouseName,
			p.CostType,
			p.Cost,
		})
	}
	return t
}

// cellText renders a cell for CSV output. Nil pointers are empty cells.
func cellText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case decimal.Decimal:
		return c.String()
	case *int:
		if c == nil {
			return ""
		}
		return strconv.Itoa(*c)
	case *string:
		if c == nil {
			return ""
		}
		return *c
	default:
		return fmt.Sprint(c)
	}
}

// cellValue converts a cell for excelize, which wants plain values.
func cellValue(v any) any {
	switch c := v.(type) {
	case *int:
		if c == nil {
			return nil
		}
		return *c
	case *string:
		if c == nil {
			return nil
		}
		return *c
	case decimal.Decimal:
		return c.InexactFloat64()
	default:
		return c
	}
}

func (t table) writeCSV(w http.ResponseWriter, fileName string) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(fileName))

	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return err
	}
	record := make([]string, len(t.header))
	for _, row := range t.rows {
		for i, v := range row {
			record[i] = cellText(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (t table) xlsx() ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), t.sheet); err != nil {
		return nil, err
	}
	header := make([]any, len(t.header))
	for i, h := range t.header {
		header[i] = h
	}
	if err := xl.SetSheetRow(t.sheet, "A1", &header); err != nil {
		return nil, err
	}
	for ri, row := range t.rows {
		values := make([]any, len(row))
		for i, v := range row {
			values[i] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, ri+2)
		if err != nil {
			return nil, err
		}
		if err = xl.SetSheetRow(t.sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeTable picks the encoding from the `format` query parameter; csv is
// the default.
func (h *Handler) writeTable(w http.ResponseWriter, r *http.Request, t table, fileName func(ext string) string) {
	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "csv":
		if err := t.writeCSV(w, fileName("csv")); err != nil {
			h.logger.Error("write csv export error", slog.String("sheet", t.sheet), slog.Any("error", err))
		}
	case "xlsx":
		body, err := t.xlsx()
		if err != nil {
			h.fail(w, r, fmt.Errorf("build %s workbook: %w", t.sheet, err))
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", attachment(fileName("xlsx")))
		if _, err = w.Write(body); err != nil {
			h.logger.Error("write xlsx export error", slog.String("sheet", t.sheet), slog.Any("error", err))
		}
	default:
		h.fail(w, r, fmt.Errorf("%w: format must be csv or xlsx", port.ErrInvalidInput))
	}
}

func attachment(fileName string) string {
	return `attachment; filename="` + strings.ReplaceAll(fileName, `"`, "_") + `"`
}
