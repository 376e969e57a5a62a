package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"srportal/internal/core/domain"
)

// SeedSummary counts what Seed inserted.
type SeedSummary struct {
	Clients   int
	Baselines int
	Prices    int
	Breaks    int
}

// Seed fills an empty development database with demo records: lookups,
// two clients with campaigns, analytics items and baselines, one pricing
// sheet and a week of breaks that the sheet can price. It does nothing when
// clients already exist.
func Seed(ctx context.Context, pool *pgxpool.Pool) (SeedSummary, error) {
	var (
		summary SeedSummary
		count   int
	)
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM sr_clients`).Scan(&count); err != nil {
		return summary, err
	}
	if count > 0 {
		return summary, nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return summary, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if summary, err = seed(ctx, tx); err != nil {
		return summary, err
	}
	return summary, tx.Commit(ctx)
}

func seed(ctx context.Context, tx pgx.Tx) (SeedSummary, error) {
	var summary SeedSummary
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// lookups
	if _, err := tx.Exec(ctx, `INSERT INTO hours (hour) SELECT generate_series(0, 23) ON CONFLICT DO NOTHING`); err != nil {
		return summary, err
	}
	durations := []int{10, 20, 30, 40, 60}
	for _, d := range durations {
		if _, err := tx.Exec(ctx, `INSERT INTO spot_duration (duration_seconds) VALUES ($1) ON CONFLICT DO NOTHING`, d); err != nil {
			return summary, err
		}
	}
	stations, err := insertNamed(ctx, tx, `INSERT INTO sr_stations (station_name) VALUES ($1) RETURNING station_id`,
		"ITV1", "Channel 4", "Channel 5", "Sky One")
	if err != nil {
		return summary, err
	}
	houses, err := insertNamed(ctx, tx, `INSERT INTO sr_sales_houses (sales_house_name) VALUES ($1) RETURNING sales_house_id`,
		"ITV Sales", "Channel 4 Sales", "Sky Media")
	if err != nil {
		return summary, err
	}

	// clients with their campaigns, items and baselines
	for i := 1; i <= 2; i++ {
		var clientID int64
		err = tx.QueryRow(ctx, `INSERT INTO sr_clients
    (name, daily_activity_start_time, daily_activity_end_time, attribution_window_duration, ga4_filename, start_date)
VALUES ($1, '06:00:00', '23:59:59', $2, $3, $4) RETURNING client_id`,
			fmt.Sprintf("Demo Client %d", i), 5*i, fmt.Sprintf("client_%d_ga4.csv", i),
			time.Now().AddDate(0, -i, 0)).Scan(&clientID)
		if err != nil {
			return summary, err
		}
		summary.Clients++

		var campaignID int64
		err = tx.QueryRow(ctx, `INSERT INTO sr_campaigns (client_id, name) VALUES ($1, $2) RETURNING campaign_id`,
			clientID, fmt.Sprintf("Client %d launch", i)).Scan(&campaignID)
		if err != nil {
			return summary, err
		}

		for j := 1; j <= 3; j++ {
			var productID, pageID int64
			err = tx.QueryRow(ctx, `INSERT INTO ga_products (client_id, item_id, item_name) VALUES ($1, $2, $3) RETURNING ga_product_id`,
				clientID, fmt.Sprintf("SKU-%d-%02d", i, j), fmt.Sprintf("Product %d.%d", i, j)).Scan(&productID)
			if err != nil {
				return summary, err
			}
			err = tx.QueryRow(ctx, `INSERT INTO ga_pages (client_id, url) VALUES ($1, $2) RETURNING ga_page_id`,
				clientID, fmt.Sprintf("https://client%d.example.com/landing/%d", i, j)).Scan(&pageID)
			if err != nil {
				return summary, err
			}
			if j == 1 {
				if _, err = tx.Exec(ctx, `INSERT INTO sr_product_mappings (ga_product_id, campaign_id) VALUES ($1, $2)`, productID, campaignID); err != nil {
					return summary, err
				}
				if _, err = tx.Exec(ctx, `INSERT INTO sr_page_mappings (ga_page_id, campaign_id) VALUES ($1, $2)`, pageID, campaignID); err != nil {
					return summary, err
				}
			}

			rows := make([][]any, 0, len(domain.DaysOfWeek)*24)
			for _, day := range domain.DaysOfWeek {
				for hour := 0; hour < 24; hour++ {
					session := float64(r.Intn(200)) + r.Float64()
					rows = append(rows, []any{productID, day, hour, session, session * 0.03})
				}
			}
			n, err := tx.CopyFrom(ctx, pgx.Identifier{"product_baselines"},
				[]string{"ga_product_id", "day_of_week", "hour_of_day", "baseline_session", "baseline_sales"},
				pgx.CopyFromRows(rows))
			if err != nil {
				return summary, err
			}
			summary.Baselines += int(n)
		}

		for k := 1; k <= 2; k++ {
			var linked *int64
			if k == 1 {
				linked = &campaignID
			}
			_, err = tx.Exec(ctx, `INSERT INTO sr_commercials
    (advertiser_id, campaign_id, clearcast_commercial_title, commercial_number, web_address)
VALUES ($1, $2, $3, $4, $5)`,
				clientID, linked, fmt.Sprintf("Client %d spot %d", i, k),
				fmt.Sprintf("DEM/CLI%03d/%03d/030", i, k), fmt.Sprintf("client%d.example.com", i))
			if err != nil {
				return summary, err
			}
		}
	}

	// pricing sheet starting on Monday of the current week
	now := time.Now().UTC()
	sheet := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	sheet = sheet.AddDate(0, 0, -((int(sheet.Weekday()) + 6) % 7))
	if _, err = tx.Exec(ctx, `INSERT INTO sr_pricing_sheets (price_date, note) VALUES ($1, 'Demo rate card')`, sheet); err != nil {
		return summary, err
	}
	for _, station := range stations {
		// station-wide fallback first so the specific rules below take priority
		_, err = tx.Exec(ctx, `INSERT INTO sr_station_prices (price_date, station_id, cost_type, cost) VALUES ($1, $2, 'CPT', $3)`,
			sheet, station, 4+r.Intn(4))
		if err != nil {
			return summary, err
		}
		_, err = tx.Exec(ctx, `INSERT INTO sr_station_prices
    (price_date, station_id, start_hour, end_hour, duration, sales_house_id, cost_type, cost)
VALUES ($1, $2, 18, 23, 30, $3, 'CPT', $4)`,
			sheet, station, houses[r.Intn(len(houses))], 12+r.Intn(8))
		if err != nil {
			return summary, err
		}
		summary.Prices += 2
	}

	// a week of unpriced breaks
	for d := 0; d < 7; d++ {
		for n := 0; n < 6; n++ {
			at := sheet.AddDate(0, 0, d).Add(time.Duration(6+r.Intn(18))*time.Hour + time.Duration(r.Intn(60))*time.Minute)
			var house *int64
			if r.Intn(4) > 0 {
				house = &houses[r.Intn(len(houses))]
			}
			_, err = tx.Exec(ctx, `INSERT INTO sr_breaks (station_id, break_datetime, spot_duration, sales_house_id) VALUES ($1, $2, $3, $4)`,
				stations[r.Intn(len(stations))], at, durations[r.Intn(len(durations))], house)
			if err != nil {
				return summary, err
			}
			summary.Breaks++
		}
	}
	return summary, nil
}

// insertNamed runs query once per name and returns the generated ids.
func insertNamed(ctx context.Context, tx pgx.Tx, query string, names ...string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		var id int64
		if err := tx.QueryRow(ctx, query, name).Scan(&id); err != nil {
			return nil, fmt.Errorf("seed %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
