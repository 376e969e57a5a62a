package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"srportal/internal/core/domain"
	"srportal/internal/core/port"
)

// ClientRepository implements port.ClientRepository on sr_clients and
// sr_campaigns.
type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `client_id, name, daily_activity_start_time::text, daily_activity_end_time::text,
       attribution_window_duration, ga4_filename, start_date`

func scanClient(row pgx.CollectableRow) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.Name, &c.DailyActivityStart, &c.DailyActivityEnd,
		&c.AttributionWindowDuration, &c.GA4Filename, &c.StartDate)
	return c, err
}

func (r *ClientRepository) ListClients(ctx context.Context, f port.ClientFilter) ([]domain.Client, error) {
	var w where
	w.search("name", f.Search)
	if f.StartDate != nil {
		w.add("start_date = $%d", *f.StartDate)
	}
	query := fmt.Sprintf(`SELECT %s FROM sr_clients %s ORDER BY name, client_id %s`, clientColumns, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanClient)
}

func (r *ClientRepository) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+clientColumns+` FROM sr_clients WHERE client_id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanClient)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) CreateClient(ctx context.Context, c *domain.Client) error {
	return r.pool.QueryRow(ctx, `
        INSERT INTO sr_clients (name, daily_activity_start_time, daily_activity_end_time,
                                attribution_window_duration, ga4_filename, start_date)
        VALUES ($1, $2::time, $3::time, $4, $5, $6)
        RETURNING client_id`,
		c.Name, c.DailyActivityStart, c.DailyActivityEnd, c.AttributionWindowDuration, c.GA4Filename, c.StartDate,
	).Scan(&c.ID)
}

func (r *ClientRepository) UpdateClient(ctx context.Context, c *domain.Client) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE sr_clients
        SET name = $2, daily_activity_start_time = $3::time, daily_activity_end_time = $4::time,
            attribution_window_duration = $5, ga4_filename = $6, start_date = $7
        WHERE client_id = $1`,
		c.ID, c.Name, c.DailyActivityStart, c.DailyActivityEnd, c.AttributionWindowDuration, c.GA4Filename, c.StartDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) ListCampaigns(ctx context.Context, f port.CampaignFilter) ([]domain.Campaign, error) {
	var w where
	w.search("name", f.Search)
	if f.ClientID != nil {
		w.add("client_id = $%d", *f.ClientID)
	}
	query := fmt.Sprintf(`SELECT campaign_id, client_id, name FROM sr_campaigns %s ORDER BY name, campaign_id %s`, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Campaign])
}

func (r *ClientRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT campaign_id, client_id, name FROM sr_campaigns WHERE campaign_id = $1`, id).
		Scan(&c.ID, &c.ClientID, &c.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO sr_campaigns (client_id, name) VALUES ($1, $2) RETURNING campaign_id`,
		c.ClientID, c.Name).Scan(&c.ID)
}

func (r *ClientRepository) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sr_campaigns SET client_id = $2, name = $3 WHERE campaign_id = $1`,
		c.ID, c.ClientID, c.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
