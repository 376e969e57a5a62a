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

// CommercialRepository implements port.CommercialRepository.
type CommercialRepository struct {
	pool *pgxpool.Pool
}

func NewCommercialRepository(pool *pgxpool.Pool) *CommercialRepository {
	return &CommercialRepository{pool: pool}
}

const commercialColumns = `commercial_id, advertiser_id, campaign_id, clearcast_commercial_title, commercial_number, web_address`

func (r *CommercialRepository) ListCommercials(ctx context.Context, f port.CommercialFilter) ([]domain.Commercial, error) {
	var w where
	w.search("clearcast_commercial_title", f.Search)
	if f.CampaignID != nil {
		w.add("campaign_id = $%d", *f.CampaignID)
	}
	query := fmt.Sprintf(`SELECT %s FROM sr_commercials %s ORDER BY commercial_id %s`, commercialColumns, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Commercial])
}

func (r *CommercialRepository) GetCommercial(ctx context.Context, id int64) (*domain.Commercial, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+commercialColumns+` FROM sr_commercials WHERE commercial_id = $1`, id)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.Commercial])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetCommercialCampaign links the commercial to campaignID, or unlinks it
// when campaignID is nil.
func (r *CommercialRepository) SetCommercialCampaign(ctx context.Context, id int64, campaignID *int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE sr_commercials SET campaign_id = $2 WHERE commercial_id = $1`, id, campaignID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}
