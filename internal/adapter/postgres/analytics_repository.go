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

// AnalyticsRepository implements port.AnalyticsRepository. Products and
// pages are read only; mappings are maintained here.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) ListProducts(ctx context.Context, f port.ItemFilter) ([]domain.Product, error) {
	var w where
	w.search("item_name", f.Search)
	if f.ClientID != nil {
		w.add("client_id = $%d", *f.ClientID)
	}
	query := fmt.Sprintf(`SELECT ga_product_id, client_id, item_id, item_name FROM ga_products %s
        ORDER BY item_name, ga_product_id %s`, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Product])
}

func (r *AnalyticsRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.pool.QueryRow(ctx, `SELECT ga_product_id, client_id, item_id, item_name FROM ga_products WHERE ga_product_id = $1`, id).
		Scan(&p.ID, &p.ClientID, &p.ItemID, &p.ItemName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AnalyticsRepository) ListPages(ctx context.Context, f port.ItemFilter) ([]domain.Page, error) {
	var w where
	w.search("url", f.Search)
	if f.ClientID != nil {
		w.add("client_id = $%d", *f.ClientID)
	}
	query := fmt.Sprintf(`SELECT ga_page_id, client_id, url FROM ga_pages %s ORDER BY url, ga_page_id %s`, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Page])
}

func (r *AnalyticsRepository) GetPage(ctx context.Context, id int64) (*domain.Page, error) {
	var p domain.Page
	err := r.pool.QueryRow(ctx, `SELECT ga_page_id, client_id, url FROM ga_pages WHERE ga_page_id = $1`, id).
		Scan(&p.ID, &p.ClientID, &p.URL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const productMappingSelect = `
        SELECT m.map_id, m.ga_product_id, m.campaign_id, p.item_name
        FROM sr_product_mappings m
        JOIN ga_products p ON p.ga_product_id = m.ga_product_id`

func (r *AnalyticsRepository) ListProductMappings(ctx context.Context, f port.MappingFilter) ([]domain.ProductMapping, error) {
	var w where
	if f.CampaignID != nil {
		w.add("m.campaign_id = $%d", *f.CampaignID)
	}
	query := fmt.Sprintf(`%s %s ORDER BY m.map_id %s`, productMappingSelect, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ProductMapping])
}

func (r *AnalyticsRepository) FindProductMapping(ctx context.Context, campaignID, productID int64) (*domain.ProductMapping, error) {
	rows, err := r.pool.Query(ctx, productMappingSelect+`
        WHERE m.campaign_id = $1 AND m.ga_product_id = $2
        ORDER BY m.map_id LIMIT 1`, campaignID, productID)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.ProductMapping])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AnalyticsRepository) CreateProductMapping(ctx context.Context, m *domain.ProductMapping) error {
	return r.pool.QueryRow(ctx, `INSERT INTO sr_product_mappings (ga_product_id, campaign_id) VALUES ($1, $2) RETURNING map_id`,
		m.ProductID, m.CampaignID).Scan(&m.ID)
}

func (r *AnalyticsRepository) DeleteProductMapping(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sr_product_mappings WHERE map_id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

const pageMappingSelect = `
        SELECT m.map_id, m.ga_page_id, m.campaign_id, p.url
        FROM sr_page_mappings m
        JOIN ga_pages p ON p.ga_page_id = m.ga_page_id`

func (r *AnalyticsRepository) ListPageMappings(ctx context.Context, f port.MappingFilter) ([]domain.PageMapping, error) {
	var w where
	if f.CampaignID != nil {
		w.add("m.campaign_id = $%d", *f.CampaignID)
	}
	query := fmt.Sprintf(`%s %s ORDER BY m.map_id %s`, pageMappingSelect, w.String(), w.limit(f.Page))

	rows, err := r.pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.PageMapping])
}

func (r *AnalyticsRepository) FindPageMapping(ctx context.Context, campaignID, pageID int64) (*domain.PageMapping, error) {
	rows, err := r.pool.Query(ctx, pageMappingSelect+`
        WHERE m.campaign_id = $1 AND m.ga_page_id = $2
        ORDER BY m.map_id LIMIT 1`, campaignID, pageID)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByPos[domain.PageMapping])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *AnalyticsRepository) CreatePageMapping(ctx context.Context, m *domain.PageMapping) error {
	return r.pool.QueryRow(ctx, `INSERT INTO sr_page_mappings (ga_page_id, campaign_id) VALUES ($1, $2) RETURNING map_id`,
		m.PageID, m.CampaignID).Scan(&m.ID)
}

func (r *AnalyticsRepository) DeletePageMapping(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sr_page_mappings WHERE map_id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
