package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	query := `
		INSERT INTO campaigns (id, owner_id, name, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.OwnerID,
		c.Name,
		c.Status,
		c.CreatedAt,
		c.UpdatedAt,
	)

	if err != nil {
		// Unique (owner_id, name): nome repetido do mesmo dono vira conflito.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrCampaignNameTaken
		}
		return err
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Campaign, error) {
	query := `
		SELECT id, owner_id, name, status, created_at, updated_at
		FROM campaigns
		WHERE owner_id = $1 AND id = $2
	`

	var c entity.Campaign
	err := r.DB.QueryRowContext(ctx, query, ownerID, id).Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string, q entity.ListCampaignsQuery) ([]entity.Campaign, error) {
	query := `
		SELECT id, owner_id, name, status, created_at, updated_at
		FROM campaigns
		WHERE owner_id = $1`
	args := []any{ownerID}

	if q.Status != "" {
		args = append(args, q.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	// Sort/Order já passaram pela whitelist do usecase; ainda assim só
	// valores conhecidos entram na query.
	col := "created_at"
	if q.Sort == "name" {
		col = "name"
	}
	dir := "DESC"
	if q.Order == "asc" {
		dir = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", col, dir)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []entity.Campaign
	for rows.Next() {
		var c entity.Campaign
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(ctx context.Context, ownerID, id string, fields entity.CampaignUpdate) (*entity.Campaign, error) {
	query := `
		UPDATE campaigns
		SET name       = COALESCE($3, name),
		    status     = COALESCE($4, status),
		    updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING id, owner_id, name, status, created_at, updated_at
	`

	var c entity.Campaign
	err := r.DB.QueryRowContext(ctx, query, ownerID, id, fields.Name, fields.Status).Scan(
		&c.ID,
		&c.OwnerID,
		&c.Name,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entity.ErrCampaignNameTaken
		}
		return nil, err
	}
	return &c, nil
}

// Delete cascateia: leads da campanha e a campanha somem na MESMA transação.
// Ou tudo, ou nada: nunca lead apontando para campanha inexistente.
func (r *CampaignRepository) Delete(ctx context.Context, ownerID, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM leads WHERE owner_id = $1 AND campaign_id = $2`, ownerID, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM campaigns WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}

	return tx.Commit()
}
