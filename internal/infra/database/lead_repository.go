package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	l.id, l.name, l.email, COALESCE(l.company, ''), l.status,
	l.last_contact_date, l.campaign_id, l.owner_id, l.created_at, l.updated_at,
	c.id, c.name
`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern monta o padrão de substring LITERAL do filtro de texto.
// %, _ e \ no termo são dados, não curingas; sem o escape, buscar
// "john_doe" também acharia "johnXdoe".
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// List é o scan ordenado do paginador: id estritamente maior que AfterID,
// ascendente, no máximo Limit linhas. O filtro compilado vira WHERE aqui,
// mesma semântica do LeadFilter.Matches.
func (r *LeadRepository) List(ctx context.Context, ownerID string, q entity.ListLeadsQuery) ([]entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN campaigns c ON c.id = l.campaign_id
		WHERE l.owner_id = $1`
	args := []any{ownerID}

	if q.Filter.Text != "" {
		args = append(args, likePattern(q.Filter.Text))
		n := len(args)
		query += fmt.Sprintf(" AND (l.name ILIKE $%d OR l.email ILIKE $%d OR COALESCE(l.company, '') ILIKE $%d)", n, n, n)
	}
	if q.Filter.Status != "" {
		args = append(args, q.Filter.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}
	if q.AfterID != "" {
		args = append(args, q.AfterID)
		query += fmt.Sprintf(" AND l.id > $%d", len(args))
	}

	args = append(args, q.Limit)
	query += fmt.Sprintf(" ORDER BY l.id ASC LIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

// ListByCampaign: visão da campanha é ordenada por nome (é uma lista fechada,
// sem cursor; o id ascendente só importa no listing global).
func (r *LeadRepository) ListByCampaign(ctx context.Context, ownerID, campaignID string, f entity.LeadFilter) ([]entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN campaigns c ON c.id = l.campaign_id
		WHERE l.owner_id = $1 AND l.campaign_id = $2`
	args := []any{ownerID, campaignID}

	if f.Text != "" {
		args = append(args, likePattern(f.Text))
		n := len(args)
		query += fmt.Sprintf(" AND (l.name ILIKE $%d OR l.email ILIKE $%d OR COALESCE(l.company, '') ILIKE $%d)", n, n, n)
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND l.status = $%d", len(args))
	}

	query += " ORDER BY l.name ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + `
		FROM leads l
		LEFT JOIN campaigns c ON c.id = l.campaign_id
		WHERE l.owner_id = $1 AND l.id = $2`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, ownerID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, owner_id, campaign_id, name, email, company, status, last_contact_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.OwnerID,
		lead.CampaignID,
		lead.Name,
		lead.Email,
		lead.Company,
		lead.Status,
		lead.LastContactDate,
		lead.CreatedAt,
		lead.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// Update aplica só os campos não-nil (COALESCE no SQL). Duas chamadas iguais
// produzem o mesmo estado final.
func (r *LeadRepository) Update(ctx context.Context, ownerID, id string, fields entity.LeadUpdate) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET status            = COALESCE($3, status),
		    last_contact_date = COALESCE($4, last_contact_date),
		    updated_at        = NOW()
		WHERE owner_id = $1 AND id = $2
	`

	res, err := r.DB.ExecContext(ctx, query, ownerID, id, fields.Status, fields.LastContactDate)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, entity.ErrNotFound
	}

	return r.FindByID(ctx, ownerID, id)
}

// UpsertByEmail é a porta de entrada do import: (owner, email) é a chave.
// Campos vazios da mensagem nunca apagam dados já existentes.
func (r *LeadRepository) UpsertByEmail(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, owner_id, campaign_id, name, email, company, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
		ON CONFLICT (owner_id, email)
		DO UPDATE SET
			name        = COALESCE(NULLIF(EXCLUDED.name, ''), leads.name),
			company     = COALESCE(EXCLUDED.company, leads.company),
			campaign_id = COALESCE(EXCLUDED.campaign_id, leads.campaign_id),
			updated_at  = NOW()
		RETURNING id, status, created_at, updated_at
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.ID,
		lead.OwnerID,
		lead.CampaignID,
		lead.Name,
		lead.Email,
		lead.Company,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
}

// StatsByCampaign agrega todas as campanhas pedidas em um GROUP BY só,
// nada de uma query por campanha no listing.
func (r *LeadRepository) StatsByCampaign(ctx context.Context, ownerID string, campaignIDs []string) (map[string]entity.CampaignStats, error) {
	stats := make(map[string]entity.CampaignStats, len(campaignIDs))
	if len(campaignIDs) == 0 {
		return stats, nil
	}

	placeholders := make([]string, len(campaignIDs))
	args := []any{ownerID}
	for i, id := range campaignIDs {
		args = append(args, id)
		placeholders[i] = fmt.Sprintf("$%d", len(args))
	}

	query := fmt.Sprintf(`
		SELECT campaign_id,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'converted')
		FROM leads
		WHERE owner_id = $1 AND campaign_id IN (%s)
		GROUP BY campaign_id
	`, strings.Join(placeholders, ", "))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var campaignID string
		var s entity.CampaignStats
		if err := rows.Scan(&campaignID, &s.LeadCount, &s.SuccessCount); err != nil {
			return nil, err
		}
		stats[campaignID] = s
	}
	return stats, rows.Err()
}

func scanLeads(rows *sql.Rows) ([]entity.Lead, error) {
	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var campaignID, campaignName sql.NullString

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Company,
		&lead.Status,
		&lead.LastContactDate,
		&lead.CampaignID,
		&lead.OwnerID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&campaignID,
		&campaignName,
	)
	if err != nil {
		return nil, err
	}

	if campaignID.Valid {
		lead.Campaign = &entity.CampaignRef{ID: campaignID.String, Name: campaignName.String}
	}
	return &lead, nil
}
