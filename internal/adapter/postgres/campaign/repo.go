// Package campaign implements the campaign repository using PostgreSQL.
// Queries are built with squirrel and executed through pgx.
package campaign

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fundrik/backend/internal/adapter/postgres"
	"github.com/fundrik/backend/internal/domain"
	"github.com/fundrik/backend/internal/service/campaign"
)

const table = "campaigns"

// Identifiers are stored as text: either the decimal rendering of a positive
// integer or a canonical lowercase UUID. Reading them back through the DTO
// restores the original kind.
var columns = []string{"id", "title", "is_active", "is_open", "has_target", "target_amount"}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides campaign persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new campaign repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByID returns the stored campaign, or (nil, nil) when no row matches.
func (r *Repo) FindByID(ctx context.Context, id domain.EntityID) (*campaign.CampaignDTO, error) {
	query := builder.Select(columns...).From(table).Where(sq.Eq{"id": id.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "campaign", id.String())
	}

	dto, err := scanCampaign(r.pool.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "campaign", id.String())
	}

	return &dto, nil
}

// FindAll returns every stored campaign in insertion order.
func (r *Repo) FindAll(ctx context.Context) ([]campaign.CampaignDTO, error) {
	query := builder.Select(columns...).From(table).OrderBy("created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "campaigns", "")
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "campaigns", "")
	}
	defer rows.Close()

	dtos := make([]campaign.CampaignDTO, 0)
	for rows.Next() {
		dto, err := scanCampaign(rows)
		if err != nil {
			return nil, postgres.MapError(err, "campaigns", "")
		}
		dtos = append(dtos, dto)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "campaigns", "")
	}

	return dtos, nil
}

// Exists reports whether a campaign with the same identifier is stored.
func (r *Repo) Exists(ctx context.Context, c domain.Campaign) (bool, error) {
	id := c.ID().String()
	query := builder.Select("1").From(table).Where(sq.Eq{"id": id}).Prefix("SELECT EXISTS (").Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, postgres.MapError(err, "campaign", id)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "campaign", id)
	}

	return exists, nil
}

// Insert stores a new campaign. A taken identifier surfaces as
// domain.ErrAlreadyExists under the repository marker.
func (r *Repo) Insert(ctx context.Context, c domain.Campaign) error {
	return r.insert(ctx, c.ID(), campaign.CampaignToDTO(c))
}

// InsertWithoutID stores a new campaign under a freshly generated UUID
// identifier and returns it.
func (r *Repo) InsertWithoutID(
	ctx context.Context,
	title domain.CampaignTitle,
	active, open bool,
	target domain.CampaignTarget,
) (domain.EntityID, error) {
	id, err := domain.EntityIDFromUUID(uuid.NewString())
	if err != nil {
		return domain.EntityID{}, postgres.MapError(err, "campaign", "")
	}

	c := domain.NewCampaign(id, title, active, open, target)
	if err := r.insert(ctx, id, campaign.CampaignToDTO(c)); err != nil {
		return domain.EntityID{}, err
	}

	return id, nil
}

func (r *Repo) insert(ctx context.Context, id domain.EntityID, dto campaign.CampaignDTO) error {
	query := builder.Insert(table).
		Columns(columns...).
		Values(id.String(), dto.Title, dto.IsActive, dto.IsOpen, dto.HasTarget, dto.TargetAmount)

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "campaign", id.String())
	}

	if _, err := r.pool.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "campaign", id.String())
	}

	return nil
}

// Update rewrites an existing campaign. A missing row surfaces as
// domain.ErrNotFound under the repository marker.
func (r *Repo) Update(ctx context.Context, c domain.Campaign) error {
	id := c.ID().String()
	dto := campaign.CampaignToDTO(c)

	query := builder.Update(table).
		Set("title", dto.Title).
		Set("is_active", dto.IsActive).
		Set("is_open", dto.IsOpen).
		Set("has_target", dto.HasTarget).
		Set("target_amount", dto.TargetAmount).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "campaign", id)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "campaign", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w: %w", id, domain.ErrRepository, domain.ErrNotFound)
	}

	return nil
}

// Save upserts a campaign and reports which branch the database took.
// xmax = 0 holds only for rows created by the current statement, which
// distinguishes the insert branch from the update branch.
func (r *Repo) Save(ctx context.Context, c domain.Campaign) (campaign.SaveResult, error) {
	id := c.ID().String()
	dto := campaign.CampaignToDTO(c)

	query := builder.Insert(table).
		Columns(columns...).
		Values(id, dto.Title, dto.IsActive, dto.IsOpen, dto.HasTarget, dto.TargetAmount).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			is_active = EXCLUDED.is_active,
			is_open = EXCLUDED.is_open,
			has_target = EXCLUDED.has_target,
			target_amount = EXCLUDED.target_amount,
			updated_at = now()
		RETURNING (xmax = 0)`)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", postgres.MapError(err, "campaign", id)
	}

	var inserted bool
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&inserted); err != nil {
		return "", postgres.MapError(err, "campaign", id)
	}

	if inserted {
		return campaign.SaveInserted, nil
	}
	return campaign.SaveUpdated, nil
}

// Delete removes a campaign. A missing row surfaces as domain.ErrNotFound
// under the repository marker.
func (r *Repo) Delete(ctx context.Context, id domain.EntityID) error {
	query := builder.Delete(table).Where(sq.Eq{"id": id.String()})

	sql, args, err := query.ToSql()
	if err != nil {
		return postgres.MapError(err, "campaign", id.String())
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "campaign", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %s: %w: %w", id.String(), domain.ErrRepository, domain.ErrNotFound)
	}

	return nil
}

func scanCampaign(row pgx.Row) (campaign.CampaignDTO, error) {
	var (
		id           string
		title        string
		isActive     bool
		isOpen       bool
		hasTarget    bool
		targetAmount int64
	)

	if err := row.Scan(&id, &title, &isActive, &isOpen, &hasTarget, &targetAmount); err != nil {
		return campaign.CampaignDTO{}, err
	}

	return campaign.CampaignDTO{
		ID:           id,
		Title:        title,
		IsActive:     isActive,
		IsOpen:       isOpen,
		HasTarget:    hasTarget,
		TargetAmount: targetAmount,
	}, nil
}
