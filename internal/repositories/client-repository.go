package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"inventory-system/internal/entities"
	db "inventory-system/internal/infrastructure/bd"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/types"
)

var clientMap = map[string]string{
	"id":             "c.id",
	"name":           "c.name",
	"identification": "c.identification",
	"area_id":        "c.area_id",
}

type ClientRepositoryInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error)
	FindClient(ctx context.Context, id uint64) (*entities.Client, error)
	CreateClient(ctx context.Context, client entities.Client) (uint64, error)
	UpdateClient(ctx context.Context, id uint64, client entities.Client) error
	DeleteClient(ctx context.Context, id uint64) error
}

type ClientRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewClientRepository(storage *pgxpool.Pool, logger *zap.Logger) ClientRepositoryInterface {
	return &ClientRepository{storage: storage, logger: logger}
}

func scanClient(row pgx.Row) (*entities.Client, error) {
	var c entities.Client
	var a entities.Area
	var email, phone, areaName sql.NullString
	var areaID sql.NullInt64

	err := row.Scan(
		&c.ID, &c.Name, &c.Identification, &email, &phone, &areaID,
		&c.CreatedAt, &c.UpdatedAt,
		&a.ID, &areaName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}

	if email.Valid {
		c.Email = &email.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if areaID.Valid {
		id := uint64(areaID.Int64)
		c.AreaID = &id
	}
	if a.ID > 0 {
		a.Name = areaName.String
		c.Area = &a
	}
	return &c, nil
}

const clientSelectColumns = `c.id, c.name, c.identification, c.email, c.phone, c.area_id,
	c.created_at, c.updated_at,
	COALESCE(a.id, 0), a.name`

func (r *ClientRepository) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"c.name": pat},
				sq.ILike{"c.identification": pat},
			})
		}
		return b
	}

	countBuilder := applySearch(psql.Select("COUNT(c.id)").From("clients AS c"))
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, clientMap)

	var total uint64
	sqlCount, argsCount, _ := countBuilder.ToSql()
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Client{}, 0, nil
	}

	builder := applySearch(psql.Select(clientSelectColumns).
		From("clients AS c").
		LeftJoin("areas a ON c.area_id = a.id"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("c.name ASC")
	}
	builder = db.ApplyListParams(builder, filter, clientMap)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	clients := make([]entities.Client, 0, filter.Limit)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, 0, err
		}
		clients = append(clients, *client)
	}
	return clients, total, rows.Err()
}

func (r *ClientRepository) FindClient(ctx context.Context, id uint64) (*entities.Client, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM clients c
		LEFT JOIN areas a ON c.area_id = a.id
		WHERE c.id = $1
	`, clientSelectColumns)
	return scanClient(r.storage.QueryRow(ctx, query, id))
}

func (r *ClientRepository) CreateClient(ctx context.Context, client entities.Client) (uint64, error) {
	query := `
		INSERT INTO clients (name, identification, email, phone, area_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		client.Name, client.Identification, client.Email, client.Phone, client.AreaID,
	).Scan(&newID)
	return newID, err
}

func (r *ClientRepository) UpdateClient(ctx context.Context, id uint64, client entities.Client) error {
	query := `
		UPDATE clients
		SET name = $1, identification = $2, email = $3, phone = $4, area_id = $5, updated_at = NOW()
		WHERE id = $6
	`
	result, err := r.storage.Exec(ctx, query,
		client.Name, client.Identification, client.Email, client.Phone, client.AreaID, id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) DeleteClient(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
