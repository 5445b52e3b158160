package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"

	"tinylink/internal/domain"
)

// Compile-time interface check
var _ domain.LinkRepository = (*linkRepo)(nil)

// linkRepo implements domain.LinkRepository on top of the SQL store.
type linkRepo struct {
	data *Data
	log  *log.Helper
}

// NewLinkRepo creates the SQL link repository.
func NewLinkRepo(data *Data, logger log.Logger) *linkRepo {
	return &linkRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *linkRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.data.db.Dialect())
}

func (r *linkRepo) selectByCode(code string) *entsql.Selector {
	b := r.builder()
	return b.Select(linkColumns...).
		From(b.Table(linksTableName)).
		Where(entsql.EQ(columnCode, code))
}

func (r *linkRepo) query(ctx context.Context, q dialect.ExecQuerier, query string, args []any) (*entsql.Rows, error) {
	rows := &entsql.Rows{}
	if err := q.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByCode retrieves a link by its code.
func (r *linkRepo) FindByCode(ctx context.Context, code string) (*domain.Link, error) {
	query, args := r.selectByCode(code).Limit(1).Query()
	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("find link %q: %w", code, err)
	}
	link, err := scanLink(rows)
	if err != nil {
		return nil, fmt.Errorf("find link %q: %w", code, err)
	}
	return link, nil
}

// ExistsByCode checks if a code is already taken.
func (r *linkRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	b := r.builder()
	query, args := b.Select(columnID).
		From(b.Table(linksTableName)).
		Where(entsql.EQ(columnCode, code)).
		Limit(1).
		Query()
	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return false, fmt.Errorf("check link %q: %w", code, err)
	}
	defer rows.Close()

	exists := rows.Next()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("check link %q: %w", code, err)
	}
	return exists, nil
}

// Insert stores a new link in a single statement. The unique index on code
// decides concurrent races; the loser gets domain.ErrCodeExists.
func (r *linkRepo) Insert(ctx context.Context, code, targetURL string) (*domain.Link, error) {
	now := time.Now().UTC()
	query, args := r.builder().Insert(linksTableName).
		Columns(columnCode, columnTargetURL, columnTotalClicks, columnCreatedAt, columnUpdatedAt).
		Values(code, targetURL, 0, now, now).
		Returning(linkColumns...).
		Query()

	link, err := r.insert(ctx, query, args)
	if err != nil {
		if sqlgraph.IsUniqueConstraintError(err) {
			return nil, domain.ErrCodeExists.WithCause(err)
		}
		return nil, fmt.Errorf("insert link %q: %w", code, err)
	}
	if link == nil {
		return nil, fmt.Errorf("insert link %q: no row returned", code)
	}
	return link, nil
}

// insert runs the statement and scans the returned row. Some drivers only
// report constraint violations while stepping the rows, so both phases
// surface the same error.
func (r *linkRepo) insert(ctx context.Context, query string, args []any) (*domain.Link, error) {
	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return nil, err
	}
	return scanLink(rows)
}

// ListAll returns every link, newest first.
func (r *linkRepo) ListAll(ctx context.Context) ([]*domain.Link, error) {
	b := r.builder()
	query, args := b.Select(linkColumns...).
		From(b.Table(linksTableName)).
		OrderBy(entsql.Desc(columnCreatedAt), entsql.Desc(columnID)).
		Query()
	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	links, err := scanLinks(rows)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if links == nil {
		links = []*domain.Link{}
	}
	return links, nil
}

// DeleteByCode removes a link and returns what was removed, or nil when
// the code is unknown. A single DELETE ... RETURNING means concurrent
// deletes of the same code cannot both see the row.
func (r *linkRepo) DeleteByCode(ctx context.Context, code string) (*domain.Link, error) {
	d := r.builder().Delete(linksTableName).
		Where(entsql.EQ(columnCode, code))
	query, args := d.Query()
	query += " RETURNING " + strings.Join(lo.Map(linkColumns, func(c string, _ int) string {
		return d.Quote(c)
	}), ", ")

	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("delete link %q: %w", code, err)
	}
	link, err := scanLink(rows)
	if err != nil {
		return nil, fmt.Errorf("delete link %q: %w", code, err)
	}
	return link, nil
}

// RecordClick increments the counter and stamps the click time in one
// statement, returning the updated link or nil when the code is unknown.
func (r *linkRepo) RecordClick(ctx context.Context, code string) (*domain.Link, error) {
	now := time.Now().UTC()
	query, args := r.builder().Update(linksTableName).
		Add(columnTotalClicks, 1).
		Set(columnLastClicked, now).
		Set(columnUpdatedAt, now).
		Where(entsql.EQ(columnCode, code)).
		Returning(linkColumns...).
		Query()

	rows, err := r.query(ctx, r.data.db, query, args)
	if err != nil {
		return nil, fmt.Errorf("record click %q: %w", code, err)
	}
	link, err := scanLink(rows)
	if err != nil {
		return nil, fmt.Errorf("record click %q: %w", code, err)
	}
	return link, nil
}
