package data

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/mattn/go-sqlite3"

	"tinylink/internal/domain"
)

// linkRow is the persisted shape of a link.
type linkRow struct {
	ID          int64
	Code        string
	TargetURL   string
	TotalClicks int64
	LastClicked nullTime
	CreatedAt   nullTime
	UpdatedAt   nullTime
}

func (r *linkRow) scan(rows *entsql.Rows) error {
	return rows.Scan(
		&r.ID,
		&r.Code,
		&r.TargetURL,
		&r.TotalClicks,
		&r.LastClicked,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func (r *linkRow) toDomain() *domain.Link {
	var lastClicked *time.Time
	if r.LastClicked.Valid {
		t := r.LastClicked.Time
		lastClicked = &t
	}
	return domain.ReconstructLink(
		r.ID,
		r.Code,
		r.TargetURL,
		r.TotalClicks,
		lastClicked,
		r.CreatedAt.Time,
		r.UpdatedAt.Time,
	)
}

// scanLinks drains rows into domain links and closes them.
func scanLinks(rows *entsql.Rows) ([]*domain.Link, error) {
	defer rows.Close()

	var links []*domain.Link
	for rows.Next() {
		var row linkRow
		if err := row.scan(rows); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		links = append(links, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

// scanLink returns the first row as a link, or nil when there is none.
func scanLink(rows *entsql.Rows) (*domain.Link, error) {
	links, err := scanLinks(rows)
	if err != nil || len(links) == 0 {
		return nil, err
	}
	return links[0], nil
}

// nullTime scans timestamps from postgres and sqlite alike. sqlite hands
// back text instead of time.Time when a RETURNING column loses its
// declared type.
type nullTime struct {
	Time  time.Time
	Valid bool
}

func (t *nullTime) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v.UTC(), true
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
}

func (t *nullTime) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time, t.Valid = parsed.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}

// Value implements driver.Valuer.
func (t nullTime) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time, nil
}
