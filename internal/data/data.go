package data

import (
	"context"
	"fmt"
	"time"

	"tinylink/internal/conf"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewLinkRepo, NewLinkCache, NewCachedLinkRepository, NewEventDispatcher)

const (
	defaultDriver         = dialect.SQLite
	defaultSource         = "file:tinylink.db?_fk=1&_busy_timeout=5000"
	defaultConnectTimeout = 5 * time.Second
)

// Data holds the process-wide store handles.
type Data struct {
	db  *entsql.Driver
	rdb *redis.Client
}

// NewData opens the SQL store and, when configured, the Redis cache.
// An unreachable database is logged, not fatal: the process keeps serving
// and store-backed endpoints fail until the database answers.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	driver, source, timeout := databaseOptions(c)
	drv, err := entsql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := drv.DB().PingContext(ctx); err != nil {
		helper.Errorf("database unreachable, continuing without it: %v", err)
	} else if err := Migrate(ctx, drv); err != nil {
		helper.Errorf("failed creating schema resources: %v", err)
	} else {
		helper.Infof("connected to %s database", driver)
	}

	d := &Data{
		db:  drv,
		rdb: newRedisClient(c.GetRedis()),
	}

	cleanup := func() {
		helper.Info("message", "closing the data resources")
		if err := d.db.Close(); err != nil {
			helper.Error(err)
		}
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
	}

	return d, cleanup, nil
}

// Migrate creates or updates the links table.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, Tables...)
}

func databaseOptions(c *conf.Data) (driver, source string, timeout time.Duration) {
	driver, source, timeout = defaultDriver, defaultSource, defaultConnectTimeout
	db := c.GetDatabase()
	if db == nil {
		return
	}
	if db.Driver != "" {
		driver = db.Driver
	}
	if db.Source != "" {
		source = db.Source
	}
	if d := db.ConnectTimeout.AsDuration(); d > 0 {
		timeout = d
	}
	return
}

func newRedisClient(c *conf.Data_Redis) *redis.Client {
	if c == nil || c.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.Db,
		ReadTimeout:  c.ReadTimeout.AsDuration(),
		WriteTimeout: c.WriteTimeout.AsDuration(),
	})
}
