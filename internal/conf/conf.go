// Package conf holds the bootstrap configuration scanned by kratos config.
package conf

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bootstrap is the root of the configuration tree.
type Bootstrap struct {
	Server *Server `json:"server"`
	Data   *Data   `json:"data"`
	Log    *Log    `json:"log"`
}

// Server configures the transports.
type Server struct {
	Http *Server_HTTP `json:"http"`
	Grpc *Server_GRPC `json:"grpc"`
	Cors *Server_CORS `json:"cors"`
}

// Server_HTTP configures the HTTP transport.
type Server_HTTP struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Server_GRPC configures the gRPC transport.
type Server_GRPC struct {
	Network string    `json:"network"`
	Addr    string    `json:"addr"`
	Timeout *Duration `json:"timeout"`
}

// Server_CORS lists the browser origins allowed to call the API.
type Server_CORS struct {
	AllowedOrigins []string `json:"allowed_origins"`
}

// Data configures the persistence layer.
type Data struct {
	Database *Data_Database `json:"database"`
	Redis    *Data_Redis    `json:"redis"`
}

// Data_Database configures the SQL store.
type Data_Database struct {
	Driver         string    `json:"driver"`
	Source         string    `json:"source"`
	ConnectTimeout *Duration `json:"connect_timeout"`
}

// Data_Redis configures the optional link cache. An empty Addr disables it.
type Data_Redis struct {
	Addr         string    `json:"addr"`
	Password     string    `json:"password"`
	Db           int       `json:"db"`
	ReadTimeout  *Duration `json:"read_timeout"`
	WriteTimeout *Duration `json:"write_timeout"`
	Ttl          *Duration `json:"ttl"`
}

// Log configures the process logger.
type Log struct {
	Level string `json:"level"`
}

// Duration is a time.Duration that decodes from strings such as "5s".
type Duration struct {
	time.Duration
}

// NewDuration wraps d.
func NewDuration(d time.Duration) *Duration {
	return &Duration{Duration: d}
}

// AsDuration returns the wrapped duration; a nil receiver yields zero.
func (d *Duration) AsDuration() time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}

// MarshalJSON encodes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("conf: invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("conf: invalid duration %v", v)
	}
	return nil
}

// GetServer returns the server section, or nil.
func (b *Bootstrap) GetServer() *Server {
	if b == nil {
		return nil
	}
	return b.Server
}

// GetData returns the data section, or nil.
func (b *Bootstrap) GetData() *Data {
	if b == nil {
		return nil
	}
	return b.Data
}

// GetLog returns the log section, or nil.
func (b *Bootstrap) GetLog() *Log {
	if b == nil {
		return nil
	}
	return b.Log
}

func (s *Server) GetHttp() *Server_HTTP {
	if s == nil {
		return nil
	}
	return s.Http
}

func (s *Server) GetGrpc() *Server_GRPC {
	if s == nil {
		return nil
	}
	return s.Grpc
}

func (s *Server) GetCors() *Server_CORS {
	if s == nil {
		return nil
	}
	return s.Cors
}

func (d *Data) GetDatabase() *Data_Database {
	if d == nil {
		return nil
	}
	return d.Database
}

func (d *Data) GetRedis() *Data_Redis {
	if d == nil {
		return nil
	}
	return d.Redis
}

// GetLevel returns the configured level, or "info" when unset.
func (l *Log) GetLevel() string {
	if l == nil || l.Level == "" {
		return "info"
	}
	return l.Level
}

// GetTtl returns the cache entry lifetime, or zero when unset.
func (r *Data_Redis) GetTtl() time.Duration {
	if r == nil {
		return 0
	}
	return r.Ttl.AsDuration()
}

func (c *Server_CORS) GetAllowedOrigins() []string {
	if c == nil {
		return nil
	}
	return c.AllowedOrigins
}
