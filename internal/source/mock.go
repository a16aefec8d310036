package source

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// Uploader registers files as data sources.
type Uploader interface {
	Upload(ctx context.Context, up Upload) (UploadedFile, error)
}

// Connector turns form input into a database connection.
type Connector interface {
	Create(ctx context.Context, cfg ConnectionConfig) (DatabaseConnection, error)
}

const (
	maxMockUploadSize = 10_000_000
	snowflakeSuffix   = ".snowflakecomputing.com"
)

// MockUploader synthesizes uploads without reading or storing any bytes.
type MockUploader struct {
	mu  sync.Mutex
	rng *rand.Rand
	ids *IDSequence
	now func() time.Time
}

// NewMockUploader creates an uploader whose IDs come from ids. A nil clock
// uses time.Now.
func NewMockUploader(ids *IDSequence, now func() time.Time, seed uint64) *MockUploader {
	if now == nil {
		now = time.Now
	}
	if ids == nil {
		ids = NewIDSequence(now, 0)
	}
	return &MockUploader{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ids: ids,
		now: now,
	}
}

// Upload returns a new CSV file in the processing state. Files without a
// name get a random upload_N.csv name; files without data get a random size.
func (u *MockUploader) Upload(ctx context.Context, up Upload) (UploadedFile, error) {
	if err := ctx.Err(); err != nil {
		return UploadedFile{}, WrapUploadError(up.Name, err)
	}

	u.mu.Lock()
	name := strings.TrimSpace(up.Name)
	if name == "" {
		name = fmt.Sprintf("upload_%d.csv", u.rng.IntN(1000))
	}
	size := int64(len(up.Data))
	if size == 0 {
		size = u.rng.Int64N(maxMockUploadSize) + 1
	}
	u.mu.Unlock()

	return UploadedFile{
		ID:         u.ids.Next(),
		Name:       name,
		Type:       FileCSV,
		Size:       size,
		Status:     StatusProcessing,
		UploadedAt: u.now(),
	}, nil
}

// MockConnector validates connection settings offline. It never dials.
type MockConnector struct {
	ids *IDSequence
}

// NewMockConnector creates a connector whose IDs come from ids.
func NewMockConnector(ids *IDSequence) *MockConnector {
	if ids == nil {
		ids = NewIDSequence(nil, 0)
	}
	return &MockConnector{ids: ids}
}

// Create checks the settings for the given kind and returns the connection it
// would add.
func (c *MockConnector) Create(ctx context.Context, cfg ConnectionConfig) (DatabaseConnection, error) {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.Host = strings.TrimSpace(cfg.Host)

	if err := ctx.Err(); err != nil {
		return DatabaseConnection{}, WrapConnectionError(cfg, err)
	}
	if err := validateConnection(cfg); err != nil {
		return DatabaseConnection{}, WrapConnectionError(cfg, err)
	}

	return DatabaseConnection{
		ID:     c.ids.Next(),
		Name:   cfg.Name,
		Kind:   cfg.Kind,
		Host:   cfg.Host,
		Status: StatusConnected,
	}, nil
}

func validateConnection(cfg ConnectionConfig) error {
	if cfg.Name == "" {
		return fmt.Errorf("%w: display name is required", ErrInvalidConnection)
	}
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConnection)
	}
	if strings.ContainsAny(cfg.Host, " \t/\\@") {
		return fmt.Errorf("%w: host %q contains invalid characters", ErrInvalidConnection, cfg.Host)
	}

	switch cfg.Kind {
	case KindPostgreSQL:
		return validatePostgresHost(cfg.Host)
	case KindMySQL:
		return validateMySQLHost(cfg.Host)
	case KindSnowflake:
		if !strings.HasSuffix(strings.ToLower(cfg.Host), snowflakeSuffix) {
			return fmt.Errorf("%w: snowflake host must end in %s", ErrInvalidConnection, snowflakeSuffix)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidConnection, cfg.Kind)
	}
}

func validatePostgresHost(host string) error {
	u := url.URL{Scheme: "postgres", Host: host, Path: "/"}
	if _, err := pq.ParseURL(u.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnection, err)
	}
	return nil
}

func validateMySQLHost(host string) error {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = host

	parsed, err := mysql.ParseDSN(cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnection, err)
	}
	_, port, err := net.SplitHostPort(parsed.Addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnection, err)
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("%w: invalid port %q", ErrInvalidConnection, port)
	}
	return nil
}
