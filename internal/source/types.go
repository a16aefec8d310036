package source

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Status is the lifecycle state shown for files and connections.
type Status string

const (
	StatusReady      Status = "ready"
	StatusProcessing Status = "processing"
	StatusError      Status = "error"
	StatusConnected  Status = "connected"
)

// ParseStatus maps a raw status string to a known Status. Anything it does not
// recognise is reported as StatusError.
func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusReady:
		return StatusReady
	case StatusProcessing:
		return StatusProcessing
	case StatusConnected:
		return StatusConnected
	default:
		return StatusError
	}
}

// FileType identifies the format of an uploaded file.
type FileType string

const (
	FileCSV   FileType = "CSV"
	FileExcel FileType = "Excel"
	FileJSON  FileType = "JSON"
)

// ConnectionKind identifies the database engine behind a connection.
type ConnectionKind string

const (
	KindPostgreSQL ConnectionKind = "PostgreSQL"
	KindSnowflake  ConnectionKind = "Snowflake"
	KindMySQL      ConnectionKind = "MySQL"
)

// ConnectionKinds lists the kinds offered by the new-connection form, in order.
func ConnectionKinds() []ConnectionKind {
	return []ConnectionKind{KindPostgreSQL, KindSnowflake, KindMySQL}
}

// UploadedFile is a file registered as a data source.
type UploadedFile struct {
	ID         int64
	Name       string
	Type       FileType
	Size       int64 // bytes
	Status     Status
	UploadedAt time.Time
}

// DisplaySize renders the file size the way the file list shows it.
func (f UploadedFile) DisplaySize() string {
	if f.Size <= 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(f.Size))
}

// DisplayAge renders the upload time relative to now.
func (f UploadedFile) DisplayAge(now time.Time) string {
	if f.UploadedAt.IsZero() {
		return "unknown"
	}
	if now.Sub(f.UploadedAt) < time.Minute {
		return "Just now"
	}
	return humanize.RelTime(f.UploadedAt, now, "ago", "from now")
}

// DatabaseConnection is a configured database data source.
type DatabaseConnection struct {
	ID     int64
	Name   string
	Kind   ConnectionKind
	Host   string
	Status Status
}

// ConnectionConfig is what the new-connection form collects.
type ConnectionConfig struct {
	Name string
	Kind ConnectionKind
	Host string
}

// Upload describes a file handed to an Uploader.
type Upload struct {
	Name string
	Data []byte
}
