package source

import "time"

// SeedFiles returns the files every session starts with, newest first.
func SeedFiles(now time.Time) []UploadedFile {
	return []UploadedFile{
		{ID: 1, Name: "sales_q1_2024.csv", Type: FileCSV, Size: 2_400_000, Status: StatusReady, UploadedAt: now.Add(-2 * time.Hour)},
		{ID: 2, Name: "customer_leads.xlsx", Type: FileExcel, Size: 1_100_000, Status: StatusProcessing, UploadedAt: now.Add(-5 * time.Minute)},
		{ID: 3, Name: "inventory_logs.json", Type: FileJSON, Size: 850_000, Status: StatusError, UploadedAt: now.Add(-24 * time.Hour)},
	}
}

// SeedConnections returns the database connections every session starts with.
func SeedConnections() []DatabaseConnection {
	return []DatabaseConnection{
		{ID: 1, Name: "Production DB", Kind: KindPostgreSQL, Host: "db.prod.nexus.com", Status: StatusConnected},
		{ID: 2, Name: "Analytics Warehouse", Kind: KindSnowflake, Host: "nexus.snowflakecomputing.com", Status: StatusConnected},
	}
}
