package common

import (
	"flag"
	"fmt"
	"os"
)

var Version = "v1.0.0"

var (
	Port          = flag.Int("port", 3000, "the listening port")
	LogDir        = flag.String("log-dir", "", "the log directory")
	PrintVersion  = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag = flag.Bool("help", false, "print help and exit")
)

var (
	SQLitePath = "data/bulletin-board.db"
	UploadPath = "upload"

	SessionSecret = "random_string"

	AdminUsername = "admin"
	// AdminPasswordHash holds the bcrypt hash of the configured admin
	// password. It is derived once at startup, never the raw password.
	AdminPasswordHash = ""
)

// MaxUploadSize caps a single multipart request body.
const MaxUploadSize int64 = 16 << 20 // 16 MiB

func init() {
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		SessionSecret = secret
	}
	if path := os.Getenv("SQLITE_PATH"); path != "" {
		SQLitePath = path
	}
	if path := os.Getenv("UPLOAD_PATH"); path != "" {
		UploadPath = path
	}
	if username := os.Getenv("ADMIN_USERNAME"); username != "" {
		AdminUsername = username
	}
}

// InitAdminCredentials hashes the configured admin password. The raw
// password is read from the environment and discarded immediately.
func InitAdminCredentials() error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		SysLog("ADMIN_PASSWORD not set, using the default admin password, please change it")
	}
	hash, err := Password2Hash(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	AdminPasswordHash = hash
	return nil
}

func PrintHelp() {
	fmt.Println("Bulletin Board " + Version)
	fmt.Println("Usage: bulletin-board [--port <port>] [--log-dir <log directory>]")
}
