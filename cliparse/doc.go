/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Connection string or sqlite file path (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - JWTSecret: Secret for signing session tokens (required)
  - AdminUser: Admin username for /auth/login (required)
  - AdminPassword: Admin password for /auth/login (required)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-jwt-secret      JWT signing secret
	-admin-user      Admin username
	-admin-password  Admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	JWT_SECRET     → -jwt-secret
	ADMIN_USER     → -admin-user
	ADMIN_PASSWORD → -admin-password

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - JWT_SECRET must be provided
  - ADMIN_USER and ADMIN_PASSWORD must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(dbConn, cfg)
*/
package cliparse
