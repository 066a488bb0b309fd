// bootstrap-admin creates or promotes an administrator account directly in
// the database. It is the only supported way to obtain the admin role;
// self-service registration always yields a regular user.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var (
	username = flag.String("username", "", "Admin login name (required)")
	password = flag.String("password", "", "Admin password (required)")
	dsn      = flag.String("dsn", "", "Postgres DSN (default: env DATABASE_URL)")
	dryRun   = flag.Bool("dry-run", false, "Show what would happen; no DB writes")
	confirm  = flag.Bool("confirm", false, "Required to write")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	*dsn = resolveDSN(*dsn)
	if *username == "" {
		fatalf("--username is required")
	}
	if *password == "" {
		fatalf("--password is required")
	}
	if len(*password) < 8 {
		fatalf("password must be at least 8 characters")
	}
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	var existingID string
	err = db.QueryRowContext(ctx,
		`SELECT user_id FROM app_auth.users WHERE username = $1`, *username).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		fmt.Printf("User %q does not exist; will create as admin\n", *username)
	case err != nil:
		fatalf("lookup: %v", err)
	default:
		fmt.Printf("User %q exists (%s); will promote to admin and reset password\n", *username, existingID)
	}

	if *dryRun {
		fmt.Println("Dry run complete. No changes made.")
		return
	}
	if !*confirm {
		fatalf("Refusing to run without --confirm. Add --dry-run to preview.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fatalf("hash password: %v", err)
	}

	// Upsert keyed on the username unique index, so concurrent runs cannot
	// create duplicate accounts.
	_, err = db.ExecContext(ctx, `
		INSERT INTO app_auth.users (user_id, username, hashed_password, role, created_at)
		VALUES ($1, $2, $3, 'admin', now())
		ON CONFLICT (username)
		DO UPDATE SET hashed_password = EXCLUDED.hashed_password, role = 'admin'`,
		uuid.NewString(), *username, string(hashed))
	if err != nil {
		fatalf("upsert: %v", err)
	}

	fmt.Printf("Admin account %q is ready\n", *username)
}

// resolveDSN falls back to DATABASE_URL only after godotenv has loaded the
// env file. A flag default would be evaluated at package init, before main,
// and would miss anything .env.local provides.
func resolveDSN(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("DATABASE_URL")
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
