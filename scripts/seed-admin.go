// Command seed-admin creates an administrator account.
// Administrators are never created through the API; this tool is the only
// way they come into existence.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/voltpoint/voltpoint/internal/auth"
	"github.com/voltpoint/voltpoint/internal/model"
	"github.com/voltpoint/voltpoint/internal/repository"
)

type output struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

func main() {
	var (
		databaseURL = flag.String("database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection string")
		email       = flag.String("email", "", "Administrator email (required)")
		password    = flag.String("password", "", "Administrator password (required)")
		nome        = flag.String("nome", "Rete", "Administrator first name")
		cognome     = flag.String("cognome", "Ricarica", "Administrator last name")
		format      = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	if *databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "email and password are required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := repository.New(ctx, *databaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect database:", err)
		os.Exit(1)
	}
	defer repo.Close()

	if existing, err := repo.GetAdminByEmail(ctx, *email); err == nil {
		fmt.Fprintf(os.Stderr, "admin %s already exists with email %s\n", existing.ID, *email)
		os.Exit(1)
	} else if !errors.Is(err, repository.ErrAdminNotFound) {
		fmt.Fprintln(os.Stderr, "look up admin:", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hash password:", err)
		os.Exit(1)
	}

	admin := &model.Admin{
		ID:           ulid.Make().String(),
		Email:        *email,
		PasswordHash: hash,
		Nome:         *nome,
		Cognome:      *cognome,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.CreateAdmin(ctx, admin); err != nil {
		fmt.Fprintln(os.Stderr, "create admin:", err)
		os.Exit(1)
	}

	out := output{
		AdminID: admin.ID,
		Email:   admin.Email,
		Name:    admin.DisplayName(),
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println(out.AdminID)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}
