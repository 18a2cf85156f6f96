// Command admin-seed creates an administrator account, or promotes an
// existing user found by email. Admin access is only ever granted here,
// never through the HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gitau-joseph/projectz/internal/config"
	"github.com/Gitau-joseph/projectz/internal/domain/entities"
	domainerrors "github.com/Gitau-joseph/projectz/internal/domain/errors"
	domainrepo "github.com/Gitau-joseph/projectz/internal/domain/repositories"
	"github.com/Gitau-joseph/projectz/internal/infrastructure/repositories"
	"github.com/Gitau-joseph/projectz/pkg/crypto"
)

var openSeedDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

type seedDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (domainrepo.UserRepository, io.Closer, error)
	out     io.Writer
}

func defaultSeedDeps() seedDeps {
	return seedDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (domainrepo.UserRepository, io.Closer, error) {
			db, err := openSeedDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return repositories.NewUserRepository(db), sqlDB, nil
		},
		out: os.Stdout,
	}
}

func runSeed(args []string, deps seedDeps) error {
	fs := flag.NewFlagSet("admin-seed", flag.ContinueOnError)
	email := fs.String("email", "", "admin email (required)")
	username := fs.String("username", "", "username for a newly created admin")
	password := fs.String("password", "", "password for a newly created admin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*email) == "" {
		return errors.New("-email is required")
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := deps.loadCfg()

	userRepo, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()

	existing, err := userRepo.GetByEmail(ctx, strings.TrimSpace(*email))
	if err == nil {
		if err := userRepo.SetAdmin(ctx, existing.ID, true); err != nil {
			return err
		}
		fmt.Fprintf(deps.out, "Promoted %s to admin\n", existing.Email)
		return nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	if *username == "" || *password == "" {
		return errors.New("-username and -password are required to create a new admin")
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		return err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     *username,
		Email:        strings.TrimSpace(*email),
		PasswordHash: hash,
		KYCStatus:    entities.KYCApproved,
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	fmt.Fprintf(deps.out, "Created admin %s (%s)\n", user.Username, user.Email)
	return nil
}

func main() {
	if err := runSeed(os.Args[1:], defaultSeedDeps()); err != nil {
		log.Fatal(err)
	}
}
