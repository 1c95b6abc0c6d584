// scripts/setup_db.go
//
//	go run ./scripts -fresh -admin admin:password123
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/patiponrmutl/TutorDesk/config"
	"github.com/patiponrmutl/TutorDesk/database"
	"github.com/patiponrmutl/TutorDesk/logging"
	"github.com/patiponrmutl/TutorDesk/store"
)

func main() {
	fresh := flag.Bool("fresh", false, "delete the sqlite file before creating the tables")
	admin := flag.String("admin", "", "seed an account, as username:password")
	flag.Parse()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel, true)

	if *fresh {
		if cfg.DBDriver != "sqlite" {
			log.Fatal().Str("driver", cfg.DBDriver).Msg("-fresh only applies to the sqlite file")
		}
		if err := os.Remove(cfg.DBPath); err == nil {
			log.Info().Str("path", cfg.DBPath).Msg("old database removed")
		} else if !errors.Is(err, os.ErrNotExist) {
			log.Fatal().Err(err).Msg("remove old database")
		}
	}

	db := database.Connect(cfg)

	if *admin != "" {
		username, password, ok := strings.Cut(*admin, ":")
		if !ok || username == "" || password == "" {
			log.Fatal().Msg("-admin must be username:password")
		}

		users := store.NewUserStore(db)
		ctx := context.Background()
		if _, err := users.FindByUsername(ctx, username); err == nil {
			fmt.Println("account already exists:", username)
		} else if errors.Is(err, store.ErrNotFound) {
			if _, err := users.Create(ctx, username, password); err != nil {
				log.Fatal().Err(err).Msg("create account")
			}
			fmt.Println("account created:", username)
		} else {
			log.Fatal().Err(err).Msg("look up account")
		}
	}

	fmt.Println("database ready with all tables:", strings.Join(store.Tables, ", "))
}
