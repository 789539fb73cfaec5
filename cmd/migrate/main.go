package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fuel-ledger/internal/config"
	"fuel-ledger/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const usage = `Usage: migrate [flags] <command>

Commands:
  up       apply all pending migrations
  down     roll back the last -steps migrations
  status   print the current schema version
  seed     load SQL files from the seeds directory
  force V  mark the schema as version V and clear the dirty flag

Flags:
`

func main() {
	migrationsDir := flag.String("migrations", "db/migrations", "directory holding *.up.sql and *.down.sql files")
	seedsDir := flag.String("seeds", "db/seeds", "directory holding seed *.sql files")
	steps := flag.Int("steps", 1, "number of migrations to roll back with down")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env vars")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := database.NewMigrationRunner(db,
		database.WithPaths(*migrationsDir, *seedsDir),
		database.WithSeeds(flag.Arg(0) == "seed"))
	if err := runner.WaitForDatabase(ctx); err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}

	if err := run(runner, flag.Args(), *steps); err != nil {
		log.Fatalf("%s failed: %v", flag.Arg(0), err)
	}
}

func run(runner *database.MigrationRunner, args []string, steps int) error {
	switch command := args[0]; command {
	case "up":
		return runner.RunMigrations()
	case "down":
		return runner.RollbackMigrations(steps)
	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	case "seed":
		applied, err := runner.LoadSeeds()
		if err != nil {
			return err
		}
		fmt.Printf("applied %d seed files\n", applied)
		return nil
	case "force":
		if len(args) != 2 {
			return fmt.Errorf("force needs a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		return runner.ForceVersion(version)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
