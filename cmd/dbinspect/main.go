// Package main provides a tool to inspect the contents of a Clutchboard database.
//
// Usage:
//
//	DB_PATH=~/Clutchboard/clutchboard.db go run ./cmd/dbinspect
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/clutchboard/clutchboard-server/internal/domain"
	"github.com/clutchboard/clutchboard-server/internal/store/sqlite"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Clutchboard/clutchboard.db")
	}

	fmt.Printf("Inspecting database at: %s\n\n", dbPath)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	teams, err := s.ListTeams(ctx)
	if err != nil {
		log.Fatalf("Failed to list teams: %v", err)
	}

	fmt.Printf("=== Teams (%d) ===\n", len(teams))
	for _, team := range teams {
		players, err := s.ListPlayersByTeam(ctx, team.ID)
		if err != nil {
			log.Printf("Failed to list players for %s: %v", team.ID, err)
			continue
		}
		fmt.Printf("%s (%s): %d players\n", team.Name, team.ID, len(players))
		for _, player := range players {
			aliases, _ := s.ListAliasesByPlayer(ctx, player.ID)
			fmt.Printf("  %s (%s)", player.Name, player.ID)
			if len(aliases) > 0 {
				fmt.Print(" aliases:")
				for _, a := range aliases {
					fmt.Printf(" %s", a.Value)
				}
			}
			fmt.Println()
		}
	}

	pending, err := s.ListDrafts(ctx, domain.DraftStatusPending)
	if err != nil {
		log.Fatalf("Failed to list pending drafts: %v", err)
	}
	applied, err := s.ListDrafts(ctx, domain.DraftStatusApplied)
	if err != nil {
		log.Fatalf("Failed to list applied drafts: %v", err)
	}

	fmt.Printf("\n=== Drafts ===\n")
	fmt.Printf("Pending: %d\n", len(pending))
	for _, d := range pending {
		fmt.Printf("  %s (confidence %.2f, ingested %s)\n", d.ID, d.Confidence, d.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("Applied: %d\n", len(applied))

	matches, err := s.ListMatches(ctx)
	if err != nil {
		log.Fatalf("Failed to list matches: %v", err)
	}

	fmt.Printf("\n=== Matches (%d) ===\n", len(matches))
	for _, m := range matches {
		fmt.Printf("%s: %s %d - %d %s", m.ID, m.Team1ID, m.Team1Score, m.Team2Score, m.Team2ID)
		if m.WinnerTeamID != "" {
			fmt.Printf(" (winner %s)", m.WinnerTeamID)
		}
		fmt.Println()
	}
}
