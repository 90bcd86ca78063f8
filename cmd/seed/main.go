// Package main provides a tool to seed the database with a demo roster.
//
// This creates a handful of teams, players, and learned aliases so the
// review workflow and search can be exercised against realistic data.
//
// Usage:
//
//	DB_PATH=~/Clutchboard/clutchboard.db go run ./cmd/seed
//	DB_PATH=~/Clutchboard/clutchboard.db go run ./cmd/seed --with-drafts
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/clutchboard/clutchboard-server/internal/service"
	"github.com/clutchboard/clutchboard-server/internal/store/sqlite"
)

var withDrafts = flag.Bool("with-drafts", false, "Also ingest sample drafts pending review")

// seedTeam describes one demo team with its players and learned aliases.
type seedTeam struct {
	Name    string
	Players []seedPlayer
}

type seedPlayer struct {
	Name    string
	Aliases []string
}

var demoRoster = []seedTeam{
	{
		Name: "Night Owls",
		Players: []seedPlayer{
			{Name: "Shadow", Aliases: []string{"shadow.owl"}},
			{Name: "Blitz", Aliases: []string{"blitz_no", "blitzkrieg"}},
			{Name: "Falcon"},
			{Name: "Mirage", Aliases: []string{"mirage1"}},
			{Name: "Havoc"},
		},
	},
	{
		Name: "Iron Wolves",
		Players: []seedPlayer{
			{Name: "Fang", Aliases: []string{"fang.iw"}},
			{Name: "Frost"},
			{Name: "Viper", Aliases: []string{"viperx"}},
			{Name: "Titan"},
			{Name: "Ghost", Aliases: []string{"ghost_wolf"}},
		},
	},
	{
		Name: "Solar Flares",
		Players: []seedPlayer{
			{Name: "Nova"},
			{Name: "Comet", Aliases: []string{"comet.sf"}},
			{Name: "Ember"},
			{Name: "Zenith", Aliases: []string{"zen1th"}},
			{Name: "Flare"},
		},
	},
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/Clutchboard/clutchboard.db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s, err := sqlite.Open(dbPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	roster := service.NewRosterService(s, logger)

	for _, st := range demoRoster {
		team, err := roster.CreateTeam(ctx, service.CreateTeamRequest{Name: st.Name})
		if err != nil {
			log.Fatalf("Failed to create team %s: %v", st.Name, err)
		}
		fmt.Printf("Created team: %s (%s)\n", team.Name, team.ID)

		for _, sp := range st.Players {
			player, err := roster.CreatePlayer(ctx, service.CreatePlayerRequest{
				Name:   sp.Name,
				TeamID: team.ID,
			})
			if err != nil {
				log.Fatalf("Failed to create player %s: %v", sp.Name, err)
			}
			fmt.Printf("  Created player: %s (%s)\n", player.Name, player.ID)

			for _, alias := range sp.Aliases {
				if _, err := roster.CreateAlias(ctx, player.ID, service.CreateAliasRequest{Value: alias}); err != nil {
					log.Printf("  Failed to create alias %s: %v", alias, err)
					continue
				}
				fmt.Printf("    Learned alias: %s\n", alias)
			}
		}
	}

	if *withDrafts {
		seedDrafts(ctx, s, logger)
	}

	fmt.Println("\nSeeding complete!")
}

// seedDrafts ingests a couple of extracted scoreboards pending review.
func seedDrafts(ctx context.Context, s *sqlite.Store, logger *slog.Logger) {
	fmt.Println("\n=== Ingesting Sample Drafts ===")

	drafts := service.NewDraftService(s, logger)

	samples := []service.IngestDraftRequest{
		{
			Blocks: []service.IngestTeamBlock{
				{
					Score: 13,
					Players: []service.IngestPlayerRecord{
						{RawName: "SHADOW.owl", Kills: 21, Deaths: 12, Assists: 5},
						{RawName: "blitz_no", Kills: 17, Deaths: 14, Assists: 8},
						{RawName: "Falcon", Kills: 15, Deaths: 13, Assists: 6},
						{RawName: "mirage1", Kills: 12, Deaths: 15, Assists: 9},
						{RawName: "Havoc", Kills: 10, Deaths: 16, Assists: 11},
					},
				},
				{
					Score: 9,
					Players: []service.IngestPlayerRecord{
						{RawName: "fang.iw", Kills: 19, Deaths: 15, Assists: 4},
						{RawName: "Frost", Kills: 16, Deaths: 15, Assists: 7},
						{RawName: "viperx", Kills: 14, Deaths: 15, Assists: 5},
						{RawName: "Titan", Kills: 11, Deaths: 15, Assists: 10},
						{RawName: "ghost_wolf", Kills: 10, Deaths: 15, Assists: 8},
					},
				},
			},
			WinnerSide: 1,
			Confidence: 0.94,
		},
		{
			Blocks: []service.IngestTeamBlock{
				{
					Score: 7,
					Players: []service.IngestPlayerRecord{
						{RawName: "Nova", Kills: 14, Deaths: 16, Assists: 3},
						{RawName: "comet.sf", Kills: 12, Deaths: 16, Assists: 6},
						{RawName: "Ember", Kills: 11, Deaths: 17, Assists: 5},
					},
				},
				{
					Score: 13,
					Players: []service.IngestPlayerRecord{
						{RawName: "GHOST", Kills: 22, Deaths: 9, Assists: 7},
						{RawName: "frost", Kills: 18, Deaths: 11, Assists: 9},
						{RawName: "unknown-sub", Kills: 9, Deaths: 14, Assists: 12},
					},
				},
			},
			WinnerSide: 2,
			Confidence: 0.81,
		},
	}

	for _, req := range samples {
		draft, err := drafts.Ingest(ctx, req)
		if err != nil {
			log.Printf("Failed to ingest draft: %v", err)
			continue
		}
		fmt.Printf("Ingested draft: %s (confidence %.2f)\n", draft.ID, draft.Confidence)
	}

	fmt.Println("=== Sample Drafts Ingested ===")
}
