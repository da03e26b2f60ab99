// Command debug prints the characters and items tables for quick inspection.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/osse101/BrandishRPG_Go/internal/database"
)

type characterRow struct {
	ID        string `db:"character_id"`
	Name      string `db:"name"`
	Level     int    `db:"level"`
	XP        int64  `db:"xp"`
	Balance   int64  `db:"balance"`
	Wins      int    `db:"wins"`
	Losses    int    `db:"losses"`
	Equipment string `db:"equipment"`
}

type itemRow struct {
	ID      string `db:"item_id"`
	Name    string `db:"name"`
	Slot    string `db:"slot"`
	Rarity  string `db:"rarity"`
	SetName string `db:"set_name"`
	Element string `db:"element"`
	Level   int    `db:"level"`
	Legacy  bool   `db:"legacy"`
}

const (
	characterQuery = `
		SELECT character_id, name, level, xp, balance, wins, losses, equipment::text AS equipment
		FROM characters ORDER BY created_at`
	itemQuery = `
		SELECT item_id, name, slot, rarity, set_name, element, level,
		       (buffs IS NOT NULL AND main_stat IS NULL) AS legacy
		FROM items ORDER BY created_at`
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	pool, err := database.NewPool(database.EnvConnString(os.Getenv("DB_NAME")), 2, 30*time.Minute, time.Hour)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := dump(ctx, pool); err != nil {
		slog.Error("Dump failed", "error", err)
		os.Exit(1)
	}
}

func dump(ctx context.Context, pool *pgxpool.Pool) error {
	characters, err := query[characterRow](ctx, pool, characterQuery)
	if err != nil {
		return fmt.Errorf("characters: %w", err)
	}
	items, err := query[itemRow](ctx, pool, itemQuery)
	if err != nil {
		return fmt.Errorf("items: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "CHARACTERS (%d)\n", len(characters))
	fmt.Fprintln(w, "ID\tNAME\tLVL\tXP\tGOLD\tW/L\tEQUIPMENT")
	for _, c := range characters {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d/%d\t%s\n", c.ID, c.Name, c.Level, c.XP, c.Balance, c.Wins, c.Losses, c.Equipment)
	}

	fmt.Fprintf(w, "\nITEMS (%d)\n", len(items))
	fmt.Fprintln(w, "ID\tNAME\tSLOT\tRARITY\tSET\tELEMENT\tLVL\tLEGACY")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t+%d\t%t\n", it.ID, it.Name, it.Slot, it.Rarity, it.SetName, it.Element, it.Level, it.Legacy)
	}
	return w.Flush()
}

func query[T any](ctx context.Context, pool *pgxpool.Pool, sql string) ([]T, error) {
	rows, err := pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[T])
}
