package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lk2023060901/pgstac-go/stac"
)

// loadBatchSize is how many items go into one create_items/upsert_items call
const loadBatchSize = 1000

func loadCmd() *cobra.Command {
	var upsert bool

	cmd := &cobra.Command{
		Use:   "load <collections|items> <file>",
		Short: "Load newline-delimited JSON records into the database",
		Long: `Load newline-delimited JSON records into the database.

Items are sent in batches. Items without an id get a generated UUID.
With --upsert, existing records are replaced instead of failing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, path := args[0], args[1]
			if kind != "collections" && kind != "items" {
				return fmt.Errorf("unknown record kind %q, want collections or items", kind)
			}

			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			pool, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := cmd.Context()
			scanner := bufio.NewScanner(file)
			scanner.Buffer(make([]byte, 0, 1024*1024), 64*1024*1024)

			loaded := 0
			batch := make([]*stac.Item, 0, loadBatchSize)
			flush := func() error {
				if len(batch) == 0 {
					return nil
				}
				var err error
				if upsert {
					err = client.UpsertItems(ctx, batch)
				} else {
					err = client.AddItems(ctx, batch)
				}
				if err != nil {
					return err
				}
				loaded += len(batch)
				batch = batch[:0]
				return nil
			}

			for scanner.Scan() {
				line := scanner.Bytes()
				if len(line) == 0 {
					continue
				}

				if kind == "collections" {
					var collection stac.Collection
					if err := json.Unmarshal(line, &collection); err != nil {
						return fmt.Errorf("invalid collection JSON: %w", err)
					}
					if upsert {
						err = client.UpsertCollection(ctx, &collection)
					} else {
						err = client.AddCollection(ctx, &collection)
					}
					if err != nil {
						return err
					}
					loaded++
					continue
				}

				var item stac.Item
				if err := json.Unmarshal(line, &item); err != nil {
					return fmt.Errorf("invalid item JSON: %w", err)
				}
				if item.ID == "" {
					item.ID = uuid.NewString()
				}
				batch = append(batch, &item)
				if len(batch) == loadBatchSize {
					if err := flush(); err != nil {
						return err
					}
				}
			}
			if err := scanner.Err(); err != nil {
				return err
			}
			if err := flush(); err != nil {
				return err
			}

			log.Info("load finished",
				zap.String("kind", kind),
				zap.Int("records", loaded),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&upsert, "upsert", false, "replace existing records instead of failing")
	return cmd
}
