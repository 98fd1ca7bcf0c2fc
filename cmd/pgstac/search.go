package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	pgstac "github.com/lk2023060901/pgstac-go"
)

func searchCmd() *cobra.Command {
	var (
		ids         []string
		collections []string
		bbox        []float64
		datetime    string
		limit       int
		token       string
		sortBy      []string
		filterJSON  string
		selects     []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search items and print the resulting page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search := &pgstac.Search{
				IDs:         ids,
				Collections: collections,
				Bbox:        bbox,
				Datetime:    datetime,
				Token:       token,
			}
			if limit > 0 {
				search.Limit = &limit
			}
			for _, s := range sortBy {
				sort, err := parseSortBy(s)
				if err != nil {
					return err
				}
				search.SortBy = append(search.SortBy, sort)
			}
			if filterJSON != "" {
				if err := json.Unmarshal([]byte(filterJSON), &search.Filter); err != nil {
					return fmt.Errorf("invalid --filter: %w", err)
				}
			}

			pool, client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			page, err := client.Search(cmd.Context(), search)
			if err != nil {
				return err
			}
			return printPage(page, selects)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&ids, "ids", nil, "restrict to these item ids")
	flags.StringSliceVar(&collections, "collections", nil, "restrict to these collections")
	flags.Float64SliceVar(&bbox, "bbox", nil, "bounding box: minx,miny,maxx,maxy")
	flags.StringVar(&datetime, "datetime", "", "instant or start/end range, '..' for open bounds")
	flags.IntVar(&limit, "limit", 0, "page size (0 = server default)")
	flags.StringVar(&token, "token", "", "pagination token from a previous page")
	flags.StringSliceVar(&sortBy, "sortby", nil, "sort criteria, field:asc or field:desc")
	flags.StringVar(&filterJSON, "filter", "", "cql2-json filter expression")
	flags.StringSliceVar(&selects, "select", nil, "print only these gjson paths per feature")
	return cmd
}

// parseSortBy parses "field:direction" with direction defaulting to asc.
func parseSortBy(s string) (pgstac.SortBy, error) {
	field, direction, found := strings.Cut(s, ":")
	if !found {
		return pgstac.Asc(field), nil
	}
	switch direction {
	case pgstac.SortAsc:
		return pgstac.Asc(field), nil
	case pgstac.SortDesc:
		return pgstac.Desc(field), nil
	default:
		return pgstac.SortBy{}, fmt.Errorf("invalid sort direction %q in %q", direction, s)
	}
}

// printPage prints either selected paths per feature or the whole page as
// indented JSON, followed by the continuation tokens.
func printPage(page *pgstac.Page, selects []string) error {
	if len(selects) > 0 {
		for i := range page.Features {
			values := make([]string, 0, len(selects))
			for _, path := range selects {
				values = append(values, page.FeatureValue(i, path).String())
			}
			fmt.Println(strings.Join(values, "\t"))
		}
	} else {
		encoded, err := json.MarshalIndent(page, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
	}

	if next, ok := page.NextToken(); ok {
		fmt.Printf("next token: %s\n", next)
	}
	if prev, ok := page.PrevToken(); ok {
		fmt.Printf("prev token: %s\n", prev)
	}
	return nil
}
