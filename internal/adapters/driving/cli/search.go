package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
	"github.com/custodia-labs/tunesearch/internal/core/services"
)

var (
	searchEntity string
	searchLimit  int
	searchSort   string
	searchDesc   bool
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search the music catalog",
	Long: `Searches the iTunes catalog and prints the results as a table.

Multiple arguments are joined into one search term. Results are sorted by
title unless --sort is given. Unset --entity and --limit fall back to the
saved settings.

Exit status is non-zero when the term is rejected or the catalog cannot be
reached. A search without matches prints a notice and exits with zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchEntity, "entity", "e", "",
		"kind of entry: song, album, musicArtist, musicVideo, podcast, audiobook")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (1-200)")
	searchCmd.Flags().StringVarP(&searchSort, "sort", "s", string(domain.SortByTitle), "sort column: title, artist or price")
	searchCmd.Flags().BoolVar(&searchDesc, "desc", false, "sort in descending order")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	sortState, err := parseSort(searchSort, searchDesc)
	if err != nil {
		return err
	}

	svc, err := requireServices(cmd)
	if err != nil {
		return err
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	query := domain.SearchQuery{
		Term:   strings.Join(args, " "),
		Entity: domain.EntityKind(searchEntity),
		Limit:  searchLimit,
	}
	if query.Entity == "" {
		query.Entity = settings.Search.Entity
	}
	if query.Limit == 0 {
		query.Limit = settings.Search.Limit
	}

	p := &presenter{}
	controller := svc.NewController(p)
	services.SortTo(controller, sortState)

	_, err = controller.Search(cmd.Context(), query)
	switch {
	case errors.Is(err, domain.ErrEmptyResults):
		if searchJSON {
			return outputSearchJSON(cmd, query.Term, sortState, nil)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.message)
		return nil
	case err != nil:
		return err
	}

	if searchJSON {
		return outputSearchJSON(cmd, p.term, sortState, p.rows)
	}
	return outputSearchTable(cmd, p)
}

func parseSort(column string, desc bool) (domain.SortState, error) {
	state := domain.SortState{Column: domain.SortColumn(column), Direction: domain.Ascending}
	if !state.Column.IsValid() {
		return state, fmt.Errorf("%w: sort must be one of title, artist or price", domain.ErrInvalidInput)
	}
	if desc {
		state.Direction = domain.Descending
	}
	return state, nil
}

// jsonSearchOutput is the --json document.
type jsonSearchOutput struct {
	Term    string       `json:"term"`
	Count   int          `json:"count"`
	Sort    string       `json:"sort"`
	Order   string       `json:"order"`
	Results []jsonResult `json:"results"`
}

type jsonResult struct {
	Title      string   `json:"title"`
	Artist     string   `json:"artist"`
	Album      string   `json:"album"`
	Price      string   `json:"price"`
	Duration   string   `json:"duration"`
	Genre      string   `json:"genre"`
	PriceValue *float64 `json:"price_value,omitempty"`
	DurationMS *int64   `json:"duration_ms,omitempty"`
	PreviewURL string   `json:"preview_url,omitempty"`
	ArtworkURL string   `json:"artwork_url,omitempty"`
}

func outputSearchJSON(cmd *cobra.Command, term string, sort domain.SortState, items []domain.ResultItem) error {
	out := jsonSearchOutput{
		Term:    term,
		Count:   len(items),
		Sort:    sort.Column.String(),
		Order:   sort.Direction.String(),
		Results: make([]jsonResult, len(items)),
	}
	for i, item := range items {
		row := item.Row()
		out.Results[i] = jsonResult{
			Title:      row.Title,
			Artist:     row.Artist,
			Album:      row.Album,
			Price:      row.Price,
			Duration:   row.Duration,
			Genre:      row.Genre,
			PriceValue: item.TrackPrice,
			DurationMS: item.TrackDurationMillis,
			PreviewURL: item.PreviewURL,
			ArtworkURL: item.ArtworkURL,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, p *presenter) error {
	rows := make([][]string, 0, len(p.rows))
	for _, item := range p.rows {
		r := item.Row()
		preview := domain.PlaceholderNoPreview
		if r.HasPreview {
			preview = "available"
		}
		rows = append(rows, []string{r.Title, r.Artist, r.Album, r.Price, r.Duration, r.Genre, preview})
	}

	out := cmd.OutOrStdout()
	headers := []string{"Title", "Artist", "Album", "Price", "Time", "Genre", "Preview"}
	fmt.Fprintln(out, renderTable(out, headers, rows))

	if p.hasInfo {
		noun := "results"
		if p.count == 1 {
			noun = "result"
		}
		fmt.Fprintf(out, "Showing %d %s for %q\n", p.count, noun, p.term)
	}
	return nil
}
