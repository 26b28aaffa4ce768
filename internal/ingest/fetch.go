package ingest

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"aedmap/internal/config"
	"aedmap/pkg/e"
)

// Fetcher downloads the external AED feed. A transport failure or non-2xx
// response aborts the whole refresh before any data is touched.
type Fetcher struct {
	client    *http.Client
	url       string
	userAgent string
	logger    *slog.Logger
}

func NewFetcher(cfg config.FeedConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	const op = "ingest.Fetcher.Fetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logger.Error("feed download failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Wrap(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.logger.Error("feed returned non-2xx", slog.String("op", op), slog.String("status", resp.Status))
		return nil, fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	f.logger.Info("feed downloaded", slog.Int("bytes", len(body)))
	return body, nil
}

// ParseCSV reads the feed body as delimited text. Individual malformed
// records are skipped with a warning; only a failure to read the header is a
// total parse failure.
func ParseCSV(data []byte, logger *slog.Logger) ([]string, []Row, error) {
	const op = "ingest.ParseCSV"

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, e.Wrap(op, err)
	}

	var rows []Row
	var malformed int
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			malformed++
			logger.Warn("skipping malformed feed record", slog.Any("error", err))
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}

	logger.Info("feed parsed",
		slog.Int("rows", len(rows)),
		slog.Int("columns", len(header)),
		slog.Int("malformed", malformed),
	)
	return header, rows, nil
}
