package parser

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/ukaji3/vaxscatter-go/pkg/vaxscatter/models"
	"github.com/xuri/excelize/v2"
)

var httpClient = &http.Client{
	Timeout: 30 * time.Second,
}

// Load reads state records from a file path or an http(s) URL.
// Sources ending in .xlsx are read as workbooks, everything else as CSV.
// Every failure is returned as a *LoadError; nothing is retried.
func Load(ctx context.Context, source string) ([]models.StateRecord, error) {
	log.Printf("Loading state stats from %s", source)

	rc, err := open(ctx, source)
	if err != nil {
		return nil, NewLoadError(source, StageFetch, err)
	}
	defer rc.Close()

	var records []models.StateRecord
	if isWorkbook(source) {
		records, err = readWorkbook(rc)
	} else {
		records, err = ReadCSV(rc)
	}
	if err != nil {
		return nil, NewLoadError(source, StageParse, err)
	}

	log.Printf("Loaded %d records from %s", len(records), source)
	return records, nil
}

// IsRemote reports whether a source is fetched over HTTP.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !IsRemote(source) {
		return os.Open(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download file: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

func isWorkbook(source string) bool {
	p := source
	if IsRemote(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}

func readWorkbook(r io.Reader) ([]models.StateRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid xlsx format: %w", err)
	}
	defer f.Close()

	return ReadXLSX(f)
}
