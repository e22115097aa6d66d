package outwriter

import (
	"fmt"
	"io"

	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/schema"
)

// WriteCacheStatusResults outputs cache backend status, dispatching based on
// the output format configured. CSV has no sensible shape here, so anything
// other than JSON falls back to the plain listing.
func WriteCacheStatusResults(status schema.CacheStatus, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, statusModel(status))
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeStatusPlain(status, w)
	}, "Wrote status")
}

// jsonCacheStatus is the export shape for cache status.
type jsonCacheStatus struct {
	Backend         schema.DatabaseBackend `json:"backend"`
	Connected       bool                   `json:"connected"`
	TotalEntries    int64                  `json:"total_entries"`
	LastEntryTime   string                 `json:"last_entry_time,omitempty"`
	OldestEntryTime string                 `json:"oldest_entry_time,omitempty"`
	TableSizeBytes  int64                  `json:"table_size_bytes"`
}

func statusModel(status schema.CacheStatus) jsonCacheStatus {
	out := jsonCacheStatus{
		Backend:        status.Backend,
		Connected:      status.Connected,
		TotalEntries:   status.TotalEntries,
		TableSizeBytes: status.TableSizeBytes,
	}
	if !status.LastEntryTime.IsZero() {
		out.LastEntryTime = status.LastEntryTime.Format("2006-01-02 15:04:05")
	}
	if !status.OldestEntryTime.IsZero() {
		out.OldestEntryTime = status.OldestEntryTime.Format("2006-01-02 15:04:05")
	}
	return out
}

// writeStatusPlain writes the human-readable status listing.
func writeStatusPlain(status schema.CacheStatus, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Backend:     %s\n", status.Backend); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Connected:   %t\n", status.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Entries:     %d\n", status.TotalEntries); err != nil {
		return err
	}
	if status.TotalEntries > 0 {
		if _, err := fmt.Fprintf(w, "Oldest:      %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Newest:      %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05")); err != nil {
			return err
		}
	}
	if status.TableSizeBytes > 0 {
		if _, err := fmt.Fprintf(w, "Size:        %.1f KB\n", float64(status.TableSizeBytes)/1024.0); err != nil {
			return err
		}
	}
	return nil
}
