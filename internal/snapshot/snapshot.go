// Package snapshot captures and restores point-in-time copies of an
// account's profile data: the field catalog plus the detailed roster. The
// compare workflow diffs two such snapshots.
package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/graceapps/breezediff/internal/breeze"
)

// Source provides the two API calls a capture needs. *breeze.Client
// satisfies it.
type Source interface {
	ProfileFields(ctx context.Context) ([]breeze.Section, error)
	ListPeople(ctx context.Context, opts breeze.ListPeopleOptions) ([]breeze.Person, error)
}

// Snapshot is one saved copy of an account's profile data.
type Snapshot struct {
	ID      string           `json:"id"`
	TakenAt time.Time        `json:"taken_at"`
	Fields  []breeze.Section `json:"fields"`
	People  []breeze.Person  `json:"people"`
}

// Capture pulls the field catalog and the full detailed roster.
func Capture(ctx context.Context, src Source) (*Snapshot, error) {
	fields, err := src.ProfileFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching profile fields: %w", err)
	}
	people, err := src.ListPeople(ctx, breeze.ListPeopleOptions{Details: true})
	if err != nil {
		return nil, fmt.Errorf("fetching people: %w", err)
	}
	return &Snapshot{
		ID:      uuid.NewString(),
		TakenAt: time.Now().UTC(),
		Fields:  fields,
		People:  people,
	}, nil
}

// Filename returns the canonical file name for a snapshot taken at t.
func Filename(t time.Time) string {
	return "snapshot-" + t.UTC().Format("20060102-150405") + ".json"
}

// Write stores a snapshot as indented JSON, creating parent directories as
// needed.
func Write(path string, snap *Snapshot) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// Read loads a snapshot file.
func Read(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &snap, nil
}
