package state

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// snapshotVersion is the current persisted schema version. Bump it together
// with a new entry in migrations.
const snapshotVersion = 1

// snapshotEnvelope wraps the persisted state with its schema version so old
// snapshots can be migrated forward on load.
type snapshotEnvelope struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	State   json.RawMessage `json:"state"`
}

// migrations maps a source version to a pure old-shape -> new-shape step.
// Steps are applied sequentially until the state reaches snapshotVersion.
var migrations = map[int]func(map[string]any) map[string]any{
	0: migrateClientFieldNames,
}

// migrateClientFieldNames (v0 -> v1) renames the legacy Uzbek client fields
// to the descriptive ones, keeping already-migrated values untouched.
func migrateClientFieldNames(state map[string]any) map[string]any {
	clients, ok := state["clients"].([]any)
	if !ok {
		return state
	}
	renames := map[string]string{
		"fio":                   "full_name",
		"telefon":               "phone",
		"pasport_seriya_raqam":  "passport_series_number",
		"tugilgan_sana":         "birth_date",
		"pasport_berilgan_sana": "passport_issued_date",
		"manzil":                "address",
		"izoh":                  "notes",
	}
	for _, c := range clients {
		client, ok := c.(map[string]any)
		if !ok {
			continue
		}
		for legacy, current := range renames {
			v, has := client[legacy]
			if !has {
				continue
			}
			if _, alreadySet := client[current]; !alreadySet {
				client[current] = v
			}
			delete(client, legacy)
		}
	}
	return state
}

// loadSnapshot reads the snapshot file, migrates it to the current version
// and decodes it into the typed session state.
func loadSnapshot(path string) (sessionState, error) {
	var st sessionState
	raw, err := os.ReadFile(path)
	if err != nil {
		return st, err
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return st, fmt.Errorf("failed to decode snapshot envelope: %w", err)
	}
	if env.Version > snapshotVersion {
		return st, fmt.Errorf("snapshot version %d is newer than supported version %d", env.Version, snapshotVersion)
	}

	stateRaw := env.State
	if env.Version < snapshotVersion {
		var generic map[string]any
		if err := json.Unmarshal(stateRaw, &generic); err != nil {
			return st, fmt.Errorf("failed to decode snapshot state for migration: %w", err)
		}
		for v := env.Version; v < snapshotVersion; v++ {
			step, ok := migrations[v]
			if !ok {
				return st, fmt.Errorf("no migration step from snapshot version %d", v)
			}
			generic = step(generic)
		}
		stateRaw, err = json.Marshal(generic)
		if err != nil {
			return st, fmt.Errorf("failed to re-encode migrated snapshot: %w", err)
		}
	}

	if err := json.Unmarshal(stateRaw, &st); err != nil {
		return st, fmt.Errorf("failed to decode snapshot state: %w", err)
	}
	return st, nil
}

// saveSnapshot writes the state atomically: encode to a .tmp file first,
// then rename over the real path so a crash mid-write never corrupts the
// previous snapshot.
func saveSnapshot(path string, st sessionState) error {
	env := snapshotEnvelope{Version: snapshotVersion, SavedAt: time.Now().UTC()}
	stateRaw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot state: %w", err)
	}
	env.State = stateRaw

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
