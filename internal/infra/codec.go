package infra

import (
	"encoding/json"

	"petagenda/internal/domain/billing"
)

// SnapshotToJSON encodes an extras snapshot for a jsonb column. A nil
// snapshot persists as an empty object so the column never goes NULL.
func SnapshotToJSON(s billing.Snapshot) ([]byte, error) {
	if s == nil {
		s = billing.Snapshot{}
	}
	return json.Marshal(s)
}

func SnapshotFromJSON(data []byte) (billing.Snapshot, error) {
	if len(data) == 0 {
		return billing.Snapshot{}, nil
	}
	var s billing.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}
