package schemastore

// DriftHint reports divergence between SQL identifiers and the current
// snapshot. It rides along on engine errors so the caller can decide whether
// to refresh schema context and retry.
type DriftHint struct {
	SchemaDriftSuspected bool     `json:"schema_drift_suspected"`
	MissingIdentifiers   []string `json:"missing_identifiers,omitempty"`
	SchemaSnapshotID     string   `json:"schema_snapshot_id"`
	AutoRefresh          bool     `json:"schema_drift_auto_refresh"`
}

// DetectDrift compares referenced identifiers against the snapshot. Returns
// nil when everything resolves.
func DetectDrift(s *Snapshot, columnUsage map[string][]string, autoRefresh bool) *DriftHint {
	missing := s.MissingIdentifiers(columnUsage)
	if len(missing) == 0 {
		return nil
	}
	return &DriftHint{
		SchemaDriftSuspected: true,
		MissingIdentifiers:   missing,
		SchemaSnapshotID:     s.ID(),
		AutoRefresh:          autoRefresh,
	}
}
