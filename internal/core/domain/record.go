package domain

import "time"

// InstallRecord is the persisted fingerprint of a prerequisite install.
type InstallRecord struct {
	Name       string    `json:"name"`
	InputHash  string    `json:"input_hash"`
	OutputHash string    `json:"output_hash"`
	Timestamp  time.Time `json:"timestamp"`
}

// Matches reports whether the record was produced from the same inputs and the install is intact.
func (r *InstallRecord) Matches(inputHash, outputHash string) bool {
	if r == nil {
		return false
	}
	return r.InputHash == inputHash && r.OutputHash == outputHash
}

// Result summarizes a successful target build.
type Result struct {
	Target     Target
	InstallDir string
	LogPath    string
	Duration   time.Duration
}
