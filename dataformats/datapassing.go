package dataformats

// session measurement data model passed from the collector to the registry
// and the exporter
type Measurement struct {
	Force     float64 `json:"force"`
	Shrinkage float64 `json:"shrinkage"`
}

// run summary data model used for archive storage
type RunRecord struct {
	Id       string `json:"id"`
	Started  int64  `json:"started"`
	Finished int64  `json:"finished"`
	State    string `json:"state"`
	Sessions int    `json:"sessions"`
	Samples  int    `json:"samples"`
	Artifact string `json:"artifact,omitempty"`
}
