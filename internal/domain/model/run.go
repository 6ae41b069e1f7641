package model

// RunSummary counts order outcomes of a single allocation run.
type RunSummary struct {
	Orders      int `json:"orders"`
	FullyPaid   int `json:"fullyPaid"`
	Split       int `json:"split"`
	Unallocated int `json:"unallocated"`
	Skipped     int `json:"skipped"`
}

// Allocation is the outcome of one run: usage per instrument and order counts.
type Allocation struct {
	RunID   string
	Usage   *Usage
	Summary RunSummary
}
