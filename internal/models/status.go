package models

// MemoryUsage is the process memory snapshot reported by the root endpoint.
type MemoryUsage struct {
	RSS uint64 `json:"rss"`
	VMS uint64 `json:"vms"`
}
