package info

// InfoResponse describes the running process.
type InfoResponse struct {
	App         string      `json:"app"`
	Version     string      `json:"version"`
	Environment string      `json:"environment"`
	Hostname    string      `json:"hostname"`
	Platform    string      `json:"platform"`
	GoVersion   string      `json:"goVersion"`
	Uptime      float64     `json:"uptime"`
	Memory      MemoryUsage `json:"memory"`
	Timestamp   string      `json:"timestamp"`
}

// MemoryUsage is a snapshot of the Go runtime memory statistics, in bytes
// except for NumGC.
type MemoryUsage struct {
	// Alloc is bytes of allocated heap objects
	Alloc uint64 `json:"alloc"`

	// TotalAlloc is cumulative bytes allocated for heap objects
	TotalAlloc uint64 `json:"totalAlloc"`

	// Sys is total bytes of memory obtained from the OS
	Sys uint64 `json:"sys"`

	HeapAlloc uint64 `json:"heapAlloc"`
	HeapInuse uint64 `json:"heapInuse"`
	HeapSys   uint64 `json:"heapSys"`

	// NumGC is the number of completed GC cycles
	NumGC uint32 `json:"numGC"`
}
