// Package port provides free-port discovery and range compression.
//
// # Scanning
//
// A Scanner asks a Prober about each port in a half-open range:
//
//	s := port.NewScanner(nil) // OS socket prober
//	free := s.FindFree(8000, 8010)
//	inUse := s.IsOpen(623)
//
// Results are advisory. Nothing stays bound after a probe, so another process
// can take a reported port before the caller binds it.
//
// # Allocation Strategy
//
// FirstFree uses first-fit: the lowest free port is chosen.
//
// # Range Compression
//
// Ranges turns an ascending, duplicate-free slice into maximal runs:
//
//	for r := range port.Ranges([]int{8000, 8001, 8002, 8005}) {
//	    fmt.Println(r) // 8000-8002, then 8005
//	}
//
// Range values are half-open; String prints the inclusive upper bound.
package port
