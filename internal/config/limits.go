package config

import "runtime"

// ResolveWorkers returns the worker count the parallel executor should use.
// An explicit setting wins; otherwise the runtime decides.
func ResolveWorkers(cfg AppConfig) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return EstimateWorkers()
}

// EstimateWorkers returns the number of goroutines that can run
// simultaneously, which is what a static parallel loop would use as its
// team size.
func EstimateWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
