// Package promcollector exports kmeans engine metrics to Prometheus.
//
// Usage:
//
//	collector, err := promcollector.New(prometheus.DefaultRegisterer)
//	if err != nil { ... }
//	eng, _ := kmeans.NewEngine(ds, k, kmeans.WithMetricsCollector(collector))
//
// The collector is safe for concurrent use, so one instance may be shared by
// several engines.
package promcollector
