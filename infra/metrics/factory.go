package metrics

import coremetrics "github.com/patriknoomi/laddtider/core/metrics"

// FromConfig assembles the configured sinks. With nothing enabled a NopSink
// is returned so callers never branch on nil.
func FromConfig(cfg coremetrics.Config) coremetrics.Sink {
	var sinks []coremetrics.Sink
	if cfg.PushgatewayURL != "" {
		sinks = append(sinks, NewPromSink(cfg))
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}
	case 1:
		return sinks[0]
	default:
		return NewMultiSink(sinks...)
	}
}
