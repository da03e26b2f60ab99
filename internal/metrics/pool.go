package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolSnapshot is the subset of pool statistics exported on scrape
type PoolSnapshot struct {
	Total    int32
	Idle     int32
	Acquired int32
	Max      int32
	Acquires int64
}

// PgxPoolStats reads a snapshot from a pgx pool
func PgxPoolStats(pool *pgxpool.Pool) func() PoolSnapshot {
	return func() PoolSnapshot {
		s := pool.Stat()
		return PoolSnapshot{
			Total:    s.TotalConns(),
			Idle:     s.IdleConns(),
			Acquired: s.AcquiredConns(),
			Max:      s.MaxConns(),
			Acquires: s.AcquireCount(),
		}
	}
}

// PoolCollector reports pool statistics at scrape time, so no ticker has to
// copy them into gauges
type PoolCollector struct {
	stats    func() PoolSnapshot
	conns    *prometheus.Desc
	maxConns *prometheus.Desc
	acquires *prometheus.Desc
}

func NewPoolCollector(stats func() PoolSnapshot) *PoolCollector {
	return &PoolCollector{
		stats:    stats,
		conns:    prometheus.NewDesc(MetricNameDBPoolConns, HelpTextDBPoolConns, []string{LabelState}, nil),
		maxConns: prometheus.NewDesc(MetricNameDBPoolMaxConns, HelpTextDBPoolMaxConns, nil, nil),
		acquires: prometheus.NewDesc(MetricNameDBPoolAcquires, HelpTextDBPoolAcquires, nil, nil),
	}
}

func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.conns
	ch <- c.maxConns
	ch <- c.acquires
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Total), StateTotal)
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Idle), StateIdle)
	ch <- prometheus.MustNewConstMetric(c.conns, prometheus.GaugeValue, float64(s.Acquired), StateAcquired)
	ch <- prometheus.MustNewConstMetric(c.maxConns, prometheus.GaugeValue, float64(s.Max))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.Acquires))
}

// RegisterPoolCollector installs c on the default registry, replacing a
// collector registered by an earlier call
func RegisterPoolCollector(c *PoolCollector) error {
	prometheus.Unregister(c)
	return prometheus.Register(c)
}
