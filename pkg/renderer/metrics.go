package renderer

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	raysTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "cube_raytracer",
		Name:      "rays_total",
		Help:      "The number of primary rays cast.",
	})

	hitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cube_raytracer",
		Name:      "hits_total",
		Help:      "The number of primary rays that hit a shape.",
	}, []string{"material"})
)

func recordMetrics(stats RenderStats) {
	raysTotal.Add(float64(stats.Rays))
	for name, n := range stats.MaterialHits {
		hitsTotal.WithLabelValues(name).Add(float64(n))
	}
}

// WriteMetrics writes the default registry in the text exposition format to path
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return errors.New("writing metrics failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}
