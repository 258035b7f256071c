// Package metrics exposes pipeline events as prometheus counters. Batch runs export them with
// WriteTextfile for the node exporter textfile collector.
package metrics

import (
	"github.com/loopcontext/clipdata"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "clipdata"

// Observer implements clipdata.Observer on a private prometheus registry.
type Observer struct {
	registry       *prometheus.Registry
	droppedRecords prometheus.Counter
	unknownRegions prometheus.Counter
	assets         *prometheus.CounterVec
	files          *prometheus.CounterVec
	strings        prometheus.Counter
}

var _ clipdata.Observer = (*Observer)(nil)

func NewObserver() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		droppedRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Upstream countries dropped for lack of a dial code.",
		}),
		unknownRegions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unknown_regions_total",
			Help:      "Kept countries whose code is not a recognised ISO 3166 country.",
		}),
		assets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flag_assets_total",
			Help:      "Flag downloads by outcome.",
		}, []string{"outcome"}),
		files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "data_files_total",
			Help:      "JSON data files by extraction outcome.",
		}, []string{"outcome"}),
		strings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strings_extracted_total",
			Help:      "Unique translatable strings added to the template.",
		}),
	}
	o.registry.MustRegister(o.droppedRecords, o.unknownRegions, o.assets, o.files, o.strings)
	return o
}

func (o *Observer) OnRecordDropped(code string, reason string) {
	o.droppedRecords.Inc()
}

func (o *Observer) OnUnknownRegion(code string) {
	o.unknownRegions.Inc()
}

func (o *Observer) OnAssetMaterialized(code string, filename string) {
	o.assets.WithLabelValues("materialized").Inc()
}

func (o *Observer) OnAssetFailed(code string, err error) {
	o.assets.WithLabelValues("failed").Inc()
}

func (o *Observer) OnFileExtracted(name string, added int) {
	o.files.WithLabelValues("extracted").Inc()
	o.strings.Add(float64(added))
}

func (o *Observer) OnFileSkipped(name string) {
	o.files.WithLabelValues("skipped").Inc()
}

func (o *Observer) OnFileFailed(name string, err error) {
	o.files.WithLabelValues("failed").Inc()
}

// Gatherer exposes the registry, e.g. for tests.
func (o *Observer) Gatherer() prometheus.Gatherer {
	return o.registry
}

// WriteTextfile writes all counters to path in the text exposition format.
func (o *Observer) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, o.registry)
}
