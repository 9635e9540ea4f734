// Copyright 2010-2024 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scip

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// counters are updated by the solving goroutine and read by metric scrapes,
// which may run concurrently.
type counters struct {
	callbacks  [numPluginKinds]atomic.Int64
	violations atomic.Int64
	captures   atomic.Int64
	releases   atomic.Int64
	solves     atomic.Int64
}

func newCounters() *counters {
	return &counters{}
}

// Collector exports the bridge counters of one model as Prometheus metrics.
type Collector struct {
	c *counters

	callbacks  *prometheus.Desc
	violations *prometheus.Desc
	captures   *prometheus.Desc
	releases   *prometheus.Desc
	liveRefs   *prometheus.Desc
	solves     *prometheus.Desc
}

// Collector returns a collector over the model's counters. labels are
// attached to every metric, and must tell models registered with the same
// registry apart. The collector stays valid after Close.
func (b base) Collector(labels prometheus.Labels) *Collector {
	return newCollector(b.c.h.inst.counters, labels)
}

func newCollector(c *counters, labels prometheus.Labels) *Collector {
	desc := func(name, help string, variable ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("scip", "bridge", name), help, variable, labels)
	}
	return &Collector{
		c:          c,
		callbacks:  desc("callbacks_total", "Plugin callbacks dispatched, by plugin kind", "kind"),
		violations: desc("contract_violations_total", "Plugin contract violations recorded"),
		captures:   desc("captures_total", "Native references acquired"),
		releases:   desc("releases_total", "Native references given back"),
		liveRefs:   desc("live_refs", "Native references currently held"),
		solves:     desc("solves_total", "Solves started"),
	}
}

func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- col.callbacks
	ch <- col.violations
	ch <- col.captures
	ch <- col.releases
	ch <- col.liveRefs
	ch <- col.solves
}

func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	for k := pluginKind(0); k < numPluginKinds; k++ {
		ch <- prometheus.MustNewConstMetric(col.callbacks, prometheus.CounterValue,
			float64(col.c.callbacks[k].Load()), k.String())
	}
	captures, releases := col.c.captures.Load(), col.c.releases.Load()
	ch <- prometheus.MustNewConstMetric(col.violations, prometheus.CounterValue, float64(col.c.violations.Load()))
	ch <- prometheus.MustNewConstMetric(col.captures, prometheus.CounterValue, float64(captures))
	ch <- prometheus.MustNewConstMetric(col.releases, prometheus.CounterValue, float64(releases))
	ch <- prometheus.MustNewConstMetric(col.liveRefs, prometheus.GaugeValue, float64(captures-releases))
	ch <- prometheus.MustNewConstMetric(col.solves, prometheus.CounterValue, float64(col.c.solves.Load()))
}
