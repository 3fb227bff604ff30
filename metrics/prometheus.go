/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/hostx/apis"
)

// Prometheus is an apis.Observer backed by Prometheus counters.
type Prometheus struct {
	lookups *prometheus.CounterVec
	stages  *prometheus.CounterVec
}

// Ensure Prometheus implements apis.Observer.
var _ apis.Observer = (*Prometheus)(nil)

// NewPrometheus creates the hostx counters and registers them with reg.
// A nil reg skips registration.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostx",
			Name:      "method_lookups_total",
			Help:      "Method name lookups by type and outcome.",
		}, []string{"type", "outcome"}),
		stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hostx",
			Name:      "lifecycle_stages_total",
			Help:      "Lifecycle stages entered.",
		}, []string{"stage"}),
	}
	if reg == nil {
		return p, nil
	}
	for _, c := range []prometheus.Collector{p.lookups, p.stages} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ObserveLookup implements apis.Observer.
func (p *Prometheus) ObserveLookup(typeName string, outcome apis.LookupOutcome) {
	p.lookups.WithLabelValues(typeName, string(outcome)).Inc()
}

// ObserveStage implements apis.Observer.
func (p *Prometheus) ObserveStage(stage apis.Stage) {
	p.stages.WithLabelValues(stage.String()).Inc()
}
