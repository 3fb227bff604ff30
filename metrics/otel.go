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
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"dirpx.dev/hostx/apis"
)

// OTel is an apis.Observer backed by OpenTelemetry counters.
type OTel struct {
	lookups metric.Int64Counter
	stages  metric.Int64Counter
}

// Ensure OTel implements apis.Observer.
var _ apis.Observer = (*OTel)(nil)

// NewOTel creates the hostx instruments on m.
func NewOTel(m metric.Meter) (*OTel, error) {
	lookups, err := m.Int64Counter("hostx.method.lookups",
		metric.WithDescription("Method name lookups by type and outcome."),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}
	stages, err := m.Int64Counter("hostx.lifecycle.stages",
		metric.WithDescription("Lifecycle stages entered."),
		metric.WithUnit("{stage}"),
	)
	if err != nil {
		return nil, err
	}
	return &OTel{lookups: lookups, stages: stages}, nil
}

// ObserveLookup implements apis.Observer.
func (o *OTel) ObserveLookup(typeName string, outcome apis.LookupOutcome) {
	o.lookups.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("hostx.type_name", typeName),
		attribute.String("hostx.outcome", string(outcome)),
	))
}

// ObserveStage implements apis.Observer.
func (o *OTel) ObserveStage(stage apis.Stage) {
	o.stages.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("hostx.stage", stage.String()),
	))
}
