// Copyright 2025 Naren Yellavula
//
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

// Package stats records the rebalancing work reported by tree operations.
package stats

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cybrota/avltree/avl"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	ResultOK        = "ok"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

const (
	operationsMetric = "avltree_operations_total"
	costMetric       = "avltree_rebalance_cost"
	joinMetric       = "avltree_join_complexity"
)

var costBuckets = []float64{0, 1, 2, 3, 5, 8, 13, 21, 34}

// Recorder owns a private registry so several recorders can coexist in tests.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	cost       *prometheus.HistogramVec
	join       prometheus.Histogram
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: operationsMetric,
			Help: "Tree operations by kind and outcome.",
		}, []string{"op", "result"}),
		cost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    costMetric,
			Help:    "Rebalancing operations reported by successful inserts and deletes.",
			Buckets: costBuckets,
		}, []string{"op"}),
		join: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    joinMetric,
			Help:    "Complexity reported by joins.",
			Buckets: costBuckets,
		}),
	}
	r.registry.MustRegister(r.operations, r.cost, r.join)
	return r
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func classify(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, avl.ErrDuplicateKey):
		return ResultDuplicate
	case errors.Is(err, avl.ErrKeyNotFound):
		return ResultNotFound
	default:
		return ResultError
	}
}

// Observe records one insert or delete with the cost it reported.
func (r *Recorder) Observe(op string, cost int, err error) {
	result := classify(err)
	r.operations.WithLabelValues(op, result).Inc()
	if result == ResultOK {
		r.cost.WithLabelValues(op).Observe(float64(cost))
	}
}

// ObserveJoin records one join.
func (r *Recorder) ObserveJoin(complexity int) {
	r.operations.WithLabelValues("join", ResultOK).Inc()
	r.join.Observe(float64(complexity))
}

// OpSummary aggregates one operation kind.
type OpSummary struct {
	Op       string
	Count    uint64 // Successful calls
	Failures uint64
	CostSum  float64
}

func (s OpSummary) CostMean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.CostSum / float64(s.Count)
}

func (s OpSummary) String() string {
	return fmt.Sprintf("%-7s ok=%d failed=%d cost=%.0f mean=%.3f", s.Op, s.Count, s.Failures, s.CostSum, s.CostMean())
}

// Snapshot gathers the registry into per-operation summaries sorted by name.
func (r *Recorder) Snapshot() ([]OpSummary, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	byOp := make(map[string]*OpSummary)
	get := func(op string) *OpSummary {
		if s, ok := byOp[op]; ok {
			return s
		}
		s := &OpSummary{Op: op}
		byOp[op] = s
		return s
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := labelMap(metric)
			switch family.GetName() {
			case operationsMetric:
				s := get(labels["op"])
				if labels["result"] != ResultOK {
					s.Failures += uint64(metric.GetCounter().GetValue())
				}
			case costMetric:
				s := get(labels["op"])
				s.Count = metric.GetHistogram().GetSampleCount()
				s.CostSum = metric.GetHistogram().GetSampleSum()
			case joinMetric:
				// A plain histogram is exported even before its first sample
				if metric.GetHistogram().GetSampleCount() == 0 {
					continue
				}
				s := get("join")
				s.Count = metric.GetHistogram().GetSampleCount()
				s.CostSum = metric.GetHistogram().GetSampleSum()
			}
		}
	}

	summaries := make([]OpSummary, 0, len(byOp))
	for _, s := range byOp {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Op < summaries[j].Op
	})
	return summaries, nil
}

func labelMap(metric *dto.Metric) map[string]string {
	labels := make(map[string]string, len(metric.GetLabel()))
	for _, pair := range metric.GetLabel() {
		labels[pair.GetName()] = pair.GetValue()
	}
	return labels
}
