// MIT License
//
// Copyright (c) 2020 codingfinest
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package graphwalk

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

//Metrics holds the collectors describing executed statements.
type Metrics struct {
	StatementsTotal   *prometheus.CounterVec
	StatementDuration *prometheus.HistogramVec
	RowsTotal         *prometheus.CounterVec
}

//NewMetrics creates the collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		StatementsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphwalk_statements_total",
				Help: "Total number of statements executed",
			},
			[]string{"operation", "status"},
		),
		StatementDuration: promauto.With(registerer).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graphwalk_statement_duration_seconds",
				Help:    "Time from opening a transaction to the end of its row stream",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RowsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphwalk_rows_total",
				Help: "Total number of rows aggregated",
			},
			[]string{"operation"},
		),
	}
}

//RecordStatement records one executed statement. A nil Metrics records nothing.
func (m *Metrics) RecordStatement(operation Operation, err error, duration time.Duration, rows int) {
	if m == nil {
		return
	}
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.StatementsTotal.WithLabelValues(operation.String(), status).Inc()
	m.StatementDuration.WithLabelValues(operation.String()).Observe(duration.Seconds())
	m.RowsTotal.WithLabelValues(operation.String()).Add(float64(rows))
}
