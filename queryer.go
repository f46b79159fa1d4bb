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
	"log/slog"
	"slices"
)

type queryer struct {
	cypherExecuter *cypherExecuter
	logger         *slog.Logger
}

func newQueryer(cypherExecuter *cypherExecuter, logger *slog.Logger) *queryer {
	return &queryer{cypherExecuter, logger}
}

//countNodes returns -1 when the query ran but produced no usable count.
func (q *queryer) countNodes(label string) (int64, error) {
	statement, err := compileNodeCount(label)
	if err != nil {
		return 0, err
	}
	result, err := q.cypherExecuter.exec(CountNodes, statement)
	if err != nil {
		return 0, err
	}
	counts := result[countColumn]
	if len(counts) == 0 {
		q.logger.Debug("graphwalk: get node count", "label", label, "count", -1)
		return -1, nil
	}
	count, ok := toInt64(counts[0])
	if !ok {
		q.logger.Debug("graphwalk: get node count", "label", label, "value", counts[0], "count", -1)
		return -1, nil
	}
	q.logger.Debug("graphwalk: get node count", "label", label, "count", count)
	return count, nil
}

//getNodes returns the values bound to the last node of the path and the full result.
func (q *queryer) getNodes(path PathSpecification) ([]any, AggregateResult, error) {
	q.logger.Debug("graphwalk: get nodes", "start", path.Start.Label, "steps", len(path.Steps))
	compiled, err := compilePath(path)
	if err != nil {
		return nil, nil, err
	}
	result, err := q.cypherExecuter.exec(GetNodes, compiled.statement)
	if err != nil {
		return nil, nil, err
	}
	nodes := slices.Clone(result[compiled.lastVar()])
	if nodes == nil {
		nodes = []any{}
	}
	q.logger.Debug("graphwalk: get nodes", "returned", len(nodes))
	return nodes, result, nil
}

func toInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
