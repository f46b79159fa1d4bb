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
	"time"

	"github.com/google/uuid"
)

type cypherExecuter struct {
	transport Transport
	logger    *slog.Logger
	metrics   *Metrics
}

func newCypherExecuter(transport Transport, logger *slog.Logger, metrics *Metrics) *cypherExecuter {
	return &cypherExecuter{transport, logger, metrics}
}

//exec runs statement in its own transaction and folds the streamed rows into an AggregateResult.
//When the stream reports an error the partial result is returned with it; the error takes precedence.
func (c *cypherExecuter) exec(operation Operation, statement Statement) (AggregateResult, error) {
	var (
		started = time.Now()
		result  = AggregateResult{}
		rows    int
		logger  = c.logger.With("statement_id", uuid.NewString(), "operation", operation.String())
	)
	logger.Debug("graphwalk: executing statement", "cypher", statement.Cypher, "parameters", statement.Parameters)

	handle, err := c.transport.Open()
	if err != nil {
		logger.Warn("graphwalk: could not open transaction", "error", err)
		c.metrics.RecordStatement(operation, err, time.Since(started), 0)
		return nil, err
	}
	defer func() {
		if closeErr := handle.Close(); closeErr != nil {
			logger.Warn("graphwalk: closing transaction", "error", closeErr)
		}
	}()

	handle.Write(statement)
	stream := handle.Commit()
	for stream.Next() {
		row := stream.Row()
		if len(row) == 0 {
			continue
		}
		result.add(row)
		rows++
	}
	err = stream.Err()

	c.metrics.RecordStatement(operation, err, time.Since(started), rows)
	if err != nil {
		logger.Warn("graphwalk: statement failed", "error", err)
		return result, err
	}
	logger.Debug("graphwalk: statement done", "rows", rows, "duration", time.Since(started))
	return result, nil
}
