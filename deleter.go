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
)

type deleter struct {
	cypherExecuter *cypherExecuter
	builder        relationshipQueryBuilder
	logger         *slog.Logger
}

func newDeleter(cypherExecuter *cypherExecuter, builder relationshipQueryBuilder, logger *slog.Logger) *deleter {
	return &deleter{cypherExecuter, builder, logger}
}

func (d *deleter) deleteConnection(start NodeDescriptor, relationshipLabel string, end NodeDescriptor) error {
	d.logger.Debug("graphwalk: delete connection", "start", start.Label, "relationship", relationshipLabel, "end", end.Label)
	statement, err := d.builder.getDelete(start, relationshipLabel, end)
	if err != nil {
		return err
	}
	_, err = d.cypherExecuter.exec(DeleteConnection, statement)
	return err
}

func (d *deleter) deleteConnections(connections []ConnectionRef) (int, error) {
	d.logger.Debug("graphwalk: delete connections", "count", len(connections))
	return runBatch(connections, func(c ConnectionRef) error {
		return d.deleteConnection(
			NodeDescriptor{Label: c.SubjectLabel, Props: Props{idPropertyName: c.Subject}},
			c.Predicate,
			NodeDescriptor{Label: c.ObjectLabel, Props: Props{idPropertyName: c.Object}})
	})
}

func (d *deleter) deleteNodeAndConnections(node NodeDescriptor) error {
	d.logger.Debug("graphwalk: delete node and connections", "label", node.Label, "props", node.Props)
	statement, err := compileNodeDelete(node)
	if err != nil {
		return err
	}
	_, err = d.cypherExecuter.exec(DeleteNodeAndConnections, statement)
	return err
}
