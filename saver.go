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

type saver struct {
	cypherExecuter *cypherExecuter
	builder        relationshipQueryBuilder
	logger         *slog.Logger
}

func newSaver(cypherExecuter *cypherExecuter, builder relationshipQueryBuilder, logger *slog.Logger) *saver {
	return &saver{cypherExecuter, builder, logger}
}

func (s *saver) writeNode(node NodeDescriptor) error {
	s.logger.Debug("graphwalk: write node", "label", node.Label, "props", node.Props)
	statement, err := compileNodeUpsert(node)
	if err != nil {
		return err
	}
	result, err := s.cypherExecuter.exec(WriteNode, statement)
	if err != nil {
		return err
	}
	if !result.present("n") {
		s.logger.Debug("graphwalk: write node", "error", ErrNodeNotCreated, "result", result)
		return ErrNodeNotCreated
	}
	return nil
}

func (s *saver) writeNodes(nodes []NodeDescriptor) (int, error) {
	s.logger.Debug("graphwalk: write nodes", "count", len(nodes))
	return runBatch(nodes, s.writeNode)
}

func (s *saver) writeConnection(start NodeDescriptor, relationship EdgeDescriptor, end NodeDescriptor) error {
	s.logger.Debug("graphwalk: write connection", "start", start.Label, "relationship", relationship.Label, "end", end.Label)
	statement, err := s.builder.getUpsert(start, relationship, end)
	if err != nil {
		return err
	}
	result, err := s.cypherExecuter.exec(WriteConnection, statement)
	if err != nil {
		return err
	}
	if !result.present("a") || !result.present("r") || !result.present("b") {
		s.logger.Debug("graphwalk: write connection", "error", ErrRelationshipNotCreated, "result", result)
		return ErrRelationshipNotCreated
	}
	return nil
}

func (s *saver) writeConnections(connections []ConnectionTriple) (int, error) {
	s.logger.Debug("graphwalk: write connections", "count", len(connections))
	return runBatch(connections, func(c ConnectionTriple) error {
		return s.writeConnection(c.Start, c.Relationship, c.End)
	})
}
