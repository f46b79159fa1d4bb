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

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"

	"github.com/disneystreaming/neo4j-go-graphwalk/config"
)

//Graph compiles path and mutation descriptions into cypher and runs each in its own transaction.
//Batch operations run their items one at a time, in order, and stop at the first failure.
type Graph struct {
	cypherExecuter *cypherExecuter
	saver          *saver
	deleter        *deleter
	queryer        *queryer
	driver         neo4j.Driver
	logger         *slog.Logger
}

type options struct {
	logger            *slog.Logger
	metrics           *Metrics
	literalProperties bool
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

//WithLiteralEdgeProperties writes relationship properties as quoted literals in the
//ON CREATE SET / ON MATCH SET clauses instead of binding them as parameters.
func WithLiteralEdgeProperties() Option {
	return func(o *options) {
		o.literalProperties = true
	}
}

//New returns a Graph executing statements over transport.
func New(transport Transport, opts ...Option) *Graph {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	var (
		executer = newCypherExecuter(transport, o.logger, o.metrics)
		builder  = relationshipQueryBuilder{literalProperties: o.literalProperties}
	)
	return &Graph{
		cypherExecuter: executer,
		saver:          newSaver(executer, builder, o.logger),
		deleter:        newDeleter(executer, builder, o.logger),
		queryer:        newQueryer(executer, o.logger),
		logger:         o.logger,
	}
}

//Open connects to the database described by cfg. The returned Graph owns the driver; call Close when done.
func Open(cfg config.Config, opts ...Option) (*Graph, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	auth := neo4j.NoAuth()
	if cfg.Username != emptyString {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, cfg.Realm)
	}
	driver, err := neo4j.NewDriver(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxConnectionPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxConnectionPoolSize
		}
	})
	if err != nil {
		return nil, err
	}

	var configurers []func(*neo4j.TransactionConfig)
	if cfg.TransactionTimeout > 0 {
		configurers = append(configurers, func(tc *neo4j.TransactionConfig) {
			tc.Timeout = cfg.TransactionTimeout
		})
	}
	if cfg.LiteralEdgeProperties {
		opts = append(opts, WithLiteralEdgeProperties())
	}

	g := New(NewNeo4jTransport(driver, configurers...), opts...)
	g.driver = driver
	g.logger.Debug("graphwalk: opened", "uri", cfg.URI)
	return g, nil
}

//Close releases the driver opened by Open. It is a no-op for a Graph created with New.
func (g *Graph) Close() error {
	if g.driver == nil {
		return nil
	}
	return g.driver.Close()
}

//GetNodeCount returns the number of nodes carrying label, or -1 when the database returned no count.
func (g *Graph) GetNodeCount(label string) (int64, error) {
	return g.queryer.countNodes(label)
}

//GetNodes matches path and returns the values bound to its last node, along with every returned column.
func (g *Graph) GetNodes(path PathSpecification) ([]any, AggregateResult, error) {
	return g.queryer.getNodes(path)
}

//WriteNode creates or updates the node identified by its `id` property.
func (g *Graph) WriteNode(node NodeDescriptor) error {
	return g.saver.writeNode(node)
}

//WriteNodes writes nodes in order and returns how many were written before the first failure.
func (g *Graph) WriteNodes(nodes []NodeDescriptor) (int, error) {
	return g.saver.writeNodes(nodes)
}

//WriteConnection creates the relationship between two existing nodes if it is absent and sets its properties.
func (g *Graph) WriteConnection(start NodeDescriptor, relationship EdgeDescriptor, end NodeDescriptor) error {
	return g.saver.writeConnection(start, relationship, end)
}

func (g *Graph) WriteConnections(connections []ConnectionTriple) (int, error) {
	return g.saver.writeConnections(connections)
}

func (g *Graph) DeleteConnection(start NodeDescriptor, relationshipLabel string, end NodeDescriptor) error {
	return g.deleter.deleteConnection(start, relationshipLabel, end)
}

func (g *Graph) DeleteConnections(connections []ConnectionRef) (int, error) {
	return g.deleter.deleteConnections(connections)
}

//DeleteNodeAndConnections removes the node identified by its `id` property together with all of its relationships.
func (g *Graph) DeleteNodeAndConnections(node NodeDescriptor) error {
	return g.deleter.deleteNodeAndConnections(node)
}
