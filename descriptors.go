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

//Props holds the scalar properties of a node or relationship pattern.
type Props = map[string]any

//Parameters maps a bag name referenced by compiled cypher to the properties it carries.
type Parameters map[string]any

//NodeDescriptor describes a vertex pattern. The reserved `id` property is the
//identity key used by the upsert and delete statements.
type NodeDescriptor struct {
	Label string `yaml:"label" validate:"required,cypherident"`
	Props Props  `yaml:"props,omitempty" validate:"omitempty,dive,keys,cypherident,endkeys"`
}

//EdgeDescriptor describes a relationship-type pattern.
type EdgeDescriptor struct {
	Label string `yaml:"label" validate:"required,cypherident"`
	Props Props  `yaml:"props,omitempty" validate:"omitempty,dive,keys,cypherident,endkeys"`
}

//Step is one directional hop of a path. The only implementations are Out and In.
type Step interface {
	hop() hop
}

type hop struct {
	direction Direction
	edge      EdgeDescriptor
	node      NodeDescriptor
}

//Out follows Edge from the previous node to Node.
type Out struct {
	Edge EdgeDescriptor
	Node NodeDescriptor
}

func (o Out) hop() hop {
	return hop{Outgoing, o.Edge, o.Node}
}

//In follows Edge from Node back to the previous node.
type In struct {
	Edge EdgeDescriptor
	Node NodeDescriptor
}

func (i In) hop() hop {
	return hop{Incoming, i.Edge, i.Node}
}

//PathSpecification is a start node followed by an ordered list of steps.
type PathSpecification struct {
	Start NodeDescriptor
	Steps []Step
}

//ConnectionTriple is the input of a relationship upsert.
type ConnectionTriple struct {
	Start        NodeDescriptor
	Relationship EdgeDescriptor
	End          NodeDescriptor
}

//ConnectionRef identifies a relationship to delete by the identity values of its ends.
//The labels are optional; an empty label matches a node of any label.
type ConnectionRef struct {
	Subject      any
	Predicate    string
	Object       any
	SubjectLabel string
	ObjectLabel  string
}

//Statement is compiled cypher text together with the parameters it references.
type Statement struct {
	Cypher     string
	Parameters Parameters
}

//Row is a single record streamed back by the database, keyed by column name.
type Row map[string]any

//AggregateResult holds every value returned for each column, in the order rows were received.
type AggregateResult map[string][]any

func (r AggregateResult) add(row Row) {
	for column, value := range row {
		r[column] = append(r[column], value)
	}
}

//present reports whether column holds a non-nil first value.
func (r AggregateResult) present(column string) bool {
	values := r[column]
	return len(values) > 0 && values[0] != nil
}
