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
	"fmt"
	"maps"
	"strings"
)

const startPropsName = "props"

//compiledPath is a path statement plus the identifiers its RETURN clause lists.
type compiledPath struct {
	statement  Statement
	returnVars []string
}

//lastVar is the identifier bound to the final node of the path.
func (cp compiledPath) lastVar() string {
	return cp.returnVars[len(cp.returnVars)-1]
}

//hopOf accepts Out and In by value or through a non-nil pointer.
func hopOf(step Step) (hop, bool) {
	switch s := step.(type) {
	case Out:
		return s.hop(), true
	case In:
		return s.hop(), true
	case *Out:
		if s != nil {
			return s.hop(), true
		}
	case *In:
		if s != nil {
			return s.hop(), true
		}
	}
	return hop{}, false
}

func compilePath(path PathSpecification) (compiledPath, error) {
	var (
		ids        identifierAllocator
		where      []string
		parameters = Parameters{startPropsName: maps.Clone(path.Start.Props)}
	)

	if err := validateNode(path.Start); err != nil {
		return compiledPath{}, err
	}
	startID, err := ids.allocate()
	if err != nil {
		return compiledPath{}, err
	}
	match := `MATCH (` + startID + `:` + path.Start.Label + `)`
	where = append(where, buildPredicates(startID, path.Start.Props, startPropsName).clauses...)

	for index, step := range path.Steps {
		h, ok := hopOf(step)
		if !ok {
			return compiledPath{}, fmt.Errorf("%w: step %d", ErrMalformedStep, index)
		}
		if err = validateEdge(h.edge); err != nil {
			return compiledPath{}, err
		}
		if err = validateNode(h.node); err != nil {
			return compiledPath{}, err
		}

		var edgeID, nodeID string
		if edgeID, err = ids.allocate(); err != nil {
			return compiledPath{}, err
		}
		if nodeID, err = ids.allocate(); err != nil {
			return compiledPath{}, err
		}

		switch h.direction {
		case Outgoing:
			match += `-[` + edgeID + `:` + h.edge.Label + `]->(` + nodeID + `:` + h.node.Label + `)`
		case Incoming:
			match += `<-[` + edgeID + `:` + h.edge.Label + `]-(` + nodeID + `:` + h.node.Label + `)`
		default:
			return compiledPath{}, fmt.Errorf("%w: step %d", ErrMalformedStep, index)
		}

		for _, predicates := range []predicateSet{
			buildPredicates(edgeID, h.edge.Props, edgeID+"Props"),
			buildPredicates(nodeID, h.node.Props, nodeID+"Props"),
		} {
			if predicates.empty() {
				continue
			}
			where = append(where, predicates.clauses...)
			parameters[predicates.bagName] = predicates.bagValue
		}
	}

	lines := []string{match}
	if len(where) > 0 {
		lines = append(lines, `WHERE `+strings.Join(where, ` AND `))
	}
	returnVars := ids.allocated()
	lines = append(lines, `RETURN `+strings.Join(returnVars, ","))

	return compiledPath{
		statement:  Statement{Cypher: strings.Join(lines, "\n"), Parameters: parameters},
		returnVars: returnVars,
	}, nil
}
