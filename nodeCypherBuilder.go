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
	"maps"
	"strings"
)

const (
	countColumn    = "count(*)"
	idPropertyName = "id"
)

//identityPattern renders `(variable:Label {id: $bag.id})`, dropping the label when it is empty.
func identityPattern(variable string, label string, bagName string) string {
	if label == emptyString {
		return `(` + variable + ` {id: $` + bagName + `.id})`
	}
	return `(` + variable + `:` + label + ` {id: $` + bagName + `.id})`
}

func compileNodeCount(label string) (Statement, error) {
	if err := validateLabel(label); err != nil {
		return Statement{}, err
	}
	return Statement{
		Cypher:     `MATCH (n:` + label + `) RETURN ` + countColumn,
		Parameters: Parameters{},
	}, nil
}

func compileNodeUpsert(node NodeDescriptor) (Statement, error) {
	if err := validateNode(node); err != nil {
		return Statement{}, err
	}

	var sets []string
	for _, key := range sortedKeys(node.Props) {
		if key != idPropertyName {
			sets = append(sets, `n.`+key+` = $`+startPropsName+`.`+key)
		}
	}

	lines := []string{`MERGE ` + identityPattern("n", node.Label, startPropsName)}
	if len(sets) > 0 {
		set := strings.Join(sets, ", ")
		lines = append(lines, `ON CREATE SET `+set, `ON MATCH SET `+set)
	}
	lines = append(lines, `RETURN n`)

	return Statement{
		Cypher:     strings.Join(lines, "\n"),
		Parameters: Parameters{startPropsName: maps.Clone(node.Props)},
	}, nil
}

func compileNodeDelete(node NodeDescriptor) (Statement, error) {
	if err := validateNode(node); err != nil {
		return Statement{}, err
	}
	return Statement{
		Cypher: strings.Join([]string{
			`MATCH ` + identityPattern("n", node.Label, startPropsName),
			`OPTIONAL MATCH (n)-[r]-()`,
			`DELETE n,r`,
		}, "\n"),
		Parameters: Parameters{startPropsName: maps.Clone(node.Props)},
	}, nil
}
