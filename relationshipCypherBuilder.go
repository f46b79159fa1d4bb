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

const (
	emptyString           = ""
	startPropsBagName     = "startProps"
	endPropsBagName       = "endProps"
	relationshipPropsName = "relProps"
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

//literalValue renders a scalar for a quoted literal; nil becomes null.
func literalValue(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprint(value)
}

type relationshipQueryBuilder struct {
	//literalProperties embeds relationship property values in the query text instead of binding them.
	literalProperties bool
}

func (rqb relationshipQueryBuilder) endpointParameters(start NodeDescriptor, end NodeDescriptor) Parameters {
	return Parameters{
		startPropsBagName: maps.Clone(start.Props),
		endPropsBagName:   maps.Clone(end.Props),
	}
}

func (rqb relationshipQueryBuilder) getSet(relationship EdgeDescriptor, parameters Parameters) string {
	if len(relationship.Props) == 0 {
		return emptyString
	}
	var assignments []string
	for _, key := range sortedKeys(relationship.Props) {
		if rqb.literalProperties {
			value := literalEscaper.Replace(literalValue(relationship.Props[key]))
			assignments = append(assignments, `r.`+key+`='`+value+`'`)
		} else {
			assignments = append(assignments, `r.`+key+` = $`+relationshipPropsName+`.`+key)
		}
	}
	if !rqb.literalProperties {
		parameters[relationshipPropsName] = maps.Clone(relationship.Props)
	}
	return strings.Join(assignments, ", ")
}

func (rqb relationshipQueryBuilder) getUpsert(start NodeDescriptor, relationship EdgeDescriptor, end NodeDescriptor) (Statement, error) {
	for _, err := range []error{validateNode(start), validateEdge(relationship), validateNode(end)} {
		if err != nil {
			return Statement{}, err
		}
	}

	parameters := rqb.endpointParameters(start, end)
	lines := []string{
		`MATCH ` + identityPattern("a", start.Label, startPropsBagName) + `,` + identityPattern("b", end.Label, endPropsBagName),
		`MERGE (a)-[r:` + relationship.Label + `]->(b)`,
	}
	if set := rqb.getSet(relationship, parameters); set != emptyString {
		lines = append(lines, `ON CREATE SET `+set, `ON MATCH SET `+set)
	}
	lines = append(lines, `RETURN a,r,b`)

	return Statement{Cypher: strings.Join(lines, "\n"), Parameters: parameters}, nil
}

func (rqb relationshipQueryBuilder) getDelete(start NodeDescriptor, relationshipLabel string, end NodeDescriptor) (Statement, error) {
	for _, err := range []error{validateEndpoint(start), validateLabel(relationshipLabel), validateEndpoint(end)} {
		if err != nil {
			return Statement{}, err
		}
	}
	return Statement{
		Cypher: `MATCH ` + identityPattern("a", start.Label, startPropsBagName) +
			`-[r:` + relationshipLabel + `]->` +
			identityPattern("b", end.Label, endPropsBagName) + "\nDELETE r",
		Parameters: rqb.endpointParameters(start, end),
	}, nil
}
