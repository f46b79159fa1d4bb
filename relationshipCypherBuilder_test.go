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
	"testing"

	. "github.com/onsi/gomega"
)

var (
	fooNode = NodeDescriptor{Label: "Foo", Props: Props{"id": "1"}}
	barNode = NodeDescriptor{Label: "Bar", Props: Props{"id": "2"}}
)

func TestRelationshipUpsertWithoutProps(t *testing.T) {
	g := NewWithT(t)

	statement, err := relationshipQueryBuilder{}.getUpsert(fooNode, EdgeDescriptor{Label: "dependsOn"}, barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(Equal(
		"MATCH (a:Foo {id: $startProps.id}),(b:Bar {id: $endProps.id})\n" +
			"MERGE (a)-[r:dependsOn]->(b)\n" +
			"RETURN a,r,b"))
	g.Expect(statement.Parameters).To(Equal(Parameters{
		"startProps": fooNode.Props,
		"endProps":   barNode.Props,
	}))
}

func TestRelationshipUpsertBindsProps(t *testing.T) {
	g := NewWithT(t)

	edge := EdgeDescriptor{Label: "dependsOn", Props: Props{"since": "forever"}}
	statement, err := relationshipQueryBuilder{}.getUpsert(fooNode, edge, barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(Equal(
		"MATCH (a:Foo {id: $startProps.id}),(b:Bar {id: $endProps.id})\n" +
			"MERGE (a)-[r:dependsOn]->(b)\n" +
			"ON CREATE SET r.since = $relProps.since\n" +
			"ON MATCH SET r.since = $relProps.since\n" +
			"RETURN a,r,b"))
	g.Expect(statement.Parameters).To(HaveKeyWithValue("relProps", Props{"since": "forever"}))
}

func TestRelationshipUpsertLiteralProps(t *testing.T) {
	g := NewWithT(t)

	edge := EdgeDescriptor{Label: "dependsOn", Props: Props{"since": "forever"}}
	statement, err := relationshipQueryBuilder{literalProperties: true}.getUpsert(fooNode, edge, barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(Equal(
		"MATCH (a:Foo {id: $startProps.id}),(b:Bar {id: $endProps.id})\n" +
			"MERGE (a)-[r:dependsOn]->(b)\n" +
			"ON CREATE SET r.since='forever'\n" +
			"ON MATCH SET r.since='forever'\n" +
			"RETURN a,r,b"))
	g.Expect(statement.Parameters).NotTo(HaveKey("relProps"))
}

func TestRelationshipUpsertLiteralPropsAreEscaped(t *testing.T) {
	g := NewWithT(t)

	edge := EdgeDescriptor{Label: "dependsOn", Props: Props{"note": `it's \ here`, "weight": 2}}
	statement, err := relationshipQueryBuilder{literalProperties: true}.getUpsert(fooNode, edge, barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(ContainSubstring(`ON CREATE SET r.note='it\'s \\ here', r.weight='2'`))
}

func TestRelationshipUpsertLiteralNilProp(t *testing.T) {
	g := NewWithT(t)

	edge := EdgeDescriptor{Label: "dependsOn", Props: Props{"since": nil, "active": true}}
	statement, err := relationshipQueryBuilder{literalProperties: true}.getUpsert(fooNode, edge, barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(ContainSubstring("ON CREATE SET r.active='true', r.since='null'\n"))
	g.Expect(statement.Cypher).NotTo(ContainSubstring("<nil>"))
}

func TestRelationshipDelete(t *testing.T) {
	g := NewWithT(t)

	statement, err := relationshipQueryBuilder{}.getDelete(fooNode, "dependsOn", barNode)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(Equal("MATCH (a:Foo {id: $startProps.id})-[r:dependsOn]->(b:Bar {id: $endProps.id})\nDELETE r"))
	g.Expect(statement.Parameters).To(Equal(Parameters{
		"startProps": fooNode.Props,
		"endProps":   barNode.Props,
	}))
}

func TestRelationshipDeleteUnlabelledEnds(t *testing.T) {
	g := NewWithT(t)

	statement, err := relationshipQueryBuilder{}.getDelete(
		NodeDescriptor{Props: Props{"id": "1"}}, "dependsOn", NodeDescriptor{Props: Props{"id": "2"}})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(statement.Cypher).To(Equal("MATCH (a {id: $startProps.id})-[r:dependsOn]->(b {id: $endProps.id})\nDELETE r"))
}

func TestRelationshipRejectsUnsafeLabels(t *testing.T) {
	g := NewWithT(t)

	_, err := relationshipQueryBuilder{}.getUpsert(fooNode, EdgeDescriptor{Label: "x]->(y"}, barNode)
	g.Expect(err).To(MatchError(ErrInvalidDescriptor))

	_, err = relationshipQueryBuilder{}.getDelete(fooNode, "", barNode)
	g.Expect(err).To(MatchError(ErrInvalidDescriptor))
}
