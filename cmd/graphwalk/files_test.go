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

package main

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	graphwalk "github.com/disneystreaming/neo4j-go-graphwalk"
)

func TestReadPathFile(t *testing.T) {
	g := NewWithT(t)

	name := filepath.Join(t.TempDir(), "path.yaml")
	g.Expect(os.WriteFile(name, []byte(`
start: {label: Foo, props: {id: "1"}}
steps:
  - out: {edge: {label: dependsOn}, node: {label: Foo}}
  - in: {edge: {label: owns, props: {since: "2020"}}, node: {label: Bar}}
`), 0o600)).To(Succeed())

	path, err := readPathFile(name)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(path).To(Equal(graphwalk.PathSpecification{
		Start: graphwalk.NodeDescriptor{Label: "Foo", Props: graphwalk.Props{"id": "1"}},
		Steps: []graphwalk.Step{
			graphwalk.Out{Edge: graphwalk.EdgeDescriptor{Label: "dependsOn"}, Node: graphwalk.NodeDescriptor{Label: "Foo"}},
			graphwalk.In{Edge: graphwalk.EdgeDescriptor{Label: "owns", Props: graphwalk.Props{"since": "2020"}}, Node: graphwalk.NodeDescriptor{Label: "Bar"}},
		},
	}))
}

func TestStepMustHaveOneDirection(t *testing.T) {
	g := NewWithT(t)

	hop := &hopFile{Edge: graphwalk.EdgeDescriptor{Label: "x"}, Node: graphwalk.NodeDescriptor{Label: "Y"}}

	_, err := pathFile{Steps: []stepFile{{}}}.toPath()
	g.Expect(err).To(MatchError(errStepShape))

	_, err = pathFile{Steps: []stepFile{{Out: hop, In: hop}}}.toPath()
	g.Expect(err).To(MatchError(errStepShape))
}

func TestReadNodesFile(t *testing.T) {
	g := NewWithT(t)

	name := filepath.Join(t.TempDir(), "nodes.yaml")
	g.Expect(os.WriteFile(name, []byte(`
- label: Foo
  props: {id: "1", name: first}
- label: Bar
`), 0o600)).To(Succeed())

	nodes, err := readNodesFile(name)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(nodes).To(Equal([]graphwalk.NodeDescriptor{
		{Label: "Foo", Props: graphwalk.Props{"id": "1", "name": "first"}},
		{Label: "Bar"},
	}))
}
