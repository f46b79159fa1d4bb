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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	graphwalk "github.com/disneystreaming/neo4j-go-graphwalk"
)

//pathFile is the YAML form of a path:
//
//	start: {label: Foo, props: {id: "1"}}
//	steps:
//	  - out: {edge: {label: dependsOn}, node: {label: Foo}}
//	  - in:  {edge: {label: owns}, node: {label: Bar}}
type pathFile struct {
	Start graphwalk.NodeDescriptor `yaml:"start"`
	Steps []stepFile               `yaml:"steps"`
}

type stepFile struct {
	Out *hopFile `yaml:"out"`
	In  *hopFile `yaml:"in"`
}

type hopFile struct {
	Edge graphwalk.EdgeDescriptor `yaml:"edge"`
	Node graphwalk.NodeDescriptor `yaml:"node"`
}

var errStepShape = errors.New("step must set exactly one of out or in")

func (pf pathFile) toPath() (graphwalk.PathSpecification, error) {
	path := graphwalk.PathSpecification{Start: pf.Start}
	for index, s := range pf.Steps {
		switch {
		case s.Out != nil && s.In == nil:
			path.Steps = append(path.Steps, graphwalk.Out{Edge: s.Out.Edge, Node: s.Out.Node})
		case s.In != nil && s.Out == nil:
			path.Steps = append(path.Steps, graphwalk.In{Edge: s.In.Edge, Node: s.In.Node})
		default:
			return graphwalk.PathSpecification{}, fmt.Errorf("step %d: %w", index, errStepShape)
		}
	}
	return path, nil
}

func readPathFile(name string) (graphwalk.PathSpecification, error) {
	var pf pathFile
	if err := decodeFile(name, &pf); err != nil {
		return graphwalk.PathSpecification{}, err
	}
	return pf.toPath()
}

func readNodesFile(name string) ([]graphwalk.NodeDescriptor, error) {
	var nodes []graphwalk.NodeDescriptor
	if err := decodeFile(name, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

func decodeFile(name string, out any) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
