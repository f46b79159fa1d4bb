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
	"slices"
)

type predicateSet struct {
	bagName  string
	bagValue Props
	clauses  []string
}

func (ps predicateSet) empty() bool {
	return len(ps.clauses) == 0
}

//buildPredicates produces `variable.key=$bagName.key` for every property, in key order.
func buildPredicates(variable string, props Props, bagName string) predicateSet {
	if len(props) == 0 {
		return predicateSet{}
	}
	keys := sortedKeys(props)
	clauses := make([]string, 0, len(keys))
	for _, key := range keys {
		clauses = append(clauses, variable+`.`+key+`=$`+bagName+`.`+key)
	}
	return predicateSet{bagName, maps.Clone(props), clauses}
}

func sortedKeys(props Props) []string {
	return slices.Sorted(maps.Keys(props))
}
