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

import "fmt"

var identifierPool = [...]string{"a", "b", "c", "d", "e", "f", "g"}

//identifierAllocator hands out the names bound to nodes and relationships in one compiled query.
type identifierAllocator struct {
	next int
}

func (ia *identifierAllocator) allocate() (string, error) {
	if ia.next >= len(identifierPool) {
		return "", fmt.Errorf("%w: at most %d identifiers per query", ErrPathTooLong, len(identifierPool))
	}
	identifier := identifierPool[ia.next]
	ia.next++
	return identifier, nil
}

//allocated returns every identifier handed out so far, in allocation order.
func (ia *identifierAllocator) allocated() []string {
	return append([]string(nil), identifierPool[:ia.next]...)
}
