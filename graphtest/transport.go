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

//Package graphtest provides a scripted in-memory graphwalk.Transport for tests.
package graphtest

import (
	"sync"

	graphwalk "github.com/disneystreaming/neo4j-go-graphwalk"
)

//Response scripts the outcome of one transaction.
type Response struct {
	//OpenErr makes Open fail before a transaction exists.
	OpenErr error
	Rows    []graphwalk.Row
	//Errs are reported by the row stream; only the first is surfaced.
	Errs []error
}

//Transport hands out one scripted Response per opened transaction, in order.
//Once the script is exhausted every transaction succeeds with no rows.
type Transport struct {
	mu         sync.Mutex
	responses  []Response
	statements []graphwalk.Statement
	opened     int
	closed     int
}

func NewTransport(responses ...Response) *Transport {
	return &Transport{responses: responses}
}

func (t *Transport) Open() (graphwalk.TransactionHandle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var response Response
	if len(t.responses) > 0 {
		response, t.responses = t.responses[0], t.responses[1:]
	}
	if response.OpenErr != nil {
		return nil, response.OpenErr
	}
	t.opened++
	return &handle{transport: t, response: response}, nil
}

//Statements returns every statement committed so far.
func (t *Transport) Statements() []graphwalk.Statement {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]graphwalk.Statement(nil), t.statements...)
}

//Opened returns the number of transactions successfully opened.
func (t *Transport) Opened() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opened
}

//Closed returns the number of transactions closed.
func (t *Transport) Closed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

type handle struct {
	transport *Transport
	response  Response
	queued    []graphwalk.Statement
}

func (h *handle) Write(statement graphwalk.Statement) {
	h.queued = append(h.queued, statement)
}

func (h *handle) Commit() graphwalk.RowStream {
	h.transport.mu.Lock()
	h.transport.statements = append(h.transport.statements, h.queued...)
	h.transport.mu.Unlock()
	h.queued = nil
	return &stream{rows: h.response.Rows, errs: h.response.Errs, index: -1}
}

func (h *handle) Close() error {
	h.transport.mu.Lock()
	defer h.transport.mu.Unlock()
	h.transport.closed++
	return nil
}

type stream struct {
	rows  []graphwalk.Row
	errs  []error
	index int
}

func (s *stream) Next() bool {
	if s.index+1 >= len(s.rows) {
		return false
	}
	s.index++
	return true
}

func (s *stream) Row() graphwalk.Row {
	return s.rows[s.index]
}

func (s *stream) Err() error {
	if len(s.errs) == 0 {
		return nil
	}
	return s.errs[0]
}
