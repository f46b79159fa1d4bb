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
	"errors"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	. "github.com/onsi/gomega"
)

//The fakes embed the driver interfaces; only the methods the transport calls are implemented.
type fakeDriver struct {
	neo4j.Driver
	session *fakeSession
	configs []neo4j.SessionConfig
}

func (d *fakeDriver) NewSession(config neo4j.SessionConfig) neo4j.Session {
	d.configs = append(d.configs, config)
	return d.session
}

type fakeSession struct {
	neo4j.Session
	transaction *fakeTransaction
	beginErr    error
	configured  int
	closed      int
}

func (s *fakeSession) BeginTransaction(configurers ...func(*neo4j.TransactionConfig)) (neo4j.Transaction, error) {
	s.configured = len(configurers)
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.transaction, nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeTransaction struct {
	neo4j.Transaction
	results    []*fakeResult
	runErr     error
	commitErr  error
	ran        []string
	committed  int
	rolledBack int
	closed     int
}

func (t *fakeTransaction) Run(cypher string, params map[string]interface{}) (neo4j.Result, error) {
	t.ran = append(t.ran, cypher)
	if t.runErr != nil {
		return nil, t.runErr
	}
	result := t.results[0]
	t.results = t.results[1:]
	return result, nil
}

func (t *fakeTransaction) Commit() error {
	t.committed++
	return t.commitErr
}

func (t *fakeTransaction) Rollback() error {
	t.rolledBack++
	return nil
}

func (t *fakeTransaction) Close() error {
	t.closed++
	return nil
}

type fakeResult struct {
	neo4j.Result
	records    []*neo4j.Record
	collectErr error
}

func (r *fakeResult) Collect() ([]*neo4j.Record, error) {
	return r.records, r.collectErr
}

func newFakeDriver(transaction *fakeTransaction) *fakeDriver {
	return &fakeDriver{session: &fakeSession{transaction: transaction}}
}

func drain(stream RowStream) []Row {
	var rows []Row
	for stream.Next() {
		rows = append(rows, stream.Row())
	}
	return rows
}

func TestNeo4jTransportMapsRecordsToRows(t *testing.T) {
	g := NewWithT(t)

	transaction := &fakeTransaction{results: []*fakeResult{
		{records: []*neo4j.Record{
			{Keys: []string{"a", "b"}, Values: []any{int64(1), "x"}},
			{Keys: []string{"a", "b"}, Values: []any{int64(2), nil}},
		}},
		{records: []*neo4j.Record{
			{Keys: []string{"count(*)"}, Values: []any{int64(3)}},
		}},
	}}
	driver := newFakeDriver(transaction)

	handle, err := NewNeo4jTransport(driver).Open()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(driver.configs).To(Equal([]neo4j.SessionConfig{{AccessMode: neo4j.AccessModeWrite}}))

	handle.Write(Statement{Cypher: "RETURN 1"})
	handle.Write(Statement{Cypher: "RETURN 2"})
	g.Expect(transaction.ran).To(BeEmpty())

	stream := handle.Commit()
	g.Expect(drain(stream)).To(Equal([]Row{
		{"a": int64(1), "b": "x"},
		{"a": int64(2), "b": nil},
		{"count(*)": int64(3)},
	}))
	g.Expect(stream.Err()).NotTo(HaveOccurred())
	g.Expect(transaction.ran).To(Equal([]string{"RETURN 1", "RETURN 2"}))
	g.Expect(transaction.committed).To(Equal(1))
	g.Expect(transaction.rolledBack).To(BeZero())
}

func TestNeo4jTransportRunErrorRollsBack(t *testing.T) {
	g := NewWithT(t)

	runErr := errors.New("syntax error")
	transaction := &fakeTransaction{runErr: runErr}

	handle, err := NewNeo4jTransport(newFakeDriver(transaction)).Open()
	g.Expect(err).NotTo(HaveOccurred())
	handle.Write(Statement{Cypher: "MATCH"})

	stream := handle.Commit()
	g.Expect(stream.Next()).To(BeFalse())
	g.Expect(stream.Err()).To(BeIdenticalTo(runErr))
	g.Expect(transaction.rolledBack).To(Equal(1))
	g.Expect(transaction.committed).To(BeZero())
}

func TestNeo4jTransportCollectErrorRollsBack(t *testing.T) {
	g := NewWithT(t)

	collectErr := errors.New("stream reset")
	transaction := &fakeTransaction{results: []*fakeResult{{
		records:    []*neo4j.Record{{Keys: []string{"n"}, Values: []any{1}}},
		collectErr: collectErr,
	}}}

	handle, err := NewNeo4jTransport(newFakeDriver(transaction)).Open()
	g.Expect(err).NotTo(HaveOccurred())
	handle.Write(Statement{Cypher: "MATCH (n) RETURN n"})

	stream := handle.Commit()
	g.Expect(drain(stream)).To(BeEmpty())
	g.Expect(stream.Err()).To(BeIdenticalTo(collectErr))
	g.Expect(transaction.rolledBack).To(Equal(1))
	g.Expect(transaction.committed).To(BeZero())
}

func TestNeo4jTransportCommitError(t *testing.T) {
	g := NewWithT(t)

	commitErr := errors.New("deadlock detected")
	transaction := &fakeTransaction{
		results:   []*fakeResult{{records: []*neo4j.Record{{Keys: []string{"n"}, Values: []any{1}}}}},
		commitErr: commitErr,
	}

	handle, err := NewNeo4jTransport(newFakeDriver(transaction)).Open()
	g.Expect(err).NotTo(HaveOccurred())
	handle.Write(Statement{Cypher: "MERGE (n:Foo) RETURN n"})

	stream := handle.Commit()
	g.Expect(drain(stream)).To(BeEmpty())
	g.Expect(stream.Err()).To(BeIdenticalTo(commitErr))
	g.Expect(transaction.committed).To(Equal(1))
}

func TestNeo4jTransportCloseClosesTransactionAndSession(t *testing.T) {
	g := NewWithT(t)

	transaction := &fakeTransaction{}
	driver := newFakeDriver(transaction)

	handle, err := NewNeo4jTransport(driver).Open()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(handle.Close()).To(Succeed())
	g.Expect(transaction.closed).To(Equal(1))
	g.Expect(driver.session.closed).To(Equal(1))
}

func TestNeo4jTransportBeginErrorClosesSession(t *testing.T) {
	g := NewWithT(t)

	beginErr := errors.New("connection refused")
	driver := newFakeDriver(nil)
	driver.session.beginErr = beginErr

	handle, err := NewNeo4jTransport(driver).Open()
	g.Expect(err).To(BeIdenticalTo(beginErr))
	g.Expect(handle).To(BeNil())
	g.Expect(driver.session.closed).To(Equal(1))
}

func TestNeo4jTransportPassesTransactionConfig(t *testing.T) {
	g := NewWithT(t)

	driver := newFakeDriver(&fakeTransaction{})
	_, err := NewNeo4jTransport(driver, func(tc *neo4j.TransactionConfig) {}).Open()
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(driver.session.configured).To(Equal(1))
}
