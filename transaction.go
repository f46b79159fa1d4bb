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

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

//Transport opens the transactions statements are executed in.
type Transport interface {
	Open() (TransactionHandle, error)
}

//TransactionHandle is a single open transaction.
type TransactionHandle interface {
	//Write queues a statement. Nothing is sent until Commit.
	Write(statement Statement)
	//Commit sends the queued statements and returns the rows they produced.
	Commit() RowStream
	Close() error
}

//RowStream iterates over the rows of a committed transaction.
//Err reports the first error the stream encountered.
type RowStream interface {
	Next() bool
	Row() Row
	Err() error
}

type neo4jTransport struct {
	driver      neo4j.Driver
	accessMode  neo4j.AccessMode
	configurers []func(*neo4j.TransactionConfig)
}

//NewNeo4jTransport returns a Transport opening one write session and explicit transaction per statement.
func NewNeo4jTransport(driver neo4j.Driver, configurers ...func(*neo4j.TransactionConfig)) Transport {
	return &neo4jTransport{driver, neo4j.AccessModeWrite, configurers}
}

func (nt *neo4jTransport) Open() (TransactionHandle, error) {
	session := nt.driver.NewSession(neo4j.SessionConfig{
		AccessMode: nt.accessMode,
	})

	if neo4jTransaction, err := session.BeginTransaction(nt.configurers...); err != nil {
		session.Close()
		return nil, err
	} else {
		return &Transaction{
			neo4jTransaction: neo4jTransaction,
			session:          session}, nil
	}
}

//Transaction is a TransactionHandle backed by a neo4j session.
type Transaction struct {
	neo4jTransaction neo4j.Transaction
	session          neo4j.Session
	statements       []Statement
}

func (t *Transaction) Write(statement Statement) {
	t.statements = append(t.statements, statement)
}

//Commit runs the queued statements, buffers their records and commits.
//Any failure rolls the transaction back and is reported through the stream.
func (t *Transaction) Commit() RowStream {
	var records []*neo4j.Record
	for _, statement := range t.statements {
		result, err := t.neo4jTransaction.Run(statement.Cypher, statement.Parameters)
		if err != nil {
			return t.rollBack(err)
		}
		collected, err := result.Collect()
		if err != nil {
			return t.rollBack(err)
		}
		records = append(records, collected...)
	}
	t.statements = nil
	if err := t.neo4jTransaction.Commit(); err != nil {
		return &recordStream{err: err}
	}
	return &recordStream{records: records, index: -1}
}

func (t *Transaction) rollBack(err error) RowStream {
	t.statements = nil
	_ = t.neo4jTransaction.Rollback()
	return &recordStream{err: err}
}

func (t *Transaction) Close() error {
	return errors.Join(t.neo4jTransaction.Close(), t.session.Close())
}

type recordStream struct {
	records []*neo4j.Record
	index   int
	err     error
}

func (rs *recordStream) Next() bool {
	if rs.err != nil || rs.index+1 >= len(rs.records) {
		return false
	}
	rs.index++
	return true
}

func (rs *recordStream) Row() Row {
	record := rs.records[rs.index]
	row := make(Row, len(record.Keys))
	for index, key := range record.Keys {
		row[key] = record.Values[index]
	}
	return row
}

func (rs *recordStream) Err() error {
	return rs.err
}
