// SPDX-License-Identifier: BSD-3-Clause
// Copyright (c) 2023, The Vardoc Authors.
// Licensed under the BSD-3-Clause License (the "License").
// You may not use this file except in compliance with the License.

// Package store persists a parsed corpus as a name-keyed index backed by the
// embeddable key-value database Badger, so repeated lookups against a large
// corpus skip re-parsing.
package store

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"

	"vardoc.sh/catalog"
	"vardoc.sh/log"
)

const (
	keyFingerprint = "meta/fingerprint"
	keyEntryPrefix = "entry/"
)

// ErrStale is returned when the index no longer matches the corpus it was
// built from.  Callers resolve it by reloading the corpus and re-indexing.
var ErrStale = errors.New("index is stale")

// ErrNotIndexed is returned when a name is missing from the index.
var ErrNotIndexed = errors.New("name not present in index")

// Record is the indexed form of a single entry.
type Record struct {
	Name     string
	File     string
	Line     int
	Summary  string
	Raw      []byte
	Refs     []string
	TermRefs []string
}

// Store is an on-disk index of a parsed corpus.
type Store struct {
	path    string
	bopts   badger.Options
	db      *badger.DB
	timeout time.Duration
}

// New returns a store rooted at the given directory.  The underlying database
// is opened lazily per operation so that concurrent vardoc invocations do not
// hold the directory lock longer than necessary.
func New(path string) (*Store, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("path for index store cannot be empty")
	}

	s := Store{
		path:    path,
		bopts:   badger.DefaultOptions(path),
		timeout: 5 * time.Second,
	}

	// Badger's own logger is too chatty for vardoc's output, disable it.
	s.bopts.Logger = nil

	return &s, nil
}

// open the embedded key-value store
func (s *Store) open() error {
	db, err := badger.Open(s.bopts)
	if err != nil && strings.Contains(err.Error(), "permission denied") {
		return fmt.Errorf("could not open index store: %v", err)
	} else if err != nil {
		// The directory lock may be held by a concurrent invocation, re-try
		// until the timeout elapses.
		deadline := time.Now().Add(s.timeout)
		for {
			db, err = badger.Open(s.bopts)
			if err == nil {
				break
			}
			if time.Now().After(deadline) {
				return fmt.Errorf("could not open index store: %v", err)
			}
			time.Sleep(100 * time.Millisecond)
		}
	}

	s.db = db

	return nil
}

// close the embedded key-value store
func (s *Store) close() error {
	return s.db.Close()
}

// Index writes every entry of the given catalog to the store along with the
// corpus fingerprint, replacing any previous index.
func (s *Store) Index(ctx context.Context, result *catalog.Result) error {
	if err := s.open(); err != nil {
		return err
	}

	defer s.close()

	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("could not clear previous index: %v", err)
	}

	fingerprint := Fingerprint(result)
	log.G(ctx).WithField("fingerprint", fingerprint).Debugf("indexing %d entries", result.Catalog.Len())

	txn := s.db.NewTransaction(true)
	defer txn.Discard()

	if err := txn.SetEntry(badger.NewEntry([]byte(keyFingerprint), []byte(fingerprint))); err != nil {
		return fmt.Errorf("could not save corpus fingerprint: %v", err)
	}

	for _, entry := range result.Catalog.All() {
		record := Record{
			Name:     entry.Name,
			File:     entry.File,
			Line:     entry.Line,
			Summary:  entry.Text(),
			Raw:      entry.Raw,
			Refs:     entry.Refs(),
			TermRefs: entry.TermRefs(),
		}

		b := bytes.Buffer{}
		if err := gob.NewEncoder(&b).Encode(record); err != nil {
			return fmt.Errorf("could not encode entry %s: %v", entry.Name, err)
		}

		if err := txn.SetEntry(badger.NewEntry([]byte(keyEntryPrefix+entry.Name), b.Bytes())); err != nil {
			return fmt.Errorf("could not save entry %s to index: %v", entry.Name, err)
		}
	}

	return txn.Commit()
}

// Lookup returns the indexed record for the given name.  When fingerprint is
// non-empty and does not match the fingerprint the index was built from,
// ErrStale is returned.
func (s *Store) Lookup(ctx context.Context, name, fingerprint string) (*Record, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	defer s.close()

	var record Record

	if err := s.db.View(func(txn *badger.Txn) error {
		if err := s.checkFingerprint(txn, fingerprint); err != nil {
			return err
		}

		item, err := txn.Get([]byte(keyEntryPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotIndexed, name)
		} else if err != nil {
			return fmt.Errorf("could not access index for %s: %v", name, err)
		}

		val, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("could not copy from index for %s: %v", name, err)
		}

		return gob.NewDecoder(bytes.NewReader(val)).Decode(&record)
	}); err != nil {
		return nil, err
	}

	return &record, nil
}

// Names returns all indexed entry names in key order.  When fingerprint is
// non-empty and does not match the fingerprint the index was built from,
// ErrStale is returned.
func (s *Store) Names(ctx context.Context, fingerprint string) ([]string, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	defer s.close()

	var names []string

	if err := s.db.View(func(txn *badger.Txn) error {
		if err := s.checkFingerprint(txn, fingerprint); err != nil {
			return err
		}

		itr := txn.NewIterator(badger.IteratorOptions{
			Prefix: []byte(keyEntryPrefix),
		})

		defer itr.Close()

		for itr.Rewind(); itr.Valid(); itr.Next() {
			key := string(itr.Item().Key())
			names = append(names, strings.TrimPrefix(key, keyEntryPrefix))
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return names, nil
}

func (s *Store) checkFingerprint(txn *badger.Txn, fingerprint string) error {
	item, err := txn.Get([]byte(keyFingerprint))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrStale
	} else if err != nil {
		return fmt.Errorf("could not access corpus fingerprint: %v", err)
	}

	stored, err := item.ValueCopy(nil)
	if err != nil {
		return fmt.Errorf("could not copy corpus fingerprint: %v", err)
	}

	if fingerprint != "" && string(stored) != fingerprint {
		return ErrStale
	}

	return nil
}
