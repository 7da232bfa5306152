// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package lexit stores strings content-addressably together with their
// derived properties and answers structured or natural-language
// queries over them. Service is the single entry point; transports
// stay thin wrappers around its five operations.
package lexit

import (
	"context"
	"log/slog"

	"github.com/poiesic/lexit/core"
	"github.com/poiesic/lexit/ingestion"
	"github.com/poiesic/lexit/query"
	"github.com/poiesic/lexit/storage"
)

// Service wires the analyzer, the record repository and the query
// engine into the operation set the transport exposes. Analysis and
// filter evaluation are pure and run outside any lock; only repository
// calls serialize.
type Service struct {
	records storage.RecordRepository
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new service on top of records.
func NewService(records storage.RecordRepository, opts ...Option) (*Service, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}

	s := &Service{
		records: records,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Create analyzes value and stores the resulting record under its
// content address. A value stored before yields storage.ErrConflict.
func (s *Service) Create(ctx context.Context, value string) (*core.StringRecord, error) {
	record, err := s.records.Add(ctx, core.NewStringRecord(value))
	if err != nil {
		return nil, err
	}
	s.logger.Debug("stored string", "id", record.Id, "length", record.Properties.Length)
	return record, nil
}

// GetByValue re-analyzes value to derive its content address and
// returns the stored record, or storage.ErrNotFound.
func (s *Service) GetByValue(ctx context.Context, value string) (*core.StringRecord, error) {
	return s.records.GetByValue(ctx, value)
}

// ListAll returns every stored record matching criteria. The criteria
// is validated once, up front, so an invalid filter is reported even
// when the store is empty; a nil criteria matches everything.
func (s *Service) ListAll(ctx context.Context, criteria *core.FilterCriteria) ([]*core.StringRecord, error) {
	if err := core.ValidateFilter(criteria); err != nil {
		return nil, err
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*core.StringRecord, 0, len(records))
	for _, record := range records {
		if query.Matches(record, criteria) {
			matched = append(matched, record)
		}
	}
	return matched, nil
}

// ListByPhrase translates phrase into a structured filter and returns
// the matching records along with the derived criteria. Translation
// never fails; deciding that the phrase is missing entirely is the
// transport's job.
func (s *Service) ListByPhrase(ctx context.Context, phrase string) (core.FilterCriteria, []*core.StringRecord, error) {
	criteria := query.Translate(phrase)
	s.logger.Debug("translated phrase", "phrase", phrase)

	records, err := s.ListAll(ctx, &criteria)
	if err != nil {
		return criteria, nil, err
	}
	return criteria, records, nil
}

// DeleteByValue re-analyzes value to derive its content address and
// removes the stored record, or returns storage.ErrNotFound.
func (s *Service) DeleteByValue(ctx context.Context, value string) error {
	return s.records.DeleteByValue(ctx, value)
}

// NewIngestionPipeline creates a bulk-loading pipeline on the service's
// repository.
func (s *Service) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(s.records, opts...)
}

// Close closes the underlying repository.
func (s *Service) Close() error {
	return s.records.Close()
}
