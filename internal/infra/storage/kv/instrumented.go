package kv

import (
	"context"
	"errors"
	"time"
)

// Instrumented декоратор Store, измеряющий длительность операций
type Instrumented struct {
	next     Store
	observer Observer
}

// NewInstrumented оборачивает store
func NewInstrumented(next Store, observer Observer) *Instrumented {
	return &Instrumented{next: next, observer: observer}
}

func (s *Instrumented) observe(operation string, start time.Time, err error) {
	// отсутствие ключа штатная ситуация, а не сбой хранилища
	if errors.Is(err, ErrKeyNotFound) {
		err = nil
	}
	s.observer.ObserveStore(operation, time.Since(start), err)
}

func (s *Instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return value, err
}

func (s *Instrumented) Put(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Put(ctx, key, value)
	s.observe("put", start, err)
	return err
}

func (s *Instrumented) PutMany(ctx context.Context, values map[string][]byte) error {
	start := time.Now()
	err := s.next.PutMany(ctx, values)
	s.observe("put_many", start, err)
	return err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *Instrumented) Keys(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := s.next.Keys(ctx)
	s.observe("keys", start, err)
	return keys, err
}

func (s *Instrumented) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.next.Ping(ctx)
	s.observe("ping", start, err)
	return err
}

func (s *Instrumented) Close() error {
	return s.next.Close()
}
