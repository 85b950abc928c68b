package omit

import (
	"encoding/json"
)

func New[T any](value T) Omit[T] {
	return Omit[T]{
		Value: value,
		OK:    true,
	}
}

func NewZero[T any]() Omit[T] {
	return Omit[T]{
		OK: false,
	}
}

// FromPtr returns a present value for a non-nil pointer and an absent one otherwise.
func FromPtr[T any](value *T) Omit[T] {
	if value == nil {
		return NewZero[T]()
	}
	return New(*value)
}

// Map converts a present value with fn and keeps absent values absent.
func Map[T any, R any](o Omit[T], fn func(T) R) Omit[R] {
	if !o.OK {
		return NewZero[R]()
	}
	return New(fn(o.Value))
}

type Omit[T any] struct {
	Value T    `json:"value"`
	OK    bool `json:"ok"`
}

func (o Omit[T]) IsZero() bool {
	return !o.OK
}

// Or returns the value if present and fallback otherwise.
func (o Omit[T]) Or(fallback T) T {
	if !o.OK {
		return fallback
	}
	return o.Value
}

func (o Omit[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}

func (o *Omit[T]) UnmarshalJSON(data []byte) error {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	o.Value = value
	o.OK = true

	return nil
}
