package dto

import (
	"encoding/json"
	"net/http"
)

// Envelope wraps every successful response. Code doubles as the HTTP status.
// Data is omitted only when nil (delete); an empty list is serialised as [].
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    []T    `json:"data,omitempty"`
}

type envelopeBody[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
}

type messageBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e Envelope[T]) MarshalJSON() ([]byte, error) {
	if e.Data == nil {
		return json.Marshal(messageBody{Code: e.Code, Message: e.Message})
	}
	return json.Marshal(envelopeBody[T]{Code: e.Code, Message: e.Message, Data: e.Data})
}

func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	var body envelopeBody[T]
	if err := json.Unmarshal(b, &body); err != nil {
		return err
	}
	e.Code, e.Message, e.Data = body.Code, body.Message, body.Data
	return nil
}

func (e *Envelope[T]) StatusCode() int {
	return e.Code
}

func Created[T any](message string, record T) *Envelope[T] {
	return &Envelope[T]{Code: http.StatusCreated, Message: message, Data: []T{record}}
}

// Updated also answers 201.
func Updated[T any](message string, record T) *Envelope[T] {
	return &Envelope[T]{Code: http.StatusCreated, Message: message, Data: []T{record}}
}

func Fetched[T any](message string, records ...T) *Envelope[T] {
	if records == nil {
		records = []T{}
	}
	return &Envelope[T]{Code: http.StatusOK, Message: message, Data: records}
}

func Deleted[T any](message string) *Envelope[T] {
	return &Envelope[T]{Code: http.StatusOK, Message: message}
}
