// Package eventlog parses contract event log lines.
//
// The log format is one event record per line: four unquoted
// comma-separated fields (timestamp, address, id, event name) followed by
// one double-quoted JSON payload. A literal quote inside the payload is
// escaped as a doubled quote, so the format is not standard CSV.
package eventlog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"token-liquidity-report/internal/domain"
)

// EventTransfer is the only event name that affects contract balance.
const EventTransfer = "Transfer"

// ErrNoValue is returned when a Transfer payload carries no usable value.
// Such lines have no liquidity effect and are not considered malformed.
var ErrNoValue = errors.New("transfer carries no value")

// lineRegex captures the 5 columns. [^,]+ keeps the first four fields
// comma-free; the greedy trailing group swallows the quoted payload
// including its doubled quote characters.
var lineRegex = regexp.MustCompile(`^([^,]+),([^,]+),([^,]+),([^,]+),"(.+)"$`)

// Record is the structural extraction of one log line.
type Record struct {
	Timestamp  string
	Address    string // unused for the liquidity report
	ID         string // unused for the liquidity report
	EventName  string
	RawPayload string // quoted payload with doubled quotes still in place
}

// ParseLine extracts the five-column structure from a raw line.
// Returns false when the line does not fit the shape.
func ParseLine(line string) (*Record, bool) {
	m := lineRegex.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return &Record{
		Timestamp:  m[1],
		Address:    m[2],
		ID:         m[3],
		EventName:  m[4],
		RawPayload: m[5],
	}, true
}

// timestampLayouts are tried in order. A trailing Z parses as +00:00 via
// RFC 3339; offset-less timestamps keep their local fields as-is.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// HourKey normalizes an ISO-8601 timestamp to the top of its hour,
// formatted as "YYYY-MM-DD HH:00:00". The key is derived from the parsed
// instant's own fields; no timezone conversion is performed.
func HourKey(ts string) (string, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, ts)
		if err == nil {
			return t.Format("2006-01-02 15:00:00"), nil
		}
		lastErr = err
	}
	return "", lastErr
}

// DecodeTransfer decodes a structurally valid Transfer record into a
// domain event. The payload is un-escaped (doubled quotes collapse to
// single quotes) and decoded as a JSON mapping with optional keys "from",
// "to" and "value"; value may arrive as a string or a bare number.
//
// Returns ErrNoValue when the value field is absent, empty or a bare
// zero. Any other
// failure (timestamp, JSON, value parse) is a content error the caller is
// expected to diagnose.
func DecodeTransfer(rec *Record) (*domain.TransferEvent, error) {
	hour, err := HourKey(rec.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp %q: %w", rec.Timestamp, err)
	}

	clean := strings.ReplaceAll(rec.RawPayload, `""`, `"`)
	fields := make(map[string]any)
	dec := json.NewDecoder(strings.NewReader(clean))
	dec.UseNumber() // keep >64-bit values lossless
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	valueStr, err := valueField(fields)
	if err != nil {
		return nil, err
	}
	value, ok := new(big.Int).SetString(valueStr, 10)
	if !ok || value.Sign() < 0 {
		return nil, fmt.Errorf("parse value %q: not a non-negative integer", valueStr)
	}

	return &domain.TransferEvent{
		Hour:  hour,
		From:  strings.ToLower(stringField(fields, "from")),
		To:    strings.ToLower(stringField(fields, "to")),
		Value: value,
	}, nil
}

// valueField reads the payload's value field. Absent fields, empty
// strings and the bare number zero carry no liquidity effect and report
// ErrNoValue; the quoted string "0" is a regular amount.
func valueField(fields map[string]any) (string, error) {
	switch v := fields["value"].(type) {
	case string:
		if v == "" {
			return "", ErrNoValue
		}
		return v, nil
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", ErrNoValue
		}
		return v.String(), nil
	}
	return "", ErrNoValue
}

// stringField reads a payload field that may be a JSON string or number.
// Absent or differently typed fields read as empty.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	}
	return ""
}
