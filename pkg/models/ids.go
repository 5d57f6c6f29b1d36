// Package models defines the data shapes exchanged with the samo platform:
// entity views (agents, users, locations, items, gimmicks, rankings),
// configuration documents and event payloads.
//
// Everything here is a value object. Persistence, execution and billing live
// in the platform backend; this package only fixes the wire format.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidID is returned when a value cannot be coerced into an ID.
var ErrInvalidID = errors.New("invalid id")

// ID is a 64-bit platform identifier.
//
// Identifiers are bigints on the platform side, so the JSON form is a decimal
// string. Decoding accepts both strings and numbers.
type ID int64

type (
	AgentID    = ID
	UserID     = ID
	LocationID = ID
	GimmickID  = ID
	EntityID   = ID
)

// ParseID parses a decimal id, ignoring surrounding whitespace.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidID)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID(n), nil
}

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id ID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ID) UnmarshalText(b []byte) error {
	v, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("%w: null", ErrInvalidID)
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		return id.UnmarshalText([]byte(s))
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, b)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, b)
	}
	*id = ID(v)
	return nil
}

// IDList is a list of ids that travels as a comma-separated string in query
// parameters ("1,2, 3").
type IDList []ID

// ParseIDList splits s on commas. Empty entries read as id 0, so "1,2,"
// yields [1 2 0].
func ParseIDList(s string) (IDList, error) {
	parts := strings.Split(s, ",")
	out := make(IDList, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			out = append(out, 0)
			continue
		}
		id, err := ParseID(p)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func (l IDList) MarshalText() ([]byte, error) {
	parts := make([]string, len(l))
	for i, id := range l {
		parts[i] = id.String()
	}
	return []byte(strings.Join(parts, ",")), nil
}

func (l *IDList) UnmarshalText(b []byte) error {
	v, err := ParseIDList(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// CSV is a comma-separated list of trimmed strings.
type CSV []string

func (c CSV) MarshalText() ([]byte, error) { return []byte(strings.Join(c, ",")), nil }

func (c *CSV) UnmarshalText(b []byte) error {
	parts := strings.Split(string(b), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	*c = parts
	return nil
}

// LenientIntList parses a comma-separated list of integers and silently
// drops entries that do not start with a number. "3,abc, 7x" yields [3 7].
type LenientIntList []int

func (l LenientIntList) MarshalText() ([]byte, error) {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = strconv.Itoa(n)
	}
	return []byte(strings.Join(parts, ",")), nil
}

func (l *LenientIntList) UnmarshalText(b []byte) error {
	out := LenientIntList{}
	for _, p := range strings.Split(string(b), ",") {
		if n, ok := leadingInt(strings.TrimSpace(p)); ok {
			out = append(out, n)
		}
	}
	*l = out
	return nil
}

// leadingInt reads an optionally signed run of digits from the start of s.
func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
