package client

import (
	"net/url"
	"strconv"
	"strings"
)

// params accumulates query parameters. Unset values are omitted entirely so
// absent filters never reach the wire as empty strings or empty lists.
type params struct {
	url.Values
}

func newParams() params {
	return params{make(url.Values)}
}

func (p params) set(key, value string) {
	if value != "" {
		p.Values.Set(key, value)
	}
}

// setLimit serializes a positive limit; zero means server default.
func (p params) setLimit(limit int) {
	if limit > 0 {
		p.Values.Set("limit", strconv.Itoa(limit))
	}
}

func (p params) setBool(key string, value *bool) {
	if value != nil {
		p.Values.Set(key, strconv.FormatBool(*value))
	}
}

// setCSV joins values with commas, the console's list-parameter convention.
func (p params) setCSV(key string, values []string) {
	if len(values) > 0 {
		p.Values.Set(key, strings.Join(values, ","))
	}
}

func (p params) setIntCSV(key string, values []int) {
	if len(values) == 0 {
		return
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	p.Values.Set(key, strings.Join(strs, ","))
}
