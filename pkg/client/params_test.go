package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParams_omitsEmptyValues(t *testing.T) {
	p := newParams()
	p.set("cursor", "")
	p.set("query", "chrome")

	assert.False(t, p.Has("cursor"))
	assert.Equal(t, "chrome", p.Get("query"))
}

func TestParams_setLimitOmitsNonPositive(t *testing.T) {
	p := newParams()
	p.setLimit(0)
	assert.False(t, p.Has("limit"))

	p.setLimit(-5)
	assert.False(t, p.Has("limit"))

	p.setLimit(25)
	assert.Equal(t, "25", p.Get("limit"))
}

func TestParams_setBoolDistinguishesFalseFromUnset(t *testing.T) {
	p := newParams()
	p.setBool("resolved", nil)
	assert.False(t, p.Has("resolved"))

	f := false
	p.setBool("resolved", &f)
	assert.Equal(t, "false", p.Get("resolved"))
}

func TestParams_setCSVJoinsWithCommas(t *testing.T) {
	p := newParams()
	p.setCSV("siteIds", nil)
	assert.False(t, p.Has("siteIds"))

	p.setCSV("siteIds", []string{"a", "b", "c"})
	assert.Equal(t, "a,b,c", p.Get("siteIds"))
}

func TestParams_setIntCSV(t *testing.T) {
	p := newParams()
	p.setIntCSV("activityTypes", nil)
	assert.False(t, p.Has("activityTypes"))

	p.setIntCSV("activityTypes", []int{27, 2001})
	assert.Equal(t, "27,2001", p.Get("activityTypes"))
}
