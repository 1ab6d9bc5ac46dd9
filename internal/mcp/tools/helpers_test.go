package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "12m ago", FormatTimeAgo(now.Add(-12*time.Minute).Format(time.RFC3339)))
	assert.Equal(t, "3h ago", FormatTimeAgo(now.Add(-3*time.Hour).Format(time.RFC3339)))
	assert.Equal(t, "2d ago", FormatTimeAgo(now.Add(-49*time.Hour).Format(time.RFC3339)))
}

func TestFormatTimeAgo_futureTimestamp(t *testing.T) {
	future := time.Now().Add(time.Hour).Format(time.RFC3339)
	assert.Equal(t, "just now", FormatTimeAgo(future))
}

func TestFormatTimeAgo_unparseableReturnedAsIs(t *testing.T) {
	assert.Equal(t, "yesterday-ish", FormatTimeAgo("yesterday-ish"))
	assert.Equal(t, "", FormatTimeAgo(""))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/short/path", TruncatePath("/short/path", 40))

	long := "/very/long/directory/structure/with/nested/folders/malware.exe"
	got := TruncatePath(long, 20)
	assert.Len(t, got, 20)
	assert.Equal(t, "...", got[:3])
	assert.Contains(t, got, "malware.exe")
}

func TestCursorHint(t *testing.T) {
	assert.Empty(t, cursorHint(""))
	assert.Contains(t, cursorHint("abc"), `"abc"`)
}

func TestOrUnknown(t *testing.T) {
	assert.Equal(t, "Unknown", orUnknown(""))
	assert.Equal(t, "web-01", orUnknown("web-01"))
}

func TestResolveLimit(t *testing.T) {
	got, err := resolveLimit(0, 25, 100)
	assert.NoError(t, err)
	assert.Equal(t, 25, got)

	got, err = resolveLimit(60, 25, 100)
	assert.NoError(t, err)
	assert.Equal(t, 60, got)

	got, err = resolveLimit(100, 25, 100)
	assert.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestResolveLimit_rejectsAboveMaximum(t *testing.T) {
	_, err := resolveLimit(101, 25, 100)
	assert.Error(t, err)

	var coded *CodedError
	assert.ErrorAs(t, err, &coded)
	assert.Equal(t, ErrCodeInvalidInput, coded.Code)
}
