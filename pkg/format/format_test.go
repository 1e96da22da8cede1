package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	assert.Equal(t, "512 B", Bytes(512))
	assert.Equal(t, "1.0 KB", Bytes(1024))
	gb := 3.8 * 1024 * 1024 * 1024
	assert.Equal(t, "3.8 GB", Bytes(uint64(gb)))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "500ms", Duration(500*time.Millisecond))
	assert.Equal(t, "5s", Duration(5*time.Second))
	assert.Equal(t, "2m30s", Duration(150*time.Second))
	assert.Equal(t, "1h1m5s", Duration(time.Hour+time.Minute+5*time.Second))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "999", Count(999))
	assert.Equal(t, "1.5k", Count(1500))
	assert.Equal(t, "2.0M", Count(2_000_000))
}
