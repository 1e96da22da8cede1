package ollama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmellor/maestro/internal/core/domain"
)

func TestPuller_EmptyModelIsPrecondition(t *testing.T) {
	puller := NewPuller("", testLogger())

	err := puller.Pull(t.Context(), "   ")
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.ErrKindPrecondition, pe.Kind)
}

func TestNewPuller_HostResolution(t *testing.T) {
	log := testLogger()

	assert.Equal(t, DefaultHost, NewPuller("", log).host)
	assert.Equal(t, "http://gpubox:11434", NewPuller("http://gpubox:11434/", log).host)
}
