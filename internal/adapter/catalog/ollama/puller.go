package ollama

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/tmellor/maestro/internal/core/domain"
	"github.com/tmellor/maestro/internal/logger"
	"github.com/tmellor/maestro/internal/util"
)

const (
	pullBinary  = "ollama"
	hostEnvVar  = "OLLAMA_HOST"
	pullTimeout = 30 * time.Minute
)

// Puller downloads models by shelling out to the ollama CLI. Pulls are slow
// and chatty on stdout, so the process owns the transfer; we only capture the
// outcome.
type Puller struct {
	logger *logger.StyledLogger
	host   string
}

func NewPuller(hostOverride string, log *logger.StyledLogger) *Puller {
	return &Puller{
		logger: log,
		host:   util.NormaliseHost(hostOverride, DefaultHost),
	}
}

// Pull runs `ollama pull <model>` to completion. When the effective host is
// not the default, OLLAMA_HOST is set for that invocation only. A non-zero
// exit surfaces as a process failure carrying the combined output and status.
func (p *Puller) Pull(ctx context.Context, model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return domain.NewProviderError(domain.ProviderOllama, domain.ErrKindPrecondition,
			"no model given to pull", nil)
	}

	pullCtx, cancel := context.WithTimeout(ctx, pullTimeout)
	defer cancel()

	cmd := exec.CommandContext(pullCtx, pullBinary, "pull", model)
	if p.host != DefaultHost {
		cmd.Env = append(os.Environ(), hostEnvVar+"="+p.host)
	}

	p.logger.InfoWithProvider("pulling model", model, "host", p.host)

	output, err := cmd.CombinedOutput()
	if err == nil {
		p.logger.InfoWithProvider("pulled model", model)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := fmt.Sprintf("ollama pull %s failed (exit %d): %s",
			model, exitErr.ExitCode(), strings.TrimSpace(string(output)))
		return domain.NewProviderError(domain.ProviderOllama, domain.ErrKindProcess, msg, err)
	}

	// The binary never ran (missing, killed by deadline)
	return domain.NewProviderError(domain.ProviderOllama, domain.ErrKindProcess,
		fmt.Sprintf("ollama pull %s: %v", model, err), err)
}
