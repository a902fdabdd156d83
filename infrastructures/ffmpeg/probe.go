package ffmpeg

import (
	"context"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// バイナリが見つからない・-version が exit 0 でない、は両方 false
func (c *client) Available(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, c.binary, "-version")
	err := cmd.Run()
	if err != nil {
		log.Ctx(ctx).Debug().Msgf("encoder not available: %v", err)
		return false
	}
	return true
}
