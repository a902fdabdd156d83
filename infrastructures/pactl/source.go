package pactl

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/pulserec/internal/errutil"
)

func (c *client) DetectMonitorSource(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, "list", "sources")
	log.Ctx(ctx).Debug().Msg(cmd.String())
	out, err := cmd.Output()
	if err != nil {
		return "", errors.Wrap(errutil.ErrSourceList, err.Error())
	}

	name, ok := findMonitorSource(strings.Split(string(out), "\n"))
	if !ok {
		return "", errors.Wrap(errutil.ErrSourceList, "no sources listed")
	}
	return name, nil
}

// pactl list sources の出力から Name: フィールドを拾い、
// .monitor を含む最初のものを選ぶ
// モニターが見つからなければ先頭のソースで妥協する
func findMonitorSource(lines []string) (string, bool) {
	var names []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "Name:") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(trimmed, "Name:"))
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	for _, name := range names {
		if strings.Contains(name, ".monitor") {
			return name, true
		}
	}
	if len(names) > 0 {
		return names[0], true
	}
	return "", false
}
