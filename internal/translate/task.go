package translate

import (
	"fmt"

	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/jobspec"
)

// Restart policy applied to every task.
const (
	taskDriver      = "docker"
	restartAttempts = 3
	restartDelay    = "20s"
)

func taskBlock(c config.Container) *jobspec.Block {
	blocks := make([]*jobspec.Block, 0, len(c.Mounts)+3)

	blocks = append(blocks, &jobspec.Block{
		Type: "config",
		Attributes: []jobspec.Attribute{
			jobspec.String("image", c.Image),
			jobspec.Strings("ports", c.Ports),
		},
	})

	for _, m := range c.Mounts {
		blocks = append(blocks, &jobspec.Block{
			Type: "volume_mount",
			Attributes: []jobspec.Attribute{
				jobspec.String("volume", m.Volume),
				jobspec.String("destination", m.Mountpoint),
			},
		})
	}

	blocks = append(blocks,
		&jobspec.Block{
			Type: "restart",
			Attributes: []jobspec.Attribute{
				jobspec.Int("attempts", restartAttempts),
				jobspec.String("delay", restartDelay),
			},
		},
		envBlock(c.Env),
	)

	return &jobspec.Block{
		Type:       "task",
		Labels:     []string{c.Name},
		Attributes: []jobspec.Attribute{jobspec.String("driver", taskDriver)},
		Blocks:     blocks,
	}
}

// envBlock keeps the value type of each entry: integers stay numbers.
func envBlock(env []config.EnvEntry) *jobspec.Block {
	attrs := make([]jobspec.Attribute, 0, len(env))
	for _, e := range env {
		switch v := e.Value.(type) {
		case config.IntegerValue:
			attrs = append(attrs, jobspec.Int(e.Name, int64(v)))
		case config.StringValue:
			attrs = append(attrs, jobspec.String(e.Name, string(v)))
		default:
			panic(fmt.Sprintf("translate: env %q has unsupported value type %T", e.Name, e.Value))
		}
	}
	return &jobspec.Block{Type: "env", Attributes: attrs}
}
