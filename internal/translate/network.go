package translate

import (
	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/jobspec"
)

// networkBlock wraps one "port" block per declared port. The network block is
// emitted even when there are no ports.
func networkBlock(ports []config.Port) *jobspec.Block {
	network := &jobspec.Block{
		Type:   "network",
		Blocks: make([]*jobspec.Block, 0, len(ports)),
	}
	for _, p := range ports {
		network.Blocks = append(network.Blocks, &jobspec.Block{
			Type:       "port",
			Labels:     []string{p.Name},
			Attributes: []jobspec.Attribute{jobspec.Int("to", int64(p.To))},
		})
	}
	return network
}
