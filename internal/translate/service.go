package translate

import (
	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/jobspec"
)

// checkName is the name given to every service health check.
const checkName = "app_health"

func serviceBlock(svc config.Service) *jobspec.Block {
	return &jobspec.Block{
		Type: "service",
		Attributes: []jobspec.Attribute{
			jobspec.String("name", svc.Name),
			jobspec.String("port", svc.Port),
			jobspec.Strings("tags", svc.Tags),
		},
		Blocks: []*jobspec.Block{checkBlock(svc.Check)},
	}
}

func checkBlock(c config.ServiceCheck) *jobspec.Block {
	return &jobspec.Block{
		Type: "check",
		Attributes: []jobspec.Attribute{
			jobspec.String("type", c.Type),
			jobspec.String("path", c.Path),
			jobspec.String("name", checkName),
			jobspec.String("interval", c.Interval),
			jobspec.String("timeout", c.Timeout),
		},
	}
}
