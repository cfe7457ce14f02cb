package translate

import (
	"context"

	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/ctxlog"
	"github.com/vk/nodock/internal/jobspec"
)

// Translate converts the model into a job-spec tree rooted at a single "job"
// block. On error no tree is returned.
func Translate(ctx context.Context, m *config.Model) (*jobspec.Block, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translation started.", "job", m.General.Name)

	network := networkBlock(m.Ports)

	services := make([]*jobspec.Block, 0, len(m.Services))
	for _, svc := range m.Services {
		services = append(services, serviceBlock(svc))
	}

	volumes := make([]*jobspec.Block, 0, len(m.Volumes))
	for _, vol := range m.Volumes {
		b, err := volumeBlock(vol)
		if err != nil {
			return nil, err
		}
		volumes = append(volumes, b)
	}

	tasks := make([]*jobspec.Block, 0, len(m.Containers))
	for _, c := range m.Containers {
		tasks = append(tasks, taskBlock(c))
	}

	// network, services, volumes, tasks
	children := make([]*jobspec.Block, 0, 1+len(services)+len(volumes)+len(tasks))
	children = append(children, network)
	children = append(children, services...)
	children = append(children, volumes...)
	children = append(children, tasks...)

	job := &jobspec.Block{
		Type:   "job",
		Labels: []string{m.General.Name},
		Attributes: []jobspec.Attribute{
			jobspec.Strings("datacenters", m.General.Datacenters),
		},
		Blocks: []*jobspec.Block{{
			Type:   "group",
			Labels: []string{m.General.Name},
			Attributes: []jobspec.Attribute{
				jobspec.Int("count", int64(m.General.Count)),
			},
			Blocks: children,
		}},
	}

	logger.Debug("Translation finished.",
		"ports", len(m.Ports),
		"services", len(services),
		"volumes", len(volumes),
		"tasks", len(tasks),
	)
	return job, nil
}
