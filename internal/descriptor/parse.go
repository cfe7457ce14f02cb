package descriptor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"github.com/vk/nodock/internal/config"
	"github.com/vk/nodock/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Parse decodes a descriptor document into the config model. Defaults for
// check intervals, check timeouts and volume read-only flags are applied
// here. Any failure is returned as a *ParseError.
func Parse(ctx context.Context, data []byte, format Format) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	if format == "" {
		format = FormatTOML
	}
	logger.Debug("Parsing descriptor.", "format", format, "bytes", len(data))

	if !utf8.Valid(data) {
		return nil, &ParseError{Format: format, Err: errors.New("input is not valid UTF-8")}
	}

	var raw rawDescriptor
	if err := decode(data, format, &raw); err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	if err := validate.Struct(&raw); err != nil {
		return nil, &ParseError{Format: format, Err: formatValidationError(err)}
	}

	model, err := toModel(ctx, &raw)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	logger.Debug("Descriptor parsed.",
		"job", model.General.Name,
		"ports", len(model.Ports),
		"services", len(model.Services),
		"containers", len(model.Containers),
		"volumes", len(model.Volumes),
	)
	return model, nil
}

func decode(data []byte, format Format, raw *rawDescriptor) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, raw); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return fmt.Errorf("line %d, column %d: %w", row, col, err)
			}
			return err
		}
		return nil
	case FormatYAML:
		return yaml.Unmarshal(data, raw)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// toModel converts a validated raw document. Required pointers are known to
// be non-nil at this point.
func toModel(ctx context.Context, raw *rawDescriptor) (*config.Model, error) {
	model := &config.Model{
		General: config.General{
			Name:        *raw.General.Name,
			Count:       *raw.General.Count,
			Datacenters: raw.General.Datacenters,
		},
		Ports:      make([]config.Port, 0, len(raw.Ports)),
		Services:   make([]config.Service, 0, len(raw.Services)),
		Containers: make([]config.Container, 0, len(raw.Containers)),
		Volumes:    make([]config.Volume, 0, len(raw.Volumes)),
	}

	for _, p := range raw.Ports {
		model.Ports = append(model.Ports, config.Port{Name: *p.Name, To: *p.To})
	}

	for _, s := range raw.Services {
		model.Services = append(model.Services, config.Service{
			Name: *s.Name,
			Port: *s.Port,
			Tags: s.Tags,
			Check: config.ServiceCheck{
				Type:     *s.Check.Type,
				Interval: valueOr(s.Check.Interval, config.DefaultCheckInterval),
				Timeout:  valueOr(s.Check.Timeout, config.DefaultCheckTimeout),
				Path:     *s.Check.Path,
			},
		})
	}

	for i, c := range raw.Containers {
		container, err := toContainer(ctx, i, c)
		if err != nil {
			return nil, err
		}
		model.Containers = append(model.Containers, container)
	}

	for i, v := range raw.Volumes {
		vol, err := toVolume(i, v)
		if err != nil {
			return nil, err
		}
		model.Volumes = append(model.Volumes, vol)
	}

	return model, nil
}

func toContainer(ctx context.Context, index int, c rawContainer) (config.Container, error) {
	logger := ctxlog.FromContext(ctx)

	container := config.Container{
		Name:   *c.Name,
		Image:  *c.Image,
		Ports:  c.Ports,
		Mounts: make([]config.ContainerMount, 0, len(c.Mounts)),
		Env:    make([]config.EnvEntry, 0, len(c.Env)),
	}

	for _, m := range c.Mounts {
		container.Mounts = append(container.Mounts, config.ContainerMount{
			Volume:     *m.Volume,
			Mountpoint: *m.Mountpoint,
		})
	}

	for j, e := range c.Env {
		if e.Val == nil {
			return config.Container{}, fmt.Errorf("field 'containers[%d].env[%d].val' is required but missing", index, j)
		}
		val, ok, err := envValue(e.Val)
		if err != nil {
			return config.Container{}, fmt.Errorf("field 'containers[%d].env[%d].val': %w", index, j, err)
		}
		if !ok {
			logger.Warn("Dropping env entry with unsupported value type.",
				"container", container.Name,
				"env", *e.Name,
				"type", fmt.Sprintf("%T", e.Val),
			)
			continue
		}
		container.Env = append(container.Env, config.EnvEntry{Name: *e.Name, Value: val})
	}

	return container, nil
}

// envValue classifies a decoded scalar. ok is false for kinds the job spec
// env block does not carry (floats, booleans, datetimes, tables, arrays).
func envValue(v any) (val config.EnvValue, ok bool, err error) {
	switch x := v.(type) {
	case string:
		return config.StringValue(x), true, nil
	case int:
		return config.IntegerValue(x), true, nil
	case int64:
		return config.IntegerValue(x), true, nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, false, fmt.Errorf("integer %d overflows int64", x)
		}
		return config.IntegerValue(int64(x)), true, nil
	default:
		return nil, false, nil
	}
}

func toVolume(index int, v rawVolume) (config.Volume, error) {
	mode, err := pickAlias(index, "accessMode", v.AccessMode, "access_mode", v.AccessModeAlias)
	if err != nil {
		return config.Volume{}, err
	}
	readOnly, err := pickAlias(index, "readOnly", v.ReadOnly, "read_only", v.ReadOnlyAlias)
	if err != nil {
		return config.Volume{}, err
	}

	return config.Volume{
		Name:       *v.Name,
		AccessMode: valueOr(mode, ""),
		ReadOnly:   valueOr(readOnly, false),
	}, nil
}

// pickAlias returns whichever of a key and its alias was set. Setting both to
// different values is an error.
func pickAlias[T comparable](index int, key string, v *T, aliasKey string, alias *T) (*T, error) {
	switch {
	case v == nil:
		return alias, nil
	case alias == nil:
		return v, nil
	case *v != *alias:
		return nil, fmt.Errorf("volumes[%d]: '%s' and '%s' are both set and disagree", index, key, aliasKey)
	default:
		return v, nil
	}
}

func valueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
