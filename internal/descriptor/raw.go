package descriptor

// rawDescriptor mirrors the top level of a descriptor file. Tags are shared
// by the TOML and YAML decoders; `validate` tags are read by validator/v10.
//
// Scalars are pointers so that "absent" and "zero" can be told apart:
// `required` on a pointer only checks that the key was present.
type rawDescriptor struct {
	General    *rawGeneral    `toml:"general" yaml:"general" validate:"required"`
	Ports      []rawPort      `toml:"ports" yaml:"ports" validate:"required,dive"`
	Services   []rawService   `toml:"services" yaml:"services" validate:"required,dive"`
	Containers []rawContainer `toml:"containers" yaml:"containers" validate:"required,dive"`
	Volumes    []rawVolume    `toml:"volumes" yaml:"volumes" validate:"required,dive"`
}

type rawGeneral struct {
	Name        *string  `toml:"name" yaml:"name" validate:"required,min=1"`
	Count       *uint16  `toml:"count" yaml:"count" validate:"required"`
	Datacenters []string `toml:"datacenters" yaml:"datacenters" validate:"required"`
}

type rawPort struct {
	Name *string `toml:"name" yaml:"name" validate:"required"`
	To   *uint16 `toml:"to" yaml:"to" validate:"required"`
}

type rawService struct {
	Name  *string          `toml:"name" yaml:"name" validate:"required"`
	Port  *string          `toml:"port" yaml:"port" validate:"required"`
	Tags  []string         `toml:"tags" yaml:"tags" validate:"required"`
	Check *rawServiceCheck `toml:"check" yaml:"check" validate:"required"`
}

type rawServiceCheck struct {
	Type     *string `toml:"type" yaml:"type" validate:"required"`
	Interval *string `toml:"interval" yaml:"interval"`
	Timeout  *string `toml:"timeout" yaml:"timeout"`
	Path     *string `toml:"path" yaml:"path" validate:"required"`
}

type rawContainer struct {
	Name   *string             `toml:"name" yaml:"name" validate:"required"`
	Image  *string             `toml:"image" yaml:"image" validate:"required"`
	Ports  []string            `toml:"ports" yaml:"ports" validate:"required"`
	Mounts []rawContainerMount `toml:"mounts" yaml:"mounts" validate:"required,dive"`
	Env    []rawEnvEntry       `toml:"env" yaml:"env" validate:"required,dive"`
}

type rawContainerMount struct {
	Volume     *string `toml:"volume" yaml:"volume" validate:"required"`
	Mountpoint *string `toml:"mountpoint" yaml:"mountpoint" validate:"required"`
}

// rawEnvEntry keeps Val dynamic; it is classified by envValue. Presence of
// Val is checked there too, since `required` on an interface would reject
// zero values such as 0 or "".
type rawEnvEntry struct {
	Name *string `toml:"name" yaml:"name" validate:"required"`
	Val  any     `toml:"val" yaml:"val"`
}

// rawVolume accepts both the camelCase keys of the original descriptor
// format and their snake_case aliases.
type rawVolume struct {
	Name            *string `toml:"name" yaml:"name" validate:"required"`
	AccessMode      *string `toml:"accessMode" yaml:"accessMode" validate:"required_without=AccessModeAlias"`
	AccessModeAlias *string `toml:"access_mode" yaml:"access_mode"`
	ReadOnly        *bool   `toml:"readOnly" yaml:"readOnly"`
	ReadOnlyAlias   *bool   `toml:"read_only" yaml:"read_only"`
}
