package config

// Model is the unified, format-agnostic representation of a workload
// descriptor.
type Model struct {
	General    General
	Ports      []Port
	Services   []Service
	Containers []Container
	Volumes    []Volume
}

// General identifies the workload and its scheduling scope.
type General struct {
	Name        string
	Count       uint16
	Datacenters []string
}

// Port is a named network port mapped to a container port.
type Port struct {
	Name string
	To   uint16
}

// Service registers a port under a name and tags, with a health check.
type Service struct {
	Name  string
	Port  string // name of a Port; not checked against Model.Ports
	Tags  []string
	Check ServiceCheck
}

// ServiceCheck describes the health check of a Service. Interval and Timeout
// are always populated; loaders substitute DefaultCheckInterval and
// DefaultCheckTimeout when the input omits them.
type ServiceCheck struct {
	Type     string
	Interval string
	Timeout  string
	Path     string
}

const (
	DefaultCheckInterval = "15s"
	DefaultCheckTimeout  = "3s"
)

// Container is a single docker task of the workload.
type Container struct {
	Name   string
	Image  string
	Ports  []string
	Mounts []ContainerMount
	Env    []EnvEntry
}

// ContainerMount mounts a Volume into a Container.
type ContainerMount struct {
	Volume     string
	Mountpoint string
}

// EnvEntry is a single environment variable of a Container.
type EnvEntry struct {
	Name  string
	Value EnvValue
}

// Volume is a CSI volume requested by the group. AccessMode holds the raw
// short code from the descriptor ("mnmw", "mnsw"); it is normalized during
// translation.
type Volume struct {
	Name       string
	AccessMode string
	ReadOnly   bool
}
