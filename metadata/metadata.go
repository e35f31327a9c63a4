package metadata

import (
	"encoding/json"
	"os"
	"strings"

	got "github.com/taskcluster/go-got"
)

// EnvMetadataURIV4 is the environment variable through which the ECS agent
// injects the task metadata endpoint URL into every container it starts.
const EnvMetadataURIV4 = "ECS_CONTAINER_METADATA_URI_V4"

// Limits holds the CPU and memory ceilings assigned to the container. CPU is
// in ECS CPU units, Memory in MiB where 0 means no limit was set.
type Limits struct {
	CPU    uint16
	Memory uint16
}

// Metadata is an immutable snapshot of the container metadata document,
// constructed by Fetch. All accessors are pure reads over already validated
// data.
type Metadata struct {
	dockerID               string
	image                  string
	cluster                string
	containerName          string
	taskARN                string
	taskDefinitionFamily   string
	taskDefinitionRevision string
	limits                 Limits
}

// Fetch resolves the metadata endpoint from EnvMetadataURIV4 and requests the
// container metadata document, exactly once. There is no retry at this level,
// a failure at any step is terminal for the call and the caller decides
// whether to invoke Fetch again.
//
// The error is an EnvNotSetError if the environment variable is absent, and
// a FetchError for transport failures, non-2xx responses and documents not
// matching the expected schema.
func Fetch() (*Metadata, error) {
	metadataURL := os.Getenv(EnvMetadataURIV4)
	if metadataURL == "" {
		return nil, EnvNotSetError{Name: EnvMetadataURIV4}
	}

	g := got.New()
	g.Retries = 0

	res, err := g.Get(metadataURL).Send()
	if err != nil {
		return nil, FetchError{Op: "failed to fetch container metadata", Err: err}
	}

	var doc containerMetadataV4
	if err := json.Unmarshal(res.Body, &doc); err != nil {
		return nil, FetchError{Op: "failed to parse container metadata", Err: err}
	}
	if err := doc.validate(); err != nil {
		return nil, FetchError{Op: "failed to parse container metadata", Err: err}
	}

	return &Metadata{
		dockerID:               *doc.DockerID,
		image:                  *doc.Image,
		cluster:                *doc.Labels.Cluster,
		containerName:          *doc.Labels.ContainerName,
		taskARN:                *doc.Labels.TaskARN,
		taskDefinitionFamily:   *doc.Labels.TaskDefinitionFamily,
		taskDefinitionRevision: *doc.Labels.TaskDefinitionVersion,
		limits: Limits{
			CPU:    *doc.Limits.CPU,
			Memory: *doc.Limits.Memory,
		},
	}, nil
}

// DockerID returns the container runtime identifier.
func (m *Metadata) DockerID() string {
	return m.dockerID
}

// Image returns the container image reference, registry/repo:tag.
func (m *Metadata) Image() string {
	return m.image
}

// Cluster returns the name of the ECS cluster running this task.
func (m *Metadata) Cluster() string {
	return m.cluster
}

// ContainerName returns the container name from the task definition.
func (m *Metadata) ContainerName() string {
	return m.containerName
}

// TaskARN returns the fully-qualified ARN of the task this container belongs
// to.
func (m *Metadata) TaskARN() string {
	return m.taskARN
}

// TaskID returns the task ID, the portion of the task ARN after the last
// '/'. Returns ok == false if the ARN contains no '/' at all, in which case
// no task ID can be derived.
func (m *Metadata) TaskID() (id string, ok bool) {
	i := strings.LastIndexByte(m.taskARN, '/')
	if i < 0 {
		return "", false
	}
	return m.taskARN[i+1:], true
}

// TaskDefinitionFamily returns the family of the task definition.
func (m *Metadata) TaskDefinitionFamily() string {
	return m.taskDefinitionFamily
}

// TaskDefinitionRevision returns the revision of the task definition, as
// reported by the task-definition-version label.
func (m *Metadata) TaskDefinitionRevision() string {
	return m.taskDefinitionRevision
}

// Limits returns the CPU and memory limits assigned to the container.
func (m *Metadata) Limits() Limits {
	return m.limits
}
