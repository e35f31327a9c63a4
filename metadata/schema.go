package metadata

import "github.com/pkg/errors"

// Wire format for the container metadata document, as returned by the v4
// endpoint. This is the initial information set, the full format can be found
// at:
// https://docs.aws.amazon.com/AmazonECS/latest/developerguide/task-metadata-endpoint-v4-response.html
//
// Fields are pointers so that a property missing from the document can be
// told apart from a present zero value, notably Limits.Memory where 0 means
// unbounded.
type containerMetadataV4 struct {
	DockerID *string            `json:"DockerId"`
	Image    *string            `json:"Image"`
	Labels   *containerLabelsV4 `json:"Labels"`
	Limits   *containerLimitsV4 `json:"Limits"`
}

// Labels assigned by the ECS agent. The wire keys aren't expressible as
// identifiers, so every field carries an explicit rename.
type containerLabelsV4 struct {
	Cluster               *string `json:"com.amazonaws.ecs.cluster"`
	ContainerName         *string `json:"com.amazonaws.ecs.container-name"`
	TaskARN               *string `json:"com.amazonaws.ecs.task-arn"`
	TaskDefinitionFamily  *string `json:"com.amazonaws.ecs.task-definition-family"`
	TaskDefinitionVersion *string `json:"com.amazonaws.ecs.task-definition-version"`
}

type containerLimitsV4 struct {
	CPU    *uint16 `json:"CPU"`
	Memory *uint16 `json:"Memory"`
}

// validate ensures all required properties were present in the document.
func (m *containerMetadataV4) validate() error {
	switch {
	case m.DockerID == nil:
		return missingProperty("DockerId")
	case m.Image == nil:
		return missingProperty("Image")
	case m.Labels == nil:
		return missingProperty("Labels")
	case m.Labels.Cluster == nil:
		return missingProperty("Labels['com.amazonaws.ecs.cluster']")
	case m.Labels.ContainerName == nil:
		return missingProperty("Labels['com.amazonaws.ecs.container-name']")
	case m.Labels.TaskARN == nil:
		return missingProperty("Labels['com.amazonaws.ecs.task-arn']")
	case m.Labels.TaskDefinitionFamily == nil:
		return missingProperty("Labels['com.amazonaws.ecs.task-definition-family']")
	case m.Labels.TaskDefinitionVersion == nil:
		return missingProperty("Labels['com.amazonaws.ecs.task-definition-version']")
	case m.Limits == nil:
		return missingProperty("Limits")
	case m.Limits.CPU == nil:
		return missingProperty("Limits['CPU']")
	case m.Limits.Memory == nil:
		return missingProperty("Limits['Memory']")
	}
	return nil
}

func missingProperty(key string) error {
	return errors.Errorf("container metadata isn't valid, missing '%s' property", key)
}
