package inspect

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sardusmatt/ecs-metadata/commands"
	"github.com/sardusmatt/ecs-metadata/metadata"
)

func init() {
	commands.Register("inspect", cmd{})
}

type cmd struct{}

func (cmd) Summary() string {
	return "Fetch and display metadata for this container."
}

func (cmd) Usage() string {
	return `
ecs-metadata inspect fetches metadata describing the container and task this
process is running in from the ECS task metadata endpoint, and prints it.

The endpoint URL is taken from the ` + metadata.EnvMetadataURIV4 + `
environment variable, which the ECS agent sets inside every container.

usage: ecs-metadata inspect [options]

options:
  -j --json                    Print as JSON.
  -l --logging-level <level>   Logging level [default: warning].
  -h --help                    Show this screen.
`
}

func (cmd) Execute(arguments map[string]interface{}) bool {
	formatJSON := arguments["--json"].(bool)

	level, err := logrus.ParseLevel(arguments["--logging-level"].(string))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to parse logging level: ", err)
		return false
	}
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Level = level
	log := logger.WithField("endpoint", os.Getenv(metadata.EnvMetadataURIV4))

	start := time.Now()
	meta, err := metadata.Fetch()
	if err != nil {
		switch {
		case metadata.IsEnvNotSetError(err):
			log.Error("Not running under ECS: ", err)
		default:
			log.Error("Unable to fetch container metadata: ", err)
		}
		return false
	}
	log.WithField("duration", time.Since(start).String()).Debug(
		"Fetched container metadata")

	if formatJSON {
		return printJSON(meta)
	}
	printText(meta)
	return true
}

type output struct {
	DockerID               string `json:"dockerId"`
	Image                  string `json:"image"`
	Cluster                string `json:"cluster"`
	ContainerName          string `json:"containerName"`
	TaskARN                string `json:"taskArn"`
	TaskID                 string `json:"taskId,omitempty"`
	TaskDefinitionFamily   string `json:"taskDefinitionFamily"`
	TaskDefinitionRevision string `json:"taskDefinitionRevision"`
	CPU                    uint16 `json:"cpu"`
	Memory                 uint16 `json:"memory"`
}

func printJSON(meta *metadata.Metadata) bool {
	taskID, _ := meta.TaskID()
	data, err := json.MarshalIndent(output{
		DockerID:               meta.DockerID(),
		Image:                  meta.Image(),
		Cluster:                meta.Cluster(),
		ContainerName:          meta.ContainerName(),
		TaskARN:                meta.TaskARN(),
		TaskID:                 taskID,
		TaskDefinitionFamily:   meta.TaskDefinitionFamily(),
		TaskDefinitionRevision: meta.TaskDefinitionRevision(),
		CPU:                    meta.Limits().CPU,
		Memory:                 meta.Limits().Memory,
	}, "", "  ")
	if err != nil {
		return false
	}
	fmt.Println(string(data))
	return true
}

func printText(meta *metadata.Metadata) {
	taskID, ok := meta.TaskID()
	if !ok {
		taskID = "unknown"
	}
	fmt.Printf("docker-id:                %s\n", meta.DockerID())
	fmt.Printf("image:                    %s\n", meta.Image())
	fmt.Printf("cluster:                  %s\n", meta.Cluster())
	fmt.Printf("container-name:           %s\n", meta.ContainerName())
	fmt.Printf("task-arn:                 %s\n", meta.TaskARN())
	fmt.Printf("task-id:                  %s\n", taskID)
	fmt.Printf("task-definition-family:   %s\n", meta.TaskDefinitionFamily())
	fmt.Printf("task-definition-revision: %s\n", meta.TaskDefinitionRevision())
	fmt.Printf("cpu:                      %d\n", meta.Limits().CPU)
	fmt.Printf("memory:                   %d\n", meta.Limits().Memory)
}
