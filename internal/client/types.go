package client

import "fmt"

// LogState reports whether the server is currently collecting logs.
type LogState string

const (
	LogStateLogging    LogState = "LOGGING"
	LogStateNotLogging LogState = "NOT_LOGGING"
)

// NoImport is the /isImporting/ message meaning no import is running.
const NoImport = "NO_IMPORT"

// Deployment names the target the server deploys actions to.
type Deployment string

const (
	DeploymentIBM    Deployment = "IBM"
	DeploymentRemote Deployment = "REMOTE"
	DeploymentLocal  Deployment = "LOCAL"
)

// Deployments lists every deployment target in display order.
var Deployments = []Deployment{DeploymentIBM, DeploymentRemote, DeploymentLocal}

// ParseDeployment validates a deployment name.
func ParseDeployment(s string) (Deployment, error) {
	for _, d := range Deployments {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown deployment %q (must be IBM, REMOTE or LOCAL)", s)
}

// LogRecord is one sample of the server's value counters.
type LogRecord struct {
	AimedValues   int `json:"aimedValues"`
	ReachedValues int `json:"reachedValues"`
	ActionCount   int `json:"actionCount"`
}

// LogBatch represents the response from /logs/.
type LogBatch struct {
	LatestLogs []LogRecord `json:"latestLogs"`
	LogState   LogState    `json:"logState"`
}

// ActionList represents the response from /getActions/. Message holds the
// server-rendered list items.
type ActionList struct {
	Message string `json:"message"`
}

// ImportState represents the response from /isImporting/.
type ImportState struct {
	Message string `json:"message"`
}

// Importing reports whether the server considers an import to be running.
func (s ImportState) Importing() bool {
	return s.Message != NoImport
}

// ImportResult represents the response from /import/.
type ImportResult struct {
	ActionsExpected int `json:"actionsExpected"`
}
