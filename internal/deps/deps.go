// Package deps reports the availability of the external tools subgen
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"subgen/internal/config"
	"subgen/internal/transcribe"
)

// Requirement describes one external binary subgen depends on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status is the result of probing a single requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults returns the requirements for a configured installation.
func Defaults(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "FFmpeg",
			Command:     cfg.FFmpegBinary(),
			Description: "Extracts audio chunks from long videos",
		},
		{
			Name:        "FFprobe",
			Command:     cfg.FFprobeBinary(),
			Description: "Measures video duration",
		},
		{
			Name:        "uvx",
			Command:     transcribe.UVXCommand,
			Description: "Runs WhisperX without a local install",
		},
		{
			Name:        "nvidia-smi",
			Command:     transcribe.NvidiaSMICommand,
			Description: "Enables CUDA transcription when present",
			Optional:    true,
		},
	}
}

// Check probes every requirement with exec.LookPath.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		command := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     command,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(command); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", command)
		} else {
			status.Command = resolved
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// MissingRequired returns the names of required binaries that were not found.
func MissingRequired(statuses []Status) []string {
	var missing []string
	for _, status := range statuses {
		if !status.Available && !status.Optional {
			missing = append(missing, status.Name)
		}
	}
	return missing
}
