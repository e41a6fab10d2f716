package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/stepwise/pkg/schema"
)

// LoadRequest reads a run request from a YAML or JSON graph file.
// The file holds the same document as the HTTP body; "-" reads JSON or
// YAML from stdin.
func LoadRequest(path string) (schema.RunRequest, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return schema.RunRequest{}, fmt.Errorf("failed to read graph file: %w", err)
	}
	return DecodeRequest(data, filepath.Ext(path))
}

// DecodeRequest parses data as JSON when ext is ".json" and as YAML
// otherwise. YAML being a superset of JSON, unknown extensions accept both.
func DecodeRequest(data []byte, ext string) (schema.RunRequest, error) {
	var req schema.RunRequest
	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("failed to parse graph JSON: %w", err)
		}
		return req, nil
	}

	// Default to YAML
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse graph YAML: %w", err)
	}
	return req, nil
}

// Overrides are command-line values that take precedence over the file.
type Overrides struct {
	Algorithm string
	Start     *int
}

// Apply merges o into req.
func (o Overrides) Apply(req schema.RunRequest) schema.RunRequest {
	if o.Algorithm != "" {
		req.Algorithm = o.Algorithm
	}
	if o.Start != nil {
		s := *o.Start
		req.StartNode = &s
	}
	return req
}
