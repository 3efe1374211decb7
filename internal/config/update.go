package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lyra-labs/lyra/internal/errors"
	"github.com/lyra-labs/lyra/internal/guide"
	"gopkg.in/yaml.v3"
)

// AddEnvironment appends env to the registry at configPath, keeping the
// existing YAML structure and comments. The file is created with default
// settings when it does not exist. An environment with the same ID is an
// error.
func AddEnvironment(configPath string, env guide.Environment) error {
	if err := ValidateEnvironment(env); err != nil {
		return err
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check file permissions on "+configPath)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		data, err = yaml.Marshal(newRegistryDocument())
		if err != nil {
			return fmt.Errorf("failed to encode default config: %w", err)
		}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to parse config file",
			"Check the YAML syntax in "+configPath)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return errors.New(errors.ErrConfig,
			"Config file is not a YAML mapping",
			"Start the file with 'version: 1'.")
	}
	docNode := root.Content[0]

	envsNode := findMapValue(docNode, "environments")
	if envsNode == nil || envsNode.Kind != yaml.SequenceNode {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if envsNode == nil {
			docNode.Content = append(docNode.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "environments"},
				seq)
			envsNode = seq
		} else {
			// "environments:" with no items decodes as a null scalar.
			*envsNode = *seq
		}
	}

	for _, item := range envsNode.Content {
		if id := findMapValue(item, "id"); id != nil && id.Value == env.ID {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Environment '%s' already exists", env.ID),
				"Choose a different id.")
		}
	}

	var envNode yaml.Node
	if err := envNode.Encode(env); err != nil {
		return fmt.Errorf("failed to encode environment: %w", err)
	}
	envsNode.Content = append(envsNode.Content, &envNode)

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&root); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	encoder.Close()

	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to create config directory",
				"Check permissions on "+dir)
		}
	}
	if err := os.WriteFile(configPath, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file",
			"Check permissions on "+configPath)
	}

	log.Debug("added environment %s to %s", env.ID, configPath)
	return nil
}

// newRegistryDocument is the skeleton written for a brand new registry.
func newRegistryDocument() map[string]interface{} {
	def := DefaultConfig()
	return map[string]interface{}{
		"version": def.Version,
		"lang":    def.Lang,
		"output": map[string]string{
			"color": def.Output.Color,
		},
	}
}

// findMapValue finds a value in a mapping node by key name.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
