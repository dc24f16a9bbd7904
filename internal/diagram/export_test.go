package diagram

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/qorex-scitech/lazo/internal/block"
	"github.com/qorex-scitech/lazo/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDocument() Document {
	return Document{
		Project: project.Descriptor{Name: "Demo", Version: "0.1.0"},
		Blocks: []*block.Block{
			block.New("s", block.ModelSumming, "", block.Vec2{}, block.Vec2{X: 1, Y: 2}, false),
		},
	}
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "kind: model/summing")
	assert.Contains(t, out, "id: s_in_1")

	var decoded struct {
		Project project.Descriptor `yaml:"project"`
		Blocks  []struct {
			ID   string     `yaml:"id"`
			Kind block.Kind `yaml:"kind"`
		} `yaml:"blocks"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Demo", decoded.Project.Name)
	require.Len(t, decoded.Blocks, 1)
	assert.Equal(t, block.ModelSumming, decoded.Blocks[0].Kind)
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleDocument(), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	blocks := decoded["blocks"].([]any)
	require.Len(t, blocks, 1)
	assert.Equal(t, "model/summing", blocks[0].(map[string]any)["kind"])
}

func TestExport_EmptyAndUnknown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Document{}, FormatJSON))
	assert.Contains(t, buf.String(), `"blocks": []`)

	assert.Error(t, Export(&buf, Document{}, "xml"))
}
