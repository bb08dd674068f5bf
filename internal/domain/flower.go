package domain

import "unicode/utf8"

const LotusModelPath = "/models/lotus_flower_by_geometry_nodes.glb"

// FlowerModels is the catalogue of flower assets picked by emotion.
var FlowerModels = []string{
	"/models/alien_flower.glb",
	"/models/blue_flower_animated.glb",
	"/models/calendula_flower.glb",
	"/models/flower (1).glb",
	"/models/flower.glb",
	"/models/margarita_flower.glb",
	"/models/orchid_flower.glb",
	"/models/sunflower.glb",
	"/models/white_flower.glb",
}

// ModelForEmotion picks a catalogue entry from the length of the emotion label.
func ModelForEmotion(emotion string) string {
	if emotion == "" {
		return FlowerModels[0]
	}

	return FlowerModels[utf8.RuneCountInString(emotion)%len(FlowerModels)]
}

// Flower is a memory placed in the garden. Memory is nil for decorative flowers.
type Flower struct {
	Position  Vec3    `json:"position" yaml:"position" toml:"position"`
	Date      string  `json:"date" yaml:"date" toml:"date"`
	Emotion   string  `json:"emotion,omitempty" yaml:"emotion,omitempty" toml:"emotion,omitempty"`
	ModelPath string  `json:"model_path" yaml:"model_path" toml:"model_path"`
	MediaPath string  `json:"media_path,omitempty" yaml:"media_path,omitempty" toml:"media_path,omitempty"`
	MediaType string  `json:"media_type,omitempty" yaml:"media_type,omitempty" toml:"media_type,omitempty"`
	Memory    *Memory `json:"memory,omitempty" yaml:"memory,omitempty" toml:"memory,omitempty"`
}

// NewFlower wraps a memory. The model path falls back to the emotion catalogue.
func NewFlower(m Memory) Flower {
	memory := m

	var position Vec3
	if m.Position != nil {
		position = *m.Position
	}

	modelPath := m.ModelPath
	if modelPath == "" {
		modelPath = ModelForEmotion(m.Emotion)
	}

	return Flower{
		Position:  position,
		Date:      m.Date(),
		Emotion:   m.Emotion,
		ModelPath: modelPath,
		MediaPath: m.MediaPath,
		MediaType: m.MediaType,
		Memory:    &memory,
	}
}

func (f Flower) IsLotus() bool {
	return f.ModelPath == LotusModelPath
}

func (f Flower) HasMemory() bool {
	return f.Memory != nil
}
