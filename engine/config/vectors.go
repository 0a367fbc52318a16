package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Vector2 is a per-axis pair: X for yaw, Y for pitch.
type Vector2 struct {
	X, Y float32
}

// UnmarshalYAML accepts [x, y] or {x: .., y: ..}. Keys missing from the mapping form keep their
// current value.
func (v *Vector2) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var seq []float32
		if err := node.Decode(&seq); err != nil {
			return fmt.Errorf("line %d: invalid vector: %w", node.Line, err)
		}
		if len(seq) != 2 {
			return fmt.Errorf("line %d: vector needs 2 components, got %d", node.Line, len(seq))
		}
		v.X, v.Y = seq[0], seq[1]
		return nil
	case yaml.MappingNode:
		m := struct {
			X *float32 `yaml:"x"`
			Y *float32 `yaml:"y"`
		}{}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("line %d: invalid vector: %w", node.Line, err)
		}
		if m.X != nil {
			v.X = *m.X
		}
		if m.Y != nil {
			v.Y = *m.Y
		}
		return nil
	case yaml.ScalarNode:
		// a single number applies to both axes
		var s float32
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("line %d: invalid vector: %w", node.Line, err)
		}
		v.X, v.Y = s, s
		return nil
	}
	return fmt.Errorf("line %d: vector must be a sequence, mapping or number", node.Line)
}

// Vector3 is a world-space position.
type Vector3 [3]float32

// UnmarshalYAML accepts [x, y, z] or {x: .., y: .., z: ..}.
func (v *Vector3) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var seq []float32
		if err := node.Decode(&seq); err != nil {
			return fmt.Errorf("line %d: invalid position: %w", node.Line, err)
		}
		if len(seq) != 3 {
			return fmt.Errorf("line %d: position needs 3 components, got %d", node.Line, len(seq))
		}
		copy(v[:], seq)
		return nil
	case yaml.MappingNode:
		m := struct {
			X *float32 `yaml:"x"`
			Y *float32 `yaml:"y"`
			Z *float32 `yaml:"z"`
		}{}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("line %d: invalid position: %w", node.Line, err)
		}
		for i, c := range []*float32{m.X, m.Y, m.Z} {
			if c != nil {
				v[i] = *c
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: position must be a sequence or mapping", node.Line)
}
