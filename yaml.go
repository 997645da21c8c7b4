package rcol

import (
	"io"

	"gopkg.in/yaml.v3"
)

// writeYAML emits the same shapes as writeJSON: an array of header-keyed
// objects, a title-column object, or raw string arrays when headerless.
// The document is built from yaml.Node values so mapping keys keep the
// header order instead of the alphabetical order a Go map would impose.
func writeYAML(w io.Writer, t *Table, titleColumn bool) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(tableNode(t, titleColumn)); err != nil {
		return err
	}
	return enc.Close()
}

func tableNode(t *Table, titleColumn bool) *yaml.Node {
	if len(t.Headers) == 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range t.Rows {
			rowNode := &yaml.Node{Kind: yaml.SequenceNode}
			for _, val := range row {
				rowNode.Content = append(rowNode.Content, scalarNode(val))
			}
			seq.Content = append(seq.Content, rowNode)
		}
		return seq
	}
	if titleColumn {
		out := &yaml.Node{Kind: yaml.MappingNode}
		for _, row := range t.Rows {
			if len(row) == 0 {
				continue
			}
			obj := &yaml.Node{Kind: yaml.MappingNode}
			for i, val := range row[1:] {
				if i+1 < len(t.Headers) {
					obj.Content = append(obj.Content, scalarNode(t.Headers[i+1]), scalarNode(val))
				}
			}
			out.Content = append(out.Content, scalarNode(row[0]), obj)
		}
		return out
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range t.Rows {
		obj := &yaml.Node{Kind: yaml.MappingNode}
		for j, val := range row {
			if j < len(t.Headers) {
				obj.Content = append(obj.Content, scalarNode(t.Headers[j]), scalarNode(val))
			}
		}
		seq.Content = append(seq.Content, obj)
	}
	return seq
}

// scalarNode wraps a cell as an explicit string scalar, so values that
// look like numbers stay quoted, and strips escape sequences the same way
// the JSON path does.
func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: stripEscape(s)}
}
