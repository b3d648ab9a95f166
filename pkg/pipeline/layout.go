package pipeline

import (
	"bytes"

	"github.com/matzehuels/menulayout/pkg/manager"
	"github.com/matzehuels/menulayout/pkg/scene"
)

// Layout builds a laid-out manager from sc and exports its geometry.
func Layout(sc *scene.Scene, opts Options) (*manager.Manager, scene.Document, error) {
	var mopts []manager.Option
	if opts.Logger != nil {
		mopts = append(mopts, manager.WithLogger(opts.Logger))
	}
	m, err := sc.Build(mopts...)
	if err != nil {
		return nil, scene.Document{}, err
	}
	return m, scene.Export(m), nil
}

func marshalDocument(doc scene.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := scene.WriteJSON(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalDocument(data []byte) (scene.Document, error) {
	return scene.ReadJSON(bytes.NewReader(data))
}
