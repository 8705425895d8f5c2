package app

import (
	"pinfile/internal/adapters"
	"pinfile/internal/ports"
)

type Service struct {
	Manifests    ports.ManifestPort
	IndexBuilder ports.IndexBuilderPort
	IndexWriter  ports.IndexWriterPort
}

func NewService() Service {
	return Service{
		Manifests:    adapters.NewManifestFileAdapter(),
		IndexBuilder: adapters.NewIndexBuilderAdapter(),
		IndexWriter:  adapters.NewIndexWriterAdapter(),
	}
}
