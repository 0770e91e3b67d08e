package pbf

import (
	"fmt"
	"os"

	"github.com/natevvv/ski-routing/pkg/piste"
	"github.com/natevvv/ski-routing/pkg/repository"
)

// ExportTrailData writes the converted pistes as node and trail file into dir
func ExportTrailData(converter *piste.Converter, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	data := &repository.Data{
		Coordinates: converter.Nodes(),
		Records:     converter.Records(),
	}
	return repository.Save(dir, repository.DefaultFiles(), data)
}
