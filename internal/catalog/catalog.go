package catalog

import (
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/litescript/ls-rigel/internal/astro"
	"github.com/litescript/ls-rigel/internal/logging"
)

//go:embed data/hyg_subset.csv data/asterisms.txt data/pulsars.csv
var defaultData embed.FS

const (
	defaultHYG       = "data/hyg_subset.csv"
	defaultAsterisms = "data/asterisms.txt"
	defaultPulsars   = "data/pulsars.csv"
)

// Sources names the catalog files to load. An empty path selects the
// embedded default for that part.
type Sources struct {
	HYG       string `yaml:"hyg"`
	Asterisms string `yaml:"asterisms"`
	Pulsars   string `yaml:"pulsars"`
}

// Default returns the embedded catalog: about 170 bright stars, a few
// asterisms and a handful of well-known pulsars.
func Default() (*astro.Catalog, error) {
	return Load(Sources{}, logging.Discard())
}

// Load builds a catalog from src. Stars are loaded first so asterisms can
// refer to them.
func Load(src Sources, log *logging.Logger) (*astro.Catalog, error) {
	log = log.With("catalog")
	b := astro.NewCatalogBuilder()

	steps := []struct {
		path     string
		fallback string
		loader   astro.Loader
	}{
		{src.HYG, defaultHYG, HYGLoader{}},
		{src.Asterisms, defaultAsterisms, AsterismLoader{}},
		{src.Pulsars, defaultPulsars, PulsarLoader{}},
	}

	for _, step := range steps {
		if err := loadOne(b, step.path, step.fallback, step.loader, log); err != nil {
			return nil, err
		}
	}

	cat, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	log.Info("%d stars, %d asterisms, %d pulsars", cat.NumStars(), len(cat.Asterisms()), cat.NumPulsars())
	return cat, nil
}

func loadOne(b *astro.CatalogBuilder, path, fallback string, l astro.Loader, log *logging.Logger) error {
	var (
		r   io.ReadCloser
		err error
	)
	if path == "" {
		log.Debug("using embedded %s", fallback)
		r, err = defaultData.Open(fallback)
	} else {
		log.Debug("reading %s", path)
		r, err = os.Open(path)
	}
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer r.Close()

	_, err = b.LoadFrom(r, l)
	return err
}
