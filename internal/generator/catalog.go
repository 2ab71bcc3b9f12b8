package generator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

//go:embed catalog.yaml
var catalogYAML []byte

// City - город с центром и районами
type City struct {
	Name      string         `yaml:"name"`
	Center    geo.Coordinate `yaml:"-"`
	RawCenter []float64      `yaml:"center"`
	Districts []string       `yaml:"districts"`
}

// CrimeTypeEntry - тип происшествия с допустимыми уровнями опасности и шаблонами описаний
type CrimeTypeEntry struct {
	Type         models.CrimeType  `yaml:"type"`
	Severities   []models.Severity `yaml:"severities"`
	Descriptions []string          `yaml:"descriptions"`
}

// Catalog - справочник городов и типов происшествий
type Catalog struct {
	Cities     []City           `yaml:"cities"`
	CrimeTypes []CrimeTypeEntry `yaml:"crimeTypes"`
}

// DefaultCatalog разбирает встроенный справочник
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog разбирает и проверяет справочник в формате YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// CityCenter ищет центр города по названию
func (c *Catalog) CityCenter(name string) (geo.Coordinate, bool) {
	for _, city := range c.Cities {
		if city.Name == name {
			return city.Center, true
		}
	}
	return geo.Coordinate{}, false
}

func (c *Catalog) validate() error {
	if len(c.Cities) == 0 {
		return fmt.Errorf("catalog: no cities")
	}
	if len(c.CrimeTypes) == 0 {
		return fmt.Errorf("catalog: no crime types")
	}
	for i := range c.Cities {
		city := &c.Cities[i]
		if len(city.RawCenter) != 2 {
			return fmt.Errorf("catalog: city %s: center must be [lng, lat]", city.Name)
		}
		city.Center = geo.Coordinate{Lng: city.RawCenter[0], Lat: city.RawCenter[1]}
		if err := geo.ValidateCoordinate(city.Center); err != nil {
			return fmt.Errorf("catalog: city %s: %w", city.Name, err)
		}
		if len(city.Districts) == 0 {
			return fmt.Errorf("catalog: city %s: no districts", city.Name)
		}
	}
	for _, ct := range c.CrimeTypes {
		if len(ct.Severities) == 0 || len(ct.Descriptions) == 0 {
			return fmt.Errorf("catalog: crime type %s: severities and descriptions are required", ct.Type)
		}
		for _, s := range ct.Severities {
			if !s.Valid() {
				return fmt.Errorf("catalog: crime type %s: unknown severity %q", ct.Type, s)
			}
		}
	}
	return nil
}
