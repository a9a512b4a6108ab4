package store

import "errors"

var (
	ErrRegionNotFound   = errors.New("region not found")
	ErrDuplicateName    = errors.New("duplicate region name")
	ErrEmptyName        = errors.New("region name required")
	ErrInvalidIndicator = errors.New("indicator must be a finite number")
)

// Details are descriptive fields shown alongside a region. They take no part in scoring.
type Details struct {
	Solar    string `yaml:"solar" json:"solar"`
	Wind     string `yaml:"wind" json:"wind"`
	Grid     string `yaml:"grid" json:"grid"`
	Projects string `yaml:"projects" json:"projects"`
}

// Region is one row of the indicator table. Indicators are expected in [0,100]
// but are not validated or clamped.
type Region struct {
	Name string `yaml:"name" json:"name"`

	// Indicators
	P float64 `yaml:"p" json:"P"` // renewable potential
	G float64 `yaml:"g" json:"G"` // grid access
	R float64 `yaml:"r" json:"R"` // regulatory readiness
	H float64 `yaml:"h" json:"H"` // implementation history

	Details Details `yaml:"details" json:"details"`
}

type Store interface {
	// ListRegions returns every region in catalog order.
	ListRegions() []Region
	// GetRegion looks a region up by name, ignoring case.
	GetRegion(name string) (*Region, error)
}
