// Package menu holds the pizzeria price list and turns it into priced pizzas.
//
// The price list is a JSON document embedded in the binary. Loading checks it
// against a JSON schema, decodes it, validates each entry and then builds a
// domain.Pizza per entry, computing its area from the size descriptor.
package menu

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/osse101/pizzavalue/internal/area"
	"github.com/osse101/pizzavalue/internal/domain"
	"github.com/osse101/pizzavalue/internal/validation"
)

//go:embed data/*.json
var dataFS embed.FS

// Sentinel errors for menu loading
var (
	ErrDuplicateName = errors.New("duplicate pizza name")

	ErrInvalidMenu = errors.New("invalid menu")
)

// Config is the JSON price list
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Pizzas []Def `json:"pizzas" validate:"required,min=1,dive"`
}

// Def is a single pizza entry of the price list
type Def struct {
	Name  string           `json:"name" validate:"required"`
	Size  domain.SizeField `json:"size"`
	Price decimal.Decimal  `json:"price" validate:"gte=0"`
}

// Loader reads, validates and builds price lists
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) ([]domain.Pizza, error)
}

type menuLoader struct {
	fsys            fs.FS
	schemaValidator validation.SchemaValidator
	structValidator *validator.Validate
}

// NewLoader creates a Loader over the embedded price list and schema
func NewLoader() Loader {
	return &menuLoader{
		fsys:            dataFS,
		schemaValidator: validation.NewSchemaValidator(dataFS),
		structValidator: newStructValidator(),
	}
}

func newStructValidator() *validator.Validate {
	v := validator.New()
	// Money is compared as a float for range tags such as gte=0
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Default loads the built-in price list and builds its pizzas
func Default() ([]domain.Pizza, error) {
	return FromLoader(NewLoader(), DefaultMenuPath)
}

// FromLoader loads, validates and builds the price list at path
func FromLoader(loader Loader, path string) ([]domain.Pizza, error) {
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(config); err != nil {
		return nil, err
	}
	return loader.Build(config)
}

// Load reads a price list from the loader's file system
func (l *menuLoader) Load(path string) (*Config, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadMenuFailed, err)
	}

	if err := l.schemaValidator.ValidateBytes(data, MenuSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailedFmt, ErrInvalidMenu, path, err)
	}

	return decode(data)
}

// Parse validates raw JSON against the menu schema and decodes it
func (l *menuLoader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, MenuSchemaPath); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMenu, err)
	}

	return decode(data)
}

func decode(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseMenuFailed, err)
	}
	return &config, nil
}

// Validate checks the price list for errors the schema cannot express
func (l *menuLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidMenu, ErrMsgConfigNil)
	}

	if len(config.Pizzas) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidMenu, ErrMsgNoPizzasDefined)
	}

	if err := l.structValidator.Struct(config); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidMenu, describeValidationError(err))
	}

	names := make(map[string]bool, len(config.Pizzas))
	for i := range config.Pizzas {
		def := &config.Pizzas[i]

		if def.Size.Descriptor == nil {
			return fmt.Errorf(ErrFmtPizzaNoSize, ErrInvalidMenu, def.Name)
		}
		if names[def.Name] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateName, def.Name)
		}
		names[def.Name] = true
	}

	return nil
}

// describeValidationError lists each failed field with the tag it broke
func describeValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	failures := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		failures = append(failures, fmt.Sprintf(ErrFmtFieldFailed, e.Namespace(), e.Tag()))
	}
	return strings.Join(failures, ", ")
}

// Build turns every entry into a pizza, stopping at the first bad size
func (l *menuLoader) Build(config *Config) ([]domain.Pizza, error) {
	pizzas := make([]domain.Pizza, 0, len(config.Pizzas))
	for _, def := range config.Pizzas {
		p, err := Build(def.Name, def.Size.Descriptor, def.Price)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}
	return pizzas, nil
}

// Build computes the area of size and returns the fully derived pizza
func Build(name string, size domain.SizeDescriptor, price decimal.Decimal) (domain.Pizza, error) {
	a, err := area.Compute(size)
	if err != nil {
		return domain.Pizza{}, fmt.Errorf(ErrFmtBuildPizza, name, err)
	}
	return domain.NewPizza(name, size, price, a)
}
