package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/validation"
)

// Loader reads catalog documents and turns them into a validated Catalog
type Loader interface {
	Load(ctx context.Context, path string) (*Catalog, error)
	Parse(ctx context.Context, data []byte, format Format) (*Catalog, error)
}

type loader struct {
	schema   validation.SchemaValidator
	validate *validator.Validate
}

// NewLoader creates a Loader using the embedded catalog schema
func NewLoader() Loader {
	return &loader{
		schema:   validation.NewSchemaValidator(nil),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: "+ErrMsgUnknownFormatFmt, domain.ErrDataLoad, filepath.Ext(path))
	}
}

// Load reads and validates the catalog file at path
func (l *loader) Load(ctx context.Context, path string) (*Catalog, error) {
	log := logger.FromContext(ctx)

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgReadFailedFmt, domain.ErrDataLoad, path, err)
	}

	c, err := l.Parse(ctx, data, format)
	if err != nil {
		log.Error(LogMsgCatalogLoadFailed, "path", path, "error", err)
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded,
		"path", path,
		"items", len(c.Items()),
		"recipes", len(c.Recipes()),
		"tips", len(c.Tips()))
	return c, nil
}

// Parse decodes, validates, and indexes a catalog document.
// YAML input is normalised to JSON so both formats pass the same schema.
func (l *loader) Parse(ctx context.Context, data []byte, format Format) (*Catalog, error) {
	jsonData := data
	if format == FormatYAML {
		var raw interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgParseFailedFmt, domain.ErrDataLoad, format, err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: "+ErrMsgParseFailedFmt, domain.ErrDataLoad, format, err)
		}
		jsonData = converted
	}

	if err := l.schema.ValidateBytes(jsonData, validation.SchemaCatalog); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgSchemaFailedFmt, domain.ErrDataLoad, err)
	}

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgParseFailedFmt, domain.ErrDataLoad, format, err)
	}

	if err := l.validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgStructFailedFmt, domain.ErrDataLoad, err)
	}

	applyDefaultDisplayNames(ctx, doc.Items)

	return New(doc)
}

// applyDefaultDisplayNames fills empty display names from the item id ("iron_ore" -> "Iron Ore")
func applyDefaultDisplayNames(ctx context.Context, items []domain.ItemDefinition) {
	caser := cases.Title(language.English)
	for i := range items {
		if items[i].DisplayName != "" {
			continue
		}
		items[i].DisplayName = DisplayNameFromID(caser, items[i].ID)
		logger.FromContext(ctx).Debug(LogMsgDisplayNameDefaulted, "item", items[i].ID, "display_name", items[i].DisplayName)
	}
}

// DisplayNameFromID title-cases an identifier, treating '_' and '-' as word breaks
func DisplayNameFromID(caser cases.Caser, id string) string {
	words := strings.NewReplacer("_", " ", "-", " ").Replace(id)
	return caser.String(strings.Join(strings.Fields(words), " "))
}
