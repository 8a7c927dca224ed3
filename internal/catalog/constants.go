package catalog

// ==================== Formats ====================

// Format identifies the serialization of a catalog document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded        = "Catalog loaded"
	LogMsgCatalogLoadFailed    = "Catalog load failed"
	LogMsgDisplayNameDefaulted = "Display name defaulted from id"
)

// ==================== Error Messages ====================

const (
	ErrMsgReadFailedFmt      = "failed to read catalog file %s: %w"
	ErrMsgUnknownFormatFmt   = "unsupported catalog extension %q"
	ErrMsgParseFailedFmt     = "failed to parse %s catalog: %w"
	ErrMsgSchemaFailedFmt    = "catalog failed schema validation: %w"
	ErrMsgStructFailedFmt    = "catalog failed field validation: %w"
	ErrMsgDuplicateItemFmt   = "item '%s'"
	ErrMsgDuplicateRecipeFmt = "recipe '%s'"
	ErrMsgDuplicateTipFmt    = "tip '%s'"
	ErrMsgIngredientRefFmt   = "recipe '%s' ingredient[%d] references unknown item '%s'"
	ErrMsgProductRefFmt      = "recipe '%s' product[%d] references unknown item '%s'"
)
