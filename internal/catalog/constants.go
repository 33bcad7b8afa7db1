package catalog

// Schema paths
const (
	ForgeSchemaPath = "configs/schemas/forge.schema.json"
)

// Error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse config: %w"
	ErrMsgConfigNil            = "config is nil"
	ErrMsgNoCategoriesDefined  = "no categories defined"
)
