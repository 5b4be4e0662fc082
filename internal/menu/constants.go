package menu

// ==================== File Paths ====================

// Paths inside the embedded data directory
const (
	DefaultMenuPath = "data/menu.json"
	MenuSchemaPath  = "data/menu.schema.json"
)

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadMenuFailed  = "failed to read menu file: %w"
	ErrMsgParseMenuFailed = "failed to parse menu: %w"
	ErrMsgSchemaFailedFmt = "%w: schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil       = "menu is nil"
	ErrMsgNoPizzasDefined = "no pizzas defined"
)

// Format strings for detailed errors
const (
	ErrFmtFieldFailed   = "%s failed %s"
	ErrFmtPizzaNoSize   = "%w: pizza %q has no size"
	ErrFmtBuildPizza    = "failed to build pizza %q: %w"
	ErrFmtDuplicateName = "%w: %q"
)
