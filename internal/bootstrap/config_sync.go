package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/logger"
)

// LoadCatalog reads, validates, and indexes the catalog file at path
func LoadCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	logger.FromContext(ctx).Info(LogMsgLoadingCatalog, "path", path)

	c, err := catalog.NewLoader().Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return c, nil
}
