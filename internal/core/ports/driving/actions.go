package driving

import (
	"context"

	"github.com/custodia-labs/tunesearch/internal/core/domain"
)

// ResultActionService provides actions on a displayed result.
type ResultActionService interface {
	// OpenPreview opens the item's preview in the default application.
	OpenPreview(ctx context.Context, item *domain.ResultItem) error

	// CopyPreviewURL copies the item's preview URL to the system clipboard.
	CopyPreviewURL(ctx context.Context, item *domain.ResultItem) error
}
