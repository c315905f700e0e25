// internal/app/features/reports/handler.go
package reports

import (
	apierrors "github.com/thanachok11/CIS-Help-Me/internal/app/features/errors"
	reportstore "github.com/thanachok11/CIS-Help-Me/internal/app/store/reports"
	"github.com/thanachok11/CIS-Help-Me/internal/app/system/storage"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the report lifecycle endpoints: create, the three listings,
// and the staff status update.
//
// It follows the same pattern as the other features: a thin struct wrapping
// the store, the media store, and the logger, constructed once at startup
// in bootstrap and passed into Routes().
type Handler struct {
	Reports *reportstore.Store
	Media   storage.Store
	Log     *zap.Logger
	ErrLog  *apierrors.ErrorLogger
}

// NewHandler constructs a reports Handler bound to the given Mongo database,
// media store, and logger.
func NewHandler(db *mongo.Database, media storage.Store, errLog *apierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Reports: reportstore.New(db),
		Media:   media,
		Log:     logger,
		ErrLog:  errLog,
	}
}
