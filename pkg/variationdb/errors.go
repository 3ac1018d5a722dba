package variationdb

import (
	"errors"

	"gorm.io/gorm"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// TranslateError converts GORM/driver errors into the annotator's
// collaborator contract. Missing records become annotator.ErrNotFound,
// which the annotator treats as "nothing found"; everything else is
// returned unchanged and propagates to the host pipeline.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return annotator.ErrNotFound
	}

	return err
}
