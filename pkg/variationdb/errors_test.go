package variationdb

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/variantkit/ldlink/pkg/annotator"
)

func TestTranslateErrorNil(t *testing.T) {
	if err := TranslateError(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestTranslateErrorRecordNotFound(t *testing.T) {
	err := TranslateError(gorm.ErrRecordNotFound)
	if !errors.Is(err, annotator.ErrNotFound) {
		t.Errorf("expected annotator.ErrNotFound, got %v", err)
	}
}

func TestTranslateErrorPassesThroughUnknown(t *testing.T) {
	cause := errors.New("connection refused")
	if err := TranslateError(cause); !errors.Is(err, cause) {
		t.Errorf("expected %v unchanged, got %v", cause, err)
	}
}
