package catalog

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrRevisionConflict  = errors.New("document revision conflict")
	ErrContentStoreError = errors.New("content store request failed")
)
