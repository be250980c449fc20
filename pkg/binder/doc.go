// Package binder decodes HTTP request data into structs.
//
// Two binders are provided, both with the signature
// func(r *http.Request, v any) error:
//
//   - JSON decodes a size-limited application/json body in strict mode.
//   - Path fills fields tagged `path:"name"` using a router's parameter
//     extractor such as chi.URLParam.
//
// Path supports string, signed integer and bool fields, pointers to them, and
// any type implementing encoding.TextUnmarshaler.
//
// Errors wrap the package sentinels so callers can map them to HTTP statuses:
//
//	switch {
//	case errors.Is(err, binder.ErrRequestTooLarge):
//		// 413
//	case errors.Is(err, binder.ErrUnsupportedMediaType):
//		// 415
//	}
package binder
