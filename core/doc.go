// Package core holds the HTTP response envelope shared by the API handlers.
//
// Every JSON body has the shape
//
//	{"code": "...", "data": ..., "error": {"code": "...", "message": "...", "details": {...}}}
//
// with empty members omitted. JSONError maps validator.ValidationErrors and
// HTTPError values onto that envelope.
package core
