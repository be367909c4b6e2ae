// Package api handles incoming HTTP requests, request validation and
// response formatting. Handlers translate HTTP concerns into project and task
// service calls; error responses carry only safe messages, while the full
// redacted error is logged.
package api
