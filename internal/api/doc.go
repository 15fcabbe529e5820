// Package api handles incoming HTTP requests, request validation and
// response formatting for the auth, password reset and task endpoints. It
// translates HTTP concerns into calls on the stores and services and maps
// their errors back to status codes and client-safe messages.
package api
