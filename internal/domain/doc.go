// Package domain contains the core business entities and validation rules
// of the application: users and the tasks they manage. It is independent of
// any storage technology or delivery mechanism.
package domain
