// Package api holds the HTTP contract of the service: the OpenAPI document and the
// types, chi server wrapper and embedded spec generated from it.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --generate types -o types.gen.go -package=api api.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --generate chi-server -o server.gen.go -package=api api.yaml
//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --generate spec -o spec.gen.go -package=api api.yaml
