// Package proto holds the generated kouden.v1 messages and gRPC stubs.
package proto

//go:generate protoc -I ../../api --go_out=. --go_opt=module=github.com/dmitrijs2005/kouden/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/kouden/internal/proto kouden/v1/kouden.proto
