// Package proto holds the wire definitions of the ledger service. The
// generated code (ledger.pb.go, ledger_grpc.pb.go) is produced by
// go generate and not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ledger.proto
