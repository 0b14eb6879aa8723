// Package authpb содержит сгенерированный protobuf-контракт сервиса
// авторизации courseportal.auth.AuthService.
package authpb

//go:generate protoc -I ../proto --go_out=. --go_opt=module=github.com/magabrotheeeer/course-portal/internal/grpc/authpb --go-grpc_out=. --go-grpc_opt=module=github.com/magabrotheeeer/course-portal/internal/grpc/authpb courseportal/auth/auth.proto
