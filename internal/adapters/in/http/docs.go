// Package http exposes the lifecycle over JSON/HTTP with echo.
//
// Every route under /api/v1 requires a bearer token signed with HS256 by the
// auth service; its uid and role claims become the acting kernel.Actor.
// Lifecycle errors are mapped to status codes in errors.go and returned as
// {"code": int, "message": string}.
//
//	@title			FoodShare API
//	@version		1.0
//	@description	Donation, claim, delivery and reputation lifecycle.
//	@BasePath		/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package http
