// Package service_mocks holds gomock doubles for the ledger, export,
// token, metrics and record generator services.
package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks
