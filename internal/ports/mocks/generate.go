//go:generate mockgen -source=../provider.go           -destination=./mock_provider.go           -package=mocks
//go:generate mockgen -source=../authenticator.go      -destination=./mock_authenticator.go      -package=mocks
//go:generate mockgen -source=../cart_validator.go     -destination=./mock_cart_validator.go     -package=mocks
//go:generate mockgen -source=../verdict_repository.go -destination=./mock_verdict_repository.go -package=mocks
//go:generate mockgen -source=../verdict_cache.go      -destination=./mock_verdict_cache.go      -package=mocks
//go:generate mockgen -source=../verifier.go           -destination=./mock_verifier.go           -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks

package mocks
